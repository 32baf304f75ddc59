package core

import (
	"math/rand"
	"time"

	"github.com/roboholdem/roboholdem/common/log"
	"github.com/roboholdem/roboholdem/common/util"
	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/common/g-error"
	"github.com/roboholdem/roboholdem/holdem/results"
	"go.uber.org/zap"
)

type msgSender interface {
	Send(id string, msgType int, mID int64, msg []byte)
}

func NewGame(id int64, participantID string, level SessionLevel, scheduler *Scheduler, rnd *rand.Rand,
	sender msgSender, notifier abstracts.RobotNotifier, resultChan chan *GameResult) *Game {

	timer := time.NewTimer(time.Second)
	timer.Stop()
	return &Game{
		id:          id,
		level:       level,
		participant: NewActor(participantID, level.StartChips),
		robot:       NewActor(RobotID, level.StartChips),
		scheduler:   scheduler,
		betting:     NewBettingPolicy(rnd),
		expression:  NewExpressionPolicy(rnd),
		sender:      sender,
		notifier:    notifier,
		resultChan:  resultChan,
		voiceGender: abstracts.VoiceMale,
		betTimer:    timer,

		msgChan:       make(chan actionWithErr, 1),
		gameSceneChan: make(chan gameSceneMsg, 1),
	}
}

const RobotID = "misty"

/*

一场实验对局：固定轮数，每轮从调度器取一个固定牌组，
等参与者下注（超时按弃牌），机器人按策略回应，摊牌比较后结算彩池，
轮末给机器人发表情和台词通知，全部轮数跑完后把结果推给会话层。

*/
type Game struct {
	id    int64
	level SessionLevel

	participant *Actor
	robot       *Actor

	scheduler  *Scheduler
	betting    *BettingPolicy
	expression *ExpressionPolicy
	comparator Comparator

	sender   msgSender
	notifier abstracts.RobotNotifier

	// 从1开始
	curRound uint
	curSetup *HandSetup
	pot      int
	// 是否在等参与者下注
	awaitingBet bool
	// 全部轮数跑完
	over        bool
	voiceGender string

	curExpression abstracts.ExpressionCode
	curLine       string

	records []results.RoundRecord

	betTimer      *time.Timer
	msgChan       chan actionWithErr
	gameSceneChan chan gameSceneMsg
	resultChan    chan *GameResult
	stopChan      chan struct{}
}

type actionWithErr struct {
	action     abstracts.PlayerActionMsg
	resultChan chan error
}

func (g *Game) ID() int64 {
	return g.id
}

func (g *Game) Run() {
	if g.stopChan != nil {
		return
	}
	g.stopChan = make(chan struct{})
	defer func() { g.stopChan = nil }()

	g.notifier.SetVoiceGender(g.voiceGender)
	g.startRound()
	g.loop()
	// loop退出后才广播stop，保证最后一轮的回执先于stop送达
	close(g.stopChan)
	g.drainPending()
}

func (g *Game) loop() {
	for {
		select {
		case msg := <-g.msgChan:
			msg.resultChan <- g.doAction(msg.action)
		case <-g.betTimer.C:
			g.doBetTimeout()
		case msg := <-g.gameSceneChan:
			g.doGetScene(msg)
		case <-g.stopChan:
			return
		}
		if g.over {
			return
		}
	}
}

// 给stop广播后才挤进队列的请求答复，防止调用方永远等不到回执
func (g *Game) drainPending() {
	for {
		select {
		case msg := <-g.msgChan:
			msg.resultChan <- g_error.ErrGameNotRunning
		case msg := <-g.gameSceneChan:
			msg.resultChan <- nil
		default:
			return
		}
	}
}

func (g *Game) OnMsg(msg abstracts.PlayerActionMsg) error {
	stop := g.stopChan
	if stop == nil {
		return g_error.ErrGameNotRunning
	}
	// 带缓冲，loop和drain答复时都不会被已放弃的调用方卡住
	resultChan := make(chan error, 1)
	select {
	case g.msgChan <- actionWithErr{action: msg, resultChan: resultChan}:
	case <-stop:
		return g_error.ErrGameNotRunning
	}
	select {
	case err := <-resultChan:
		return err
	case <-stop:
		// 回执一定先于stop写入，到这里缓冲里有就取缓冲
		select {
		case err := <-resultChan:
			return err
		default:
			return g_error.ErrGameNotRunning
		}
	}
}

func (g *Game) startRound() {
	g.curRound++
	// 半场切换语音性别
	if g.level.Rounds > 1 && g.curRound == g.level.Rounds/2+1 {
		g.voiceGender = abstracts.VoiceFemale
		g.notifier.SetVoiceGender(g.voiceGender)
	}

	g.curSetup = g.scheduler.Next()
	g.pot = 0
	g.awaitingBet = true
	g.curExpression = abstracts.ExpressionNeutral
	g.curLine = g.expression.NewRoundLine()

	g.notifier.OnNewRound(g.curRound, g.curLine)
	g.broadcastScene()
	g.betTimer.Reset(g.level.BetTimeout)
}

func (g *Game) doAction(msg abstracts.PlayerActionMsg) error {
	if msg.UserID != g.participant.ID() {
		return g_error.ErrUnknownActor
	}
	if !g.awaitingBet {
		return g_error.ErrNotYourTurn
	}
	if msg.Round != g.curRound {
		return g_error.ErrWrongRound
	}

	switch msg.ActionType {
	case abstracts.GameActionOfFold:
		g.awaitingBet = false
		g.betTimer.Stop()
		g.settleFold()
	case abstracts.GameActionOfBet:
		if msg.Amount < 0 {
			return g_error.ErrNotEnoughChips
		}
		if enough, _ := g.participant.Bet(msg.Amount); !enough {
			return g_error.ErrNotEnoughChips
		}
		g.awaitingBet = false
		g.betTimer.Stop()
		g.pot += msg.Amount
		g.robotTurn(msg.Amount)
	}
	return nil
}

// 超时视作弃牌
func (g *Game) doBetTimeout() {
	if !g.awaitingBet {
		return
	}
	log.L.Info("participant bet timeout, fold", zap.Int64("game", g.id), zap.Uint("round", g.curRound))
	g.awaitingBet = false
	g.settleFold()
}

func (g *Game) robotTurn(priorBet int) {
	setup := g.curSetup

	g.curExpression = ExpressionOf(setup.DeclaredOutcome, setup.IsBluffing)
	g.curLine = g.expression.SpokenLine(setup.DeclaredOutcome, QualityOf(setup.DeclaredOutcome), setup.IsBluffing)
	g.notifier.OnBettingTurn(g.curExpression, g.curLine)

	amount, message := g.betting.Decide(priorBet, g.robot.Chips(), setup.BettingStyle,
		setup.BaseBetAmount, setup.DeclaredOutcome, setup.IsBluffing)
	robotAllIn := amount == g.robot.Chips() && amount > 0
	if enough, _ := g.robot.Bet(amount); !enough {
		// Decide已夹到stack内，到不了这里
		log.L.Error("robot bet more than stack", zap.Int("amount", amount), zap.Int("stack", g.robot.Chips()))
		amount = g.robot.Chips()
		g.robot.Bet(amount)
	}
	g.pot += amount

	g.showdown(priorBet, amount, message, robotAllIn)
}

func (g *Game) showdown(participantBet, robotBet int, robotMessage string, robotAllIn bool) {
	setup := g.curSetup
	actual, err := g.comparator.Compare(setup.ParticipantCards, setup.RobotCards, setup.CommunityCards,
		setup.ParticipantCategory, setup.RobotCategory)
	if err != nil {
		// 牌组在调度器初始化时已校验过，到这里说明牌组被改坏了
		log.L.Error("showdown compare failed", zap.Error(err), zap.Int64("game", g.id))
		actual = setup.DeclaredOutcome
	}

	switch actual {
	case abstracts.OutcomeParticipantWins:
		g.participant.WinChips(g.pot)
	case abstracts.OutcomeRobotWins:
		g.robot.WinChips(g.pot)
	default:
		// 平局平分，多出的一枚归参与者
		half := g.pot / 2
		g.robot.WinChips(half)
		g.participant.WinChips(g.pot - half)
	}

	// 弱牌bluff、参与者没弃牌且赢了，记为识破
	detected := setup.IsBluffing && setup.DeclaredOutcome != abstracts.OutcomeRobotWins &&
		actual == abstracts.OutcomeParticipantWins

	g.record(actual, participantBet, robotBet, false, detected, robotAllIn, robotMessage)
	g.notifier.OnRoundEnd(RoundEndExpression(actual), g.expression.RoundEndLine(actual))
	g.sendRoundResult(actual, robotBet, robotMessage, true)
	g.nextRoundOrFinish()
}

// 参与者弃牌，机器人直接收池
func (g *Game) settleFold() {
	g.robot.WinChips(g.pot)
	actual := abstracts.OutcomeRobotWins

	g.record(actual, 0, 0, true, false, false, "")
	g.notifier.OnRoundEnd(RoundEndExpression(actual), g.expression.RoundEndLine(actual))
	g.sendRoundResult(actual, 0, "", false)
	g.nextRoundOrFinish()
}

func (g *Game) record(actual abstracts.Outcome, participantBet, robotBet int,
	folded, detected, robotAllIn bool, robotMessage string) {

	g.records = append(g.records, results.RoundRecord{
		GameID:          g.id,
		Round:           g.curRound,
		DeclaredOutcome: g.curSetup.DeclaredOutcome.String(),
		ActualOutcome:   actual.String(),
		ParticipantBet:  participantBet,
		RobotBet:        robotBet,
		Pot:             g.pot,
		Folded:          folded,
		Bluffed:         g.curSetup.IsBluffing,
		DetectedBluff:   detected,
		RobotAllIn:      robotAllIn,
		BettingStyle:    string(g.curSetup.BettingStyle),
		RobotMessage:    robotMessage,
		VoiceGender:     g.voiceGender,
		CreatedAt:       time.Now(),
	})
}

func (g *Game) sendRoundResult(actual abstracts.Outcome, robotBet int, robotMessage string, reveal bool) {
	result := abstracts.RoundResultMsg{
		Round:        g.curRound,
		Outcome:      actual.String(),
		Pot:          g.pot,
		Folded:       !reveal,
		RobotBet:     robotBet,
		RobotMessage: robotMessage,
	}
	// 摊牌才亮机器人手牌
	if reveal {
		for _, c := range g.curSetup.RobotCards {
			result.RobotCards = append(result.RobotCards, c.Whole())
		}
	}
	g.sender.Send(g.participant.ID(), abstracts.MsgTypeRoundResult, time.Now().UnixNano(), util.StringifyJsonToBytes(result))
}

func (g *Game) nextRoundOrFinish() {
	if g.curRound >= g.level.Rounds {
		g.finish()
		return
	}
	g.startRound()
}

func (g *Game) finish() {
	log.L.Info("game finished", zap.Int64("game", g.id),
		zap.Int("participant chips", g.participant.Chips()), zap.Int("robot chips", g.robot.Chips()))

	g.resultChan <- &GameResult{
		id:          g.id,
		participant: g.participant,
		robot:       g.robot,
		records:     g.records,
	}
	g.over = true
}

func (g *Game) broadcastScene() {
	scene := g.buildScene(g.participant.ID())
	g.sender.Send(g.participant.ID(), abstracts.MsgTypeSessionScene, time.Now().UnixNano(), util.StringifyJsonToBytes(scene))
}

type GameResult struct {
	id          int64
	participant *Actor
	robot       *Actor
	records     []results.RoundRecord
}

func (r *GameResult) ID() int64 {
	return r.id
}

func (r *GameResult) Participant() *Actor {
	return r.participant
}

func (r *GameResult) Robot() *Actor {
	return r.robot
}

func (r *GameResult) Records() []results.RoundRecord {
	return r.records
}
