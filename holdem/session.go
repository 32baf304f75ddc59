package holdem

import (
	"errors"
	"math/rand"
	"time"

	"github.com/roboholdem/roboholdem/common/log"
	"github.com/roboholdem/roboholdem/common/util"
	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/core"
	"github.com/roboholdem/roboholdem/holdem/results"
	"github.com/roboholdem/roboholdem/metrics"
	"go.uber.org/zap"
)

type msgSender interface {
	Send(id string, msgType int, mID int64, msg []byte)
}

type ResultsDB interface {
	SaveRounds(records []results.RoundRecord) error
	SaveSession(result results.SessionResult) error
}

var prepareWait = 10 * time.Second

func NewSession(id int, level core.SessionLevel, msgSender msgSender, notifier abstracts.RobotNotifier,
	db ResultsDB, rnd *rand.Rand) *Session {

	timer := time.NewTimer(time.Second)
	timer.Stop()
	return &Session{
		id: id, level: level, msgSender: msgSender, notifier: notifier, db: db, rnd: rnd,
		prepareStartTimer: timer,
		getSceneChan:      make(chan getSceneMsg, 1),
		readyChan:         make(chan withErrMsg, 1),
		enterChan:         make(chan withErrMsg, 1),
		leaveChan:         make(chan withErrMsg, 1),
		actionChan:        make(chan actionMsg, 1),
		gameFinishedChan:  make(chan *core.GameResult, 1),
	}
}

/*

一个参与者位：参与者进来后提示准备，准备计时到了还没ready就移除，
ready了就起一场对局，对局结束后落库、更新metrics、把汇总发给参与者。

*/
type Session struct {
	id        int
	level     core.SessionLevel
	msgSender msgSender
	notifier  abstracts.RobotNotifier
	db        ResultsDB
	rnd       *rand.Rand

	seat abstracts.User
	// 参与者是否已提交准备
	prepared bool
	// 要对用户回馈的prepare msg id做check
	latestPrepareMsgID int64

	curGame *core.Game

	prepareStartTimer *time.Timer
	getSceneChan      chan getSceneMsg
	readyChan         chan withErrMsg
	enterChan         chan withErrMsg
	leaveChan         chan withErrMsg
	actionChan        chan actionMsg
	gameFinishedChan  chan *core.GameResult
	stopChan          chan struct{}
}

func (s *Session) loop() {
	for {
		select {
		case msg := <-s.getSceneChan:
			s.doGetScene(msg)
		case <-s.prepareStartTimer.C:
			s.startGameCheck()
		case msg := <-s.readyChan:
			s.doReady(msg)
		case msg := <-s.enterChan:
			s.doEnter(msg)
		case msg := <-s.leaveChan:
			s.doLeave(msg)
		case msg := <-s.actionChan:
			s.doActionChan(msg)
		case result := <-s.gameFinishedChan:
			s.doGameFinished(result)
		case <-s.stopChan:
			return
		}
	}
}

// 准备计时到，检查参与者是否ready
func (s *Session) startGameCheck() {
	if s.seat == nil {
		return
	}
	if !s.prepared {
		// 没准备，可能是已经退出或掉线了，移除
		s.sendTo(s.seat.ID(), abstracts.MsgTypeNotReadyLeave, time.Now().UnixNano(), nil)
		s.seat = nil
		return
	}
	s.prepared = false
	s.startGame()
}

func (s *Session) startGame() {
	if s.curGame != nil {
		panic("already have a game")
	}

	scheduler, err := core.NewScheduler(core.DefaultCatalog(), s.rnd)
	if err != nil {
		// 牌组在server启动时校验过，到不了这里
		log.L.Error("build scheduler failed", zap.Error(err), zap.Int("session", s.id))
		return
	}

	gameID := time.Now().UnixNano()
	s.curGame = core.NewGame(gameID, s.seat.ID(), s.level, scheduler, s.rnd, s.msgSender, s.notifier, s.gameFinishedChan)
	go s.curGame.Run()

	metrics.ActiveGames.Inc()
	log.L.Info("session game started", zap.Int("session", s.id), zap.Int64("game", gameID), zap.String("participant", s.seat.ID()))
}

func (s *Session) doGameFinished(result *core.GameResult) {
	if s.curGame == nil {
		panic("session do finish game, but game is nil")
	}
	if s.curGame.ID() != result.ID() {
		panic("session do finish game, but game id not right")
	}

	records := result.Records()
	if err := s.db.SaveRounds(records); err != nil {
		log.L.Error("save round records failed", zap.Error(err), zap.Int64("game", result.ID()))
	}
	if err := s.db.SaveSession(results.SessionResult{
		GameID:           result.ID(),
		ParticipantID:    result.Participant().ID(),
		Rounds:           s.level.Rounds,
		StartChips:       s.level.StartChips,
		ParticipantChips: result.Participant().Chips(),
		RobotChips:       result.Robot().Chips(),
		FinishedAt:       time.Now(),
	}); err != nil {
		log.L.Error("save session result failed", zap.Error(err), zap.Int64("game", result.ID()))
	}

	stats := results.Aggregate(records)
	observeStats(stats, records)

	s.sendTo(result.Participant().ID(), abstracts.MsgTypeSessionResult, time.Now().UnixNano(),
		util.StringifyJsonToBytes(abstracts.SessionResultMsg{
			Rounds:           s.level.Rounds,
			ParticipantChips: result.Participant().Chips(),
			RobotChips:       result.Robot().Chips(),
			ParticipantWins:  stats.ParticipantWins,
			RobotWins:        stats.RobotWins,
			Ties:             stats.Ties,
		}))

	// 实验一场一位，跑完清位
	s.curGame = nil
	s.seat = nil
	metrics.ActiveGames.Dec()
}

func observeStats(stats *results.SessionStats, records []results.RoundRecord) {
	for _, r := range records {
		metrics.RoundsTotal.WithLabelValues(r.ActualOutcome).Inc()
		if r.RobotAllIn {
			metrics.AllInsTotal.Inc()
		}
	}
	metrics.BluffsTotal.Add(float64(stats.BluffCount))
	metrics.DetectedBluffsTotal.Add(float64(stats.DetectedBluffs))
}

func (s *Session) doGetScene(msg getSceneMsg) {
	if s.curGame == nil {
		msg.resultChan <- nil
		return
	}
	msg.resultChan <- s.curGame.GetScene(msg.uID)
}

func (s *Session) doReady(msg withErrMsg) {
	if s.seat == nil || s.seat.ID() != msg.user.ID() {
		msg.resultChan <- errors.New("not in this session")
		return
	}
	s.prepared = true
	msg.resultChan <- nil
}

// 处理参与者进入，进来就开准备计时
func (s *Session) doEnter(msg withErrMsg) {
	if s.seat != nil {
		msg.resultChan <- errors.New("session occupied")
		return
	}
	s.seat = msg.user.Copy()
	s.prepared = false
	msg.resultChan <- nil

	s.latestPrepareMsgID = time.Now().UnixNano()
	s.sendTo(s.seat.ID(), abstracts.MsgTypePrepare, s.latestPrepareMsgID, nil)
	s.prepareStartTimer.Reset(prepareWait)
}

func (s *Session) doLeave(msg withErrMsg) {
	if s.seat == nil || s.seat.ID() != msg.user.ID() {
		msg.resultChan <- errors.New("not in this session")
		return
	}
	if s.curGame != nil {
		msg.resultChan <- errors.New("game in progress, can't leave")
		return
	}
	s.seat = nil
	s.prepared = false
	msg.resultChan <- nil
}

func (s *Session) doActionChan(msg actionMsg) {
	if s.curGame == nil {
		msg.resultChan <- errors.New("game not started")
		return
	}
	msg.resultChan <- s.curGame.OnMsg(msg.action)
}

type actionMsg struct {
	action     abstracts.PlayerActionMsg
	resultChan chan error
}

type withErrMsg struct {
	user       abstracts.User
	resultChan chan error
}

type getSceneMsg struct {
	uID        string
	resultChan chan *abstracts.GameScene
}

func (s *Session) GetScene(uID string) *abstracts.GameScene {
	result := make(chan *abstracts.GameScene)
	s.getSceneChan <- getSceneMsg{uID: uID, resultChan: result}
	// 如果session stop，程序必须结束，否则就可能有协程泄漏
	return <-result
}

func (s *Session) Ready(u abstracts.User) error {
	result := make(chan error)
	s.readyChan <- withErrMsg{user: u, resultChan: result}
	return <-result
}

func (s *Session) Enter(u abstracts.User) error {
	result := make(chan error)
	s.enterChan <- withErrMsg{user: u, resultChan: result}
	return <-result
}

func (s *Session) Leave(u abstracts.User) error {
	result := make(chan error)
	s.leaveChan <- withErrMsg{user: u, resultChan: result}
	return <-result
}

func (s *Session) Do(action abstracts.PlayerActionMsg) error {
	result := make(chan error)
	s.actionChan <- actionMsg{action: action, resultChan: result}
	return <-result
}

func (s *Session) sendTo(uID string, msgType int, mID int64, msg []byte) {
	s.msgSender.Send(uID, msgType, mID, msg)
}

func (s *Session) Start() error {
	if s.stopChan != nil {
		return errors.New("already started")
	}
	s.stopChan = make(chan struct{})
	go s.loop()

	return nil
}

func (s *Session) Stop() error {
	if s.stopChan == nil {
		return errors.New("not started")
	}
	close(s.stopChan)
	s.stopChan = nil

	return nil
}
