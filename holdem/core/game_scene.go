package core

import "github.com/roboholdem/roboholdem/holdem/abstracts"

type gameSceneMsg struct {
	uid        string
	resultChan chan *abstracts.GameScene
}

func (g *Game) GetScene(uid string) *abstracts.GameScene {
	stop := g.stopChan
	if stop == nil {
		return nil
	}

	resultChan := make(chan *abstracts.GameScene, 1)
	select {
	case g.gameSceneChan <- gameSceneMsg{uid: uid, resultChan: resultChan}:
	case <-stop:
		return nil
	}
	select {
	case scene := <-resultChan:
		return scene
	case <-stop:
		select {
		case scene := <-resultChan:
			return scene
		default:
			return nil
		}
	}
}

func (g *Game) doGetScene(msg gameSceneMsg) {
	msg.resultChan <- g.buildScene(msg.uid)
}

/*
1. 双方筹码、参与者自己的手牌
1. 公共牌、彩池、轮次
1. 机器人的表情和台词（手牌不进scene，摊牌时由round result下发）
*/
func (g *Game) buildScene(uid string) *abstracts.GameScene {
	scene := &abstracts.GameScene{
		Round:           g.curRound,
		TotalRounds:     g.level.Rounds,
		Pot:             g.pot,
		Participant:     &abstracts.ActorScene{ID: g.participant.ID(), Chips: g.participant.Chips()},
		Robot:           &abstracts.ActorScene{ID: g.robot.ID(), Chips: g.robot.Chips()},
		RobotExpression: string(g.curExpression),
		RobotLine:       g.curLine,
		AwaitingBet:     g.awaitingBet,
	}

	for _, c := range g.curSetup.CommunityCards {
		scene.CommunityCards = append(scene.CommunityCards, c.Whole())
	}
	// 只有参与者本人能看到自己的手牌
	if uid == g.participant.ID() {
		for _, c := range g.curSetup.ParticipantCards {
			scene.Participant.Cards = append(scene.Participant.Cards, c.Whole())
		}
	}
	return scene
}
