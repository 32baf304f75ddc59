package core

import (
	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/core/hand_processor"
)

/*

一轮的固定牌组。调度器每轮发一个，发出后只读，轮末丢弃。
ParticipantCards ∪ RobotCards ∪ CommunityCards 必须是7张互不相同的牌。

*/
type HandSetup struct {
	ParticipantCards []hand_processor.Card
	RobotCards       []hand_processor.Card
	CommunityCards   []hand_processor.Card

	DeclaredOutcome abstracts.Outcome

	ParticipantCategory hand_processor.HandCategory
	RobotCategory       hand_processor.HandCategory

	BettingStyle  abstracts.BettingStyle
	BaseBetAmount int

	// 由调度器每轮随机赋值
	IsBluffing bool
}

func (s *HandSetup) clone() *HandSetup {
	c := *s
	return &c
}

func setupOf(participant, robot, community []string, outcome abstracts.Outcome,
	pCat, rCat hand_processor.HandCategory, style abstracts.BettingStyle, base int) *HandSetup {
	return &HandSetup{
		ParticipantCards:    cardsOf(participant),
		RobotCards:          cardsOf(robot),
		CommunityCards:      cardsOf(community),
		DeclaredOutcome:     outcome,
		ParticipantCategory: pCat,
		RobotCategory:       rCat,
		BettingStyle:        style,
		BaseBetAmount:       base,
	}
}

func cardsOf(wholes []string) []hand_processor.Card {
	cards := make([]hand_processor.Card, len(wholes))
	for i, w := range wholes {
		cards[i] = hand_processor.MustCard(w)
	}
	return cards
}

// 12套固定牌组，三种结局各4套。下注风格沿用原实验设定：
// 参与者赢的轮机器人激进、机器人赢的轮保守、平局中性
func DefaultCatalog() []*HandSetup {
	return []*HandSetup{
		// participant wins
		setupOf([]string{"Ah", "Ad"}, []string{"Kh", "9d"}, []string{"7c", "4s", "2d"},
			abstracts.OutcomeParticipantWins, hand_processor.HandOfOnePair, hand_processor.HandOfHighCard,
			abstracts.StyleAggressive, 2),
		setupOf([]string{"Th", "Td"}, []string{"Kh", "Qd"}, []string{"Tc", "5s", "2c"},
			abstracts.OutcomeParticipantWins, hand_processor.HandOfThreeOfAKind, hand_processor.HandOfHighCard,
			abstracts.StyleAggressive, 2),
		setupOf([]string{"Qh", "9h"}, []string{"Jd", "8d"}, []string{"Qd", "9c", "8s"},
			abstracts.OutcomeParticipantWins, hand_processor.HandOfTwoPair, hand_processor.HandOfOnePair,
			abstracts.StyleAggressive, 2),
		setupOf([]string{"6h", "5d"}, []string{"As", "Kd"}, []string{"4c", "3s", "2d"},
			abstracts.OutcomeParticipantWins, hand_processor.HandOfStraight, hand_processor.HandOfHighCard,
			abstracts.StyleAggressive, 2),

		// robot wins
		setupOf([]string{"Ks", "9c"}, []string{"As", "Ac"}, []string{"7h", "5d", "3c"},
			abstracts.OutcomeRobotWins, hand_processor.HandOfHighCard, hand_processor.HandOfOnePair,
			abstracts.StyleConservative, 1),
		setupOf([]string{"4h", "4d"}, []string{"9h", "9d"}, []string{"9s", "8c", "2h"},
			abstracts.OutcomeRobotWins, hand_processor.HandOfOnePair, hand_processor.HandOfThreeOfAKind,
			abstracts.StyleConservative, 1),
		setupOf([]string{"Ah", "Kd"}, []string{"Qs", "8s"}, []string{"Js", "6s", "3s"},
			abstracts.OutcomeRobotWins, hand_processor.HandOfHighCard, hand_processor.HandOfFlush,
			abstracts.StyleConservative, 1),
		setupOf([]string{"8h", "8s"}, []string{"Kc", "Kd"}, []string{"Qc", "7d", "3h"},
			abstracts.OutcomeRobotWins, hand_processor.HandOfOnePair, hand_processor.HandOfOnePair,
			abstracts.StyleConservative, 1),

		// tie
		setupOf([]string{"Qh", "Th"}, []string{"Qd", "Td"}, []string{"Qc", "Tc", "3s"},
			abstracts.OutcomeTie, hand_processor.HandOfTwoPair, hand_processor.HandOfTwoPair,
			abstracts.StyleNeutral, 1),
		setupOf([]string{"Qh", "Qs"}, []string{"Qd", "Qc"}, []string{"9h", "7c", "5d"},
			abstracts.OutcomeTie, hand_processor.HandOfOnePair, hand_processor.HandOfOnePair,
			abstracts.StyleNeutral, 1),
		setupOf([]string{"Ah", "9c"}, []string{"Ad", "9d"}, []string{"8s", "6h", "4d"},
			abstracts.OutcomeTie, hand_processor.HandOfHighCard, hand_processor.HandOfHighCard,
			abstracts.StyleNeutral, 1),
		setupOf([]string{"4d", "3h"}, []string{"4s", "3c"}, []string{"7h", "6c", "5s"},
			abstracts.OutcomeTie, hand_processor.HandOfStraight, hand_processor.HandOfStraight,
			abstracts.StyleNeutral, 1),
	}
}
