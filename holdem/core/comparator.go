package core

import (
	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/common/g-error"
	"github.com/roboholdem/roboholdem/holdem/core/hand_processor"
)

type Comparator struct{}

/*

摊牌比较。先比牌型，同牌型再按各牌型的kicker规则比点数。
牌型用牌组里声明的值，不在这里重新分类（研究流程要求按声明走，
固定牌组在调度器初始化时已和Classify核对过）。

*/
func (cp *Comparator) Compare(participantHole, robotHole, community []hand_processor.Card,
	participantCat, robotCat hand_processor.HandCategory) (abstracts.Outcome, error) {

	if err := validateShowdownCards(participantHole, robotHole, community); err != nil {
		return 0, err
	}

	if participantCat != robotCat {
		if participantCat > robotCat {
			return abstracts.OutcomeParticipantWins, nil
		}
		return abstracts.OutcomeRobotWins, nil
	}

	pRanks := hand_processor.TieBreakRanks(pool(participantHole, community), participantCat)
	rRanks := hand_processor.TieBreakRanks(pool(robotHole, community), robotCat)
	switch cmpRanks(pRanks, rRanks) {
	case 1:
		return abstracts.OutcomeParticipantWins, nil
	case -1:
		return abstracts.OutcomeRobotWins, nil
	}
	return abstracts.OutcomeTie, nil
}

// 不信任声明牌型的版本：先用Classify分出双方牌型再比较
func (cp *Comparator) CompareClassified(participantHole, robotHole, community []hand_processor.Card) (
	abstracts.Outcome, hand_processor.HandCategory, hand_processor.HandCategory, error) {

	if err := validateShowdownCards(participantHole, robotHole, community); err != nil {
		return 0, 0, 0, err
	}

	pHand, err := hand_processor.Classify(pool(participantHole, community))
	if err != nil {
		return 0, 0, 0, err
	}
	rHand, err := hand_processor.Classify(pool(robotHole, community))
	if err != nil {
		return 0, 0, 0, err
	}

	outcome, err := cp.Compare(participantHole, robotHole, community, pHand.Category(), rHand.Category())
	return outcome, pHand.Category(), rHand.Category(), err
}

func pool(hole, community []hand_processor.Card) []hand_processor.Card {
	result := make([]hand_processor.Card, 0, len(hole)+len(community))
	result = append(result, hole...)
	return append(result, community...)
}

func validateShowdownCards(participantHole, robotHole, community []hand_processor.Card) error {
	if len(participantHole) != 2 || len(robotHole) != 2 {
		return g_error.ErrInvalidHoleCards
	}
	if len(community) != 3 {
		return g_error.ErrInvalidCommunity
	}
	seen := map[hand_processor.Card]bool{}
	for _, cs := range [][]hand_processor.Card{participantHole, robotHole, community} {
		for _, c := range cs {
			if !c.Valid() {
				return g_error.ErrInvalidCard
			}
			if seen[c] {
				return g_error.ErrDuplicateCard
			}
			seen[c] = true
		}
	}
	return nil
}

// r1 > r2 return 1, r1 < r2 return -1, r1 == r2 return 0
func cmpRanks(r1, r2 []int) int {
	n := len(r1)
	if len(r2) < n {
		n = len(r2)
	}
	for i := 0; i < n; i++ {
		if r1[i] > r2[i] {
			return 1
		}
		if r1[i] < r2[i] {
			return -1
		}
	}
	return 0
}
