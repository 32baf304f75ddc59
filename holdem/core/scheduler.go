package core

import (
	"math/rand"

	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/common/g-error"
)

/*

结局调度器。固定牌组按声明结局分三组，每6轮一个周期，
周期内三种结局各出2次，周期内顺序打乱。cursor到底后绕回。
非并发安全，一个对局实例独占一个调度器。

*/
func NewScheduler(catalog []*HandSetup, rnd *rand.Rand) (*Scheduler, error) {
	s := &Scheduler{
		catalog: catalog,
		rnd:     rnd,
		groups:  map[abstracts.Outcome][]int{},
	}

	for i, setup := range catalog {
		if err := s.validateSetup(setup); err != nil {
			return nil, err
		}
		s.groups[setup.DeclaredOutcome] = append(s.groups[setup.DeclaredOutcome], i)
	}

	if err := s.buildSequence(); err != nil {
		return nil, err
	}
	return s, nil
}

type Scheduler struct {
	catalog  []*HandSetup
	sequence []int
	cursor   int
	rnd      *rand.Rand

	groups map[abstracts.Outcome][]int

	// admin override，用一次即清
	forcedOutcome abstracts.Outcome
	pinnedBluff   *bool

	comparator Comparator
}

// 牌组自检：7张互不相同，声明的牌型和结局必须与Classify/Compare一致
func (s *Scheduler) validateSetup(setup *HandSetup) error {
	outcome, pCat, rCat, err := s.comparator.CompareClassified(
		setup.ParticipantCards, setup.RobotCards, setup.CommunityCards)
	if err != nil {
		return err
	}
	if pCat != setup.ParticipantCategory || rCat != setup.RobotCategory || outcome != setup.DeclaredOutcome {
		return g_error.ErrCatalogDeclaredMismatch
	}
	if setup.BaseBetAmount < 1 {
		return g_error.ErrCatalogDeclaredMismatch
	}
	return nil
}

func (s *Scheduler) buildSequence() error {
	outcomes := []abstracts.Outcome{abstracts.OutcomeParticipantWins, abstracts.OutcomeRobotWins, abstracts.OutcomeTie}

	cycles := -1
	for _, o := range outcomes {
		group := s.groups[o]
		if len(group) < 2 {
			return g_error.ErrCatalogGroupTooSmall
		}
		if cycles == -1 || len(group)/2 < cycles {
			cycles = len(group) / 2
		}
	}
	// 不允许多出覆盖不到的牌组
	for _, o := range outcomes {
		if len(s.groups[o]) != cycles*2 {
			return g_error.ErrCatalogUnbalanced
		}
	}

	shuffled := map[abstracts.Outcome][]int{}
	for _, o := range outcomes {
		group := append([]int{}, s.groups[o]...)
		shuffleInts(group, s.rnd)
		shuffled[o] = group
	}

	for c := 0; c < cycles; c++ {
		cycle := make([]int, 0, 6)
		for _, o := range outcomes {
			cycle = append(cycle, shuffled[o][2*c], shuffled[o][2*c+1])
		}
		shuffleInts(cycle, s.rnd)
		s.sequence = append(s.sequence, cycle...)
	}
	return nil
}

// 取下一轮的牌组，同时掷50%的bluff硬币
func (s *Scheduler) Next() *HandSetup {
	var setup *HandSetup
	if s.forcedOutcome != 0 {
		group := s.groups[s.forcedOutcome]
		setup = s.catalog[group[s.rnd.Intn(len(group))]].clone()
		s.forcedOutcome = 0
	} else {
		setup = s.catalog[s.sequence[s.cursor%len(s.sequence)]].clone()
		s.cursor++
	}

	if s.pinnedBluff != nil {
		setup.IsBluffing = *s.pinnedBluff
		s.pinnedBluff = nil
	} else {
		setup.IsBluffing = s.rnd.Intn(2) == 0
	}
	return setup
}

// 管理面板用：强制下一轮结局，不推进cursor
func (s *Scheduler) ForceNextOutcome(o abstracts.Outcome) {
	if len(s.groups[o]) > 0 {
		s.forcedOutcome = o
	}
}

// 管理面板用：钉住下一轮的bluff标志
func (s *Scheduler) PinNextBluff(b bool) {
	s.pinnedBluff = &b
}

func (s *Scheduler) CycleLen() int {
	return len(s.sequence)
}

func shuffleInts(xs []int, rnd *rand.Rand) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
