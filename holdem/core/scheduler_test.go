package core

import (
	"math/rand"
	"testing"

	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/common/g-error"
	"github.com/stretchr/testify/assert"
)

// 每6轮的窗口里三种结局各出现2次，cursor绕回后也是
func TestScheduler_Balance(t *testing.T) {
	s := newTestScheduler(1)
	assert.Equal(t, 12, s.CycleLen())

	outcomes := make([]abstracts.Outcome, 0, 24)
	for i := 0; i < 24; i++ {
		outcomes = append(outcomes, s.Next().DeclaredOutcome)
	}

	for w := 0; w+6 <= len(outcomes); w += 6 {
		counts := map[abstracts.Outcome]int{}
		for _, o := range outcomes[w : w+6] {
			counts[o]++
		}
		assert.Equal(t, 2, counts[abstracts.OutcomeParticipantWins], "window %v", w)
		assert.Equal(t, 2, counts[abstracts.OutcomeRobotWins], "window %v", w)
		assert.Equal(t, 2, counts[abstracts.OutcomeTie], "window %v", w)
	}
}

func TestScheduler_BluffCoin(t *testing.T) {
	s := newTestScheduler(2)

	trueCount := 0
	for i := 0; i < 200; i++ {
		if s.Next().IsBluffing {
			trueCount++
		}
	}
	// 50%硬币，两个值都得出现
	assert.True(t, trueCount > 50 && trueCount < 150, "bluff count %v", trueCount)
}

func TestScheduler_NextReturnsClone(t *testing.T) {
	s := newTestScheduler(3)

	setup := s.Next()
	setup.BaseBetAmount = 999
	for i := 0; i < s.CycleLen(); i++ {
		assert.NotEqual(t, 999, s.Next().BaseBetAmount)
	}
}

func TestScheduler_GroupTooSmall(t *testing.T) {
	d := DefaultCatalog()
	catalog := []*HandSetup{d[0], d[1], d[4], d[5], d[8]}

	_, err := NewScheduler(catalog, rand.New(rand.NewSource(1)))
	assert.Equal(t, g_error.ErrCatalogGroupTooSmall, err)
}

func TestScheduler_Unbalanced(t *testing.T) {
	d := DefaultCatalog()
	catalog := []*HandSetup{d[0], d[1], d[4], d[5], d[8], d[9], d[10], d[11]}

	_, err := NewScheduler(catalog, rand.New(rand.NewSource(1)))
	assert.Equal(t, g_error.ErrCatalogUnbalanced, err)
}

func TestScheduler_DeclaredMismatch(t *testing.T) {
	d := DefaultCatalog()
	bad := *d[0]
	bad.DeclaredOutcome = abstracts.OutcomeTie
	d[0] = &bad

	_, err := NewScheduler(d, rand.New(rand.NewSource(1)))
	assert.Equal(t, g_error.ErrCatalogDeclaredMismatch, err)
}

func TestScheduler_BaseBetTooSmall(t *testing.T) {
	d := DefaultCatalog()
	bad := *d[0]
	bad.BaseBetAmount = 0
	d[0] = &bad

	_, err := NewScheduler(d, rand.New(rand.NewSource(1)))
	assert.Equal(t, g_error.ErrCatalogDeclaredMismatch, err)
}

// 强制结局不推进cursor，之后的窗口平衡不受影响
func TestScheduler_ForceNextOutcome(t *testing.T) {
	s := newTestScheduler(4)

	s.ForceNextOutcome(abstracts.OutcomeTie)
	assert.Equal(t, abstracts.OutcomeTie, s.Next().DeclaredOutcome)

	counts := map[abstracts.Outcome]int{}
	for i := 0; i < 6; i++ {
		counts[s.Next().DeclaredOutcome]++
	}
	assert.Equal(t, 2, counts[abstracts.OutcomeParticipantWins])
	assert.Equal(t, 2, counts[abstracts.OutcomeRobotWins])
	assert.Equal(t, 2, counts[abstracts.OutcomeTie])
}

func TestScheduler_PinNextBluff(t *testing.T) {
	s := newTestScheduler(5)

	s.PinNextBluff(true)
	assert.True(t, s.Next().IsBluffing)

	s.PinNextBluff(false)
	assert.False(t, s.Next().IsBluffing)
}
