package hand_processor

import (
	"testing"

	"github.com/roboholdem/roboholdem/holdem/common/g-error"
	"github.com/stretchr/testify/assert"
)

func cardsOf(wholes ...string) []Card {
	cards := make([]Card, len(wholes))
	for i, w := range wholes {
		cards[i] = MustCard(w)
	}
	return cards
}

func TestClassify(t *testing.T) {
	cases := []struct {
		cards    []string
		category HandCategory
		ranks    []int
	}{
		{[]string{"Ah", "Kd", "9c", "7s", "2h"}, HandOfHighCard, []int{14, 13, 9, 7, 2}},
		{[]string{"Th", "Td", "Kh", "9c", "2s"}, HandOfOnePair, []int{10, 13, 9, 2}},
		{[]string{"Qh", "Qd", "9h", "9c", "2s"}, HandOfTwoPair, []int{12, 9, 2}},
		{[]string{"Th", "Td", "Tc", "9c", "2s"}, HandOfThreeOfAKind, []int{10, 9, 2}},
		{[]string{"6h", "5d", "4c", "3s", "2h"}, HandOfStraight, []int{6}},
		{[]string{"Ah", "2d", "3c", "4s", "5h"}, HandOfStraight, []int{5}},
		{[]string{"Qs", "8s", "Js", "6s", "3s"}, HandOfFlush, []int{12, 11, 8, 6, 3}},
		{[]string{"Th", "Td", "Tc", "9c", "9s"}, HandOfFullHouse, []int{10, 9}},
		{[]string{"Th", "Td", "Tc", "Ts", "9s"}, HandOfFourOfAKind, []int{10, 9}},
		{[]string{"9s", "8s", "7s", "6s", "5s"}, HandOfStraightFlush, []int{9}},
		{[]string{"As", "2s", "3s", "4s", "5s"}, HandOfStraightFlush, []int{5}},
		// TJQKA是以A为高张的顺子
		{[]string{"Th", "Jd", "Qc", "Ks", "Ah"}, HandOfStraight, []int{14}},
	}

	for _, c := range cases {
		h, err := Classify(cardsOf(c.cards...))
		assert.NoError(t, err)
		assert.Equal(t, c.category, h.Category(), "cards: %v", c.cards)
		assert.Equal(t, c.ranks, h.Ranks(), "cards: %v", c.cards)
		// 分类结果要带着被评的牌
		assert.Equal(t, cardsOf(c.cards...), h.Cards(), "cards: %v", c.cards)
	}
}

func TestClassifyInvalid(t *testing.T) {
	_, err := Classify(cardsOf("Ah", "Kd", "9c", "7s"))
	assert.Equal(t, g_error.ErrInvalidCardCount, err)

	_, err = Classify(cardsOf("Ah", "Ah", "9c", "7s", "2h"))
	assert.Equal(t, g_error.ErrDuplicateCard, err)

	_, err = Classify([]Card{{Rank: 20, Suit: 'h'}, MustCard("Kd"), MustCard("9c"), MustCard("7s"), MustCard("2h")})
	assert.Equal(t, g_error.ErrInvalidCard, err)
}

// K2345不是顺子
func TestStraightNotWrapping(t *testing.T) {
	h, err := Classify(cardsOf("Kh", "2d", "3c", "4s", "5h"))
	assert.NoError(t, err)
	assert.Equal(t, HandOfHighCard, h.Category())
}

func TestTieBreakRanksFixedLength(t *testing.T) {
	// 声明牌型与实际不符时补0，不panic
	ranks := TieBreakRanks(cardsOf("Ah", "Kd", "9c", "7s", "2h"), HandOfOnePair)
	assert.Len(t, ranks, 4)
	assert.Equal(t, 0, ranks[0])

	ranks = TieBreakRanks(cardsOf("Ah", "Kd", "9c", "7s", "2h"), HandOfStraight)
	assert.Equal(t, []int{0}, ranks)
}

func TestTieBreakRanksSharedTrips(t *testing.T) {
	// 共享公共对形成的三条，kicker顺序决定大小
	r1 := TieBreakRanks(cardsOf("Th", "Td", "Tc", "Kc", "2s"), HandOfThreeOfAKind)
	r2 := TieBreakRanks(cardsOf("Th", "Td", "Tc", "Qc", "9s"), HandOfThreeOfAKind)
	assert.Equal(t, []int{10, 13, 2}, r1)
	assert.Equal(t, []int{10, 12, 9}, r2)
}
