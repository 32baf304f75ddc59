package hand_processor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCard(t *testing.T) {
	c, err := ParseCard("As")
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Rank)
	assert.Equal(t, byte('s'), c.Suit)
	assert.Equal(t, 14, c.HighRank())
	assert.Equal(t, "As", c.Whole())

	c, err = ParseCard("Th")
	assert.NoError(t, err)
	assert.Equal(t, 10, c.Rank)
	assert.Equal(t, 10, c.HighRank())

	_, err = ParseCard("1s")
	assert.Error(t, err)
	_, err = ParseCard("Ax")
	assert.Error(t, err)
	_, err = ParseCard("Ahh")
	assert.Error(t, err)
}

func TestNewCard(t *testing.T) {
	_, err := NewCard(0, 'h')
	assert.Error(t, err)
	_, err = NewCard(14, 'h')
	assert.Error(t, err)
	_, err = NewCard(5, 'x')
	assert.Error(t, err)
	c, err := NewCard(13, 'd')
	assert.NoError(t, err)
	assert.Equal(t, "Kd", c.Whole())
}

func TestMakeDeck(t *testing.T) {
	deck := MakeDeck()
	assert.Len(t, deck, 52)

	seen := map[string]bool{}
	for _, c := range deck {
		assert.False(t, seen[c.Whole()])
		seen[c.Whole()] = true
	}
}

func TestShuffleCards(t *testing.T) {
	d1 := MakeDeck()
	d2 := MakeDeck()
	ShuffleCards(d1, rand.New(rand.NewSource(7)))
	ShuffleCards(d2, rand.New(rand.NewSource(7)))
	// 同seed同结果
	assert.Equal(t, d1, d2)

	d3 := MakeDeck()
	ShuffleCards(d3, rand.New(rand.NewSource(8)))
	assert.NotEqual(t, d1, d3)
	assert.Len(t, d3, 52)
}
