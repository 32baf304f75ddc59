package hand_processor

import (
	"math/rand"

	"github.com/roboholdem/roboholdem/holdem/common/g-error"
)

// rank: 1(A) 2~10 11(J) 12(Q) 13(K)
// suit: h d c s
const (
	facesStr  = "?A23456789TJQK"
	colorsStr = "hdcs"

	RankAce   = 1
	RankTen   = 10
	RankJack  = 11
	RankQueen = 12
	RankKing  = 13

	// A作为高牌时的点数
	aceHigh = 14
)

type Card struct {
	Rank int
	Suit byte
}

func NewCard(rank int, suit byte) (Card, error) {
	c := Card{Rank: rank, Suit: suit}
	if !c.Valid() {
		return Card{}, g_error.ErrInvalidCard
	}
	return c, nil
}

// 从"As"、"Th"这样的两字符串构造
func ParseCard(whole string) (Card, error) {
	if len(whole) != 2 {
		return Card{}, g_error.ErrInvalidCard
	}
	rank := -1
	for i := 1; i < len(facesStr); i++ {
		if facesStr[i] == whole[0] {
			rank = i
			break
		}
	}
	if rank == -1 {
		return Card{}, g_error.ErrInvalidCard
	}
	return NewCard(rank, whole[1])
}

// 写固定牌组时用，非法直接panic
func MustCard(whole string) Card {
	c, err := ParseCard(whole)
	if err != nil {
		panic("invalid card: " + whole)
	}
	return c
}

func (c Card) Valid() bool {
	if c.Rank < 1 || c.Rank > 13 {
		return false
	}
	switch c.Suit {
	case 'h', 'd', 'c', 's':
		return true
	}
	return false
}

func (c Card) Face() byte {
	return facesStr[c.Rank]
}

// face + suit
func (c Card) Whole() string {
	return string([]byte{c.Face(), c.Suit})
}

// 比大小时A记14
func (c Card) HighRank() int {
	if c.Rank == RankAce {
		return aceHigh
	}
	return c.Rank
}

// 52张整牌
func MakeDeck() []Card {
	deck := make([]Card, 0, 52)
	for rank := 1; rank <= 13; rank++ {
		for i := 0; i < len(colorsStr); i++ {
			deck = append(deck, Card{Rank: rank, Suit: colorsStr[i]})
		}
	}
	return deck
}

// 洗牌。rnd由外部注入，方便测试复现
func ShuffleCards(cards []Card, rnd *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
