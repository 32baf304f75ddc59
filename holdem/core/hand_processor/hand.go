package hand_processor

type HandCategory int

// 牌型从小到大
const (
	HandOfHighCard HandCategory = iota
	HandOfOnePair
	HandOfTwoPair
	HandOfThreeOfAKind
	HandOfStraight
	HandOfFlush
	HandOfFullHouse
	HandOfFourOfAKind
	HandOfStraightFlush
)

func (c HandCategory) String() string {
	switch c {
	case HandOfHighCard:
		return "high_card"
	case HandOfOnePair:
		return "one_pair"
	case HandOfTwoPair:
		return "two_pair"
	case HandOfThreeOfAKind:
		return "three_of_a_kind"
	case HandOfStraight:
		return "straight"
	case HandOfFlush:
		return "flush"
	case HandOfFullHouse:
		return "full_house"
	case HandOfFourOfAKind:
		return "four_of_a_kind"
	case HandOfStraightFlush:
		return "straight_flush"
	}
	return "unknown"
}

func NewHand(cards []Card, category HandCategory, ranks []int) *Hand {
	return &Hand{cards: cards, category: category, ranks: ranks}
}

type Hand struct {
	cards    []Card
	category HandCategory
	// 决定牌型的点数在前，kicker按降序在后。A记14，轮子顺高张记5
	ranks []int
}

func (h *Hand) Cards() []Card {
	return h.cards
}

func (h *Hand) Category() HandCategory {
	return h.category
}

func (h *Hand) Ranks() []int {
	return h.ranks
}
