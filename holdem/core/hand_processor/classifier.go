package hand_processor

import (
	"sort"

	"github.com/roboholdem/roboholdem/holdem/common/g-error"
)

// 5张牌分类。返回牌型及决定比大小的点数列表
func Classify(cards []Card) (*Hand, error) {
	if len(cards) != 5 {
		return nil, g_error.ErrInvalidCardCount
	}
	seen := map[Card]bool{}
	for _, c := range cards {
		if !c.Valid() {
			return nil, g_error.ErrInvalidCard
		}
		if seen[c] {
			return nil, g_error.ErrDuplicateCard
		}
		seen[c] = true
	}

	category := detectCategory(cards)
	return NewHand(cards, category, TieBreakRanks(cards, category)), nil
}

func detectCategory(cards []Card) HandCategory {
	counts := rankCounts(cards)
	flush := isFlush(cards)
	_, straight := straightHigh(counts)

	pairs, trips, quads := 0, 0, 0
	for _, n := range counts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	switch {
	case flush && straight:
		return HandOfStraightFlush
	case quads == 1:
		return HandOfFourOfAKind
	case trips == 1 && pairs == 1:
		return HandOfFullHouse
	case flush:
		return HandOfFlush
	case straight:
		return HandOfStraight
	case trips == 1:
		return HandOfThreeOfAKind
	case pairs == 2:
		return HandOfTwoPair
	case pairs == 1:
		return HandOfOnePair
	}
	return HandOfHighCard
}

// key为HighRank（A记14）
func rankCounts(cards []Card) map[int]int {
	counts := map[int]int{}
	for _, c := range cards {
		counts[c.HighRank()]++
	}
	return counts
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// 判断5个不同点数是否构成顺子，返回顺子的高张。轮子A2345高张记5
func straightHigh(counts map[int]int) (int, bool) {
	if len(counts) != 5 {
		return 0, false
	}
	ranks := make([]int, 0, 5)
	for r := range counts {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)
	if ranks[4]-ranks[0] == 4 {
		return ranks[4], true
	}
	// A 2 3 4 5
	if ranks[4] == 14 && ranks[3] == 5 && ranks[0] == 2 {
		return 5, true
	}
	return 0, false
}

/*

按指定牌型抽取比大小用的点数列表。
牌型对不上牌面时（固定牌组允许声明与实际有出入），对应位置补0，保证同牌型下比较仍是全序。

*/
func TieBreakRanks(cards []Card, category HandCategory) []int {
	counts := rankCounts(cards)

	switch category {
	case HandOfStraight, HandOfStraightFlush:
		high, ok := straightHigh(counts)
		if !ok {
			return []int{0}
		}
		return []int{high}

	case HandOfFourOfAKind:
		quad := bestRankWithCount(counts, 4)
		return append([]int{quad}, kickersDesc(counts, 1, quad)...)

	case HandOfFullHouse:
		trip := bestRankWithCount(counts, 3)
		pair := 0
		for r, n := range counts {
			if n >= 2 && r != trip && r > pair {
				pair = r
			}
		}
		return []int{trip, pair}

	case HandOfThreeOfAKind:
		trip := bestRankWithCount(counts, 3)
		return append([]int{trip}, kickersDesc(counts, 2, trip)...)

	case HandOfTwoPair:
		p1, p2 := 0, 0
		for r, n := range counts {
			if n < 2 {
				continue
			}
			if r > p1 {
				p1, p2 = r, p1
			} else if r > p2 {
				p2 = r
			}
		}
		return append([]int{p1, p2}, kickersDesc(counts, 1, p1, p2)...)

	case HandOfOnePair:
		pair := bestRankWithCount(counts, 2)
		return append([]int{pair}, kickersDesc(counts, 3, pair)...)
	}

	// HighCard、Flush：5张降序
	return kickersDesc(counts, 5)
}

// 数量>=want的最大点数，没有则0
func bestRankWithCount(counts map[int]int, want int) int {
	best := 0
	for r, n := range counts {
		if n >= want && r > best {
			best = r
		}
	}
	return best
}

// 除去excluded点数后，降序取count个（不足补0）
func kickersDesc(counts map[int]int, count int, excluded ...int) []int {
	var ranks []int
	for r := range counts {
		skip := false
		for _, e := range excluded {
			if r == e {
				skip = true
				break
			}
		}
		if !skip {
			ranks = append(ranks, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	result := make([]int, count)
	copy(result, ranks)
	return result
}
