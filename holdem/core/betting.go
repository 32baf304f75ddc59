package core

import (
	"math/rand"

	"github.com/roboholdem/roboholdem/holdem/abstracts"
)

// bluff × 强弱 的四种局面
type betSituation int

const (
	bluffStrong betSituation = iota
	bluffWeak
	honestStrong
	honestWeak
)

// 台词模板，纯数据，按局面和风格查表
var betMessages = map[betSituation]map[abstracts.BettingStyle]string{
	bluffStrong: {
		abstracts.StyleAggressive:   "Robot raises, but seems uncertain.",
		abstracts.StyleConservative: "Robot calls reluctantly.",
		abstracts.StyleNeutral:      "Robot matches your bet with a sigh.",
	},
	bluffWeak: {
		abstracts.StyleAggressive:   "Robot raises confidently!",
		abstracts.StyleConservative: "Robot calls with a smile.",
		abstracts.StyleNeutral:      "Robot matches your bet without hesitation.",
	},
	honestStrong: {
		abstracts.StyleAggressive:   "Robot raises with confidence!",
		abstracts.StyleConservative: "Robot calls decisively.",
		abstracts.StyleNeutral:      "Robot matches your bet confidently.",
	},
	honestWeak: {
		abstracts.StyleAggressive:   "Robot raises, but seems uncertain.",
		abstracts.StyleConservative: "Robot calls cautiously.",
		abstracts.StyleNeutral:      "Robot hesitantly matches your bet.",
	},
}

const (
	// 激进风格面对下注时加注的概率
	aggressiveRaiseP = 0.7
	// 保守风格面对大注时平跟的概率
	conservativeCallP = 0.6
)

func NewBettingPolicy(rnd *rand.Rand) *BettingPolicy {
	return &BettingPolicy{rnd: rnd}
}

// 除rnd外无状态
type BettingPolicy struct {
	rnd *rand.Rand
}

/*

计算机器人本轮下注。
1. 按 (bluff, 本轮是否利己) 查台词模板
1. 同一组合对base做±1微调：强牌装弱压一点，弱牌装强抬一点
1. 对照参与者的prior bet决定开注/过牌/加注/跟注
1. 夹到[0, stack]，打满则在台词后追加all in标记

*/
func (p *BettingPolicy) Decide(priorBet, stack int, style abstracts.BettingStyle, base int,
	declared abstracts.Outcome, bluffing bool) (int, string) {

	strong := declared == abstracts.OutcomeRobotWins
	situation := situationOf(bluffing, strong)
	message := betMessages[situation][style]
	if message == "" {
		message = "Robot bets."
	}

	base = adjustBase(situation, style, base, stack)

	var amount int
	switch {
	case priorBet <= 0:
		// 参与者过牌：激进或者诚实强牌就开注，否则跟着过
		if style == abstracts.StyleAggressive || (!bluffing && strong) {
			amount = base
		}
	case style == abstracts.StyleAggressive:
		if p.rnd.Float64() < aggressiveRaiseP {
			amount = priorBet + base
		} else {
			amount = priorBet
		}
	case style == abstracts.StyleConservative && priorBet > 1:
		if p.rnd.Float64() < conservativeCallP {
			amount = priorBet
		} else {
			amount = maxInt(base, priorBet)
		}
	default:
		amount = maxInt(base, priorBet)
	}

	if amount < 0 {
		amount = 0
	}
	if amount >= stack {
		amount = stack
		// 筹码已清零时只是被迫过牌，不算all in
		if stack > 0 {
			message += " (All in!)"
		}
	}
	return amount, message
}

func situationOf(bluffing, strong bool) betSituation {
	switch {
	case bluffing && strong:
		return bluffStrong
	case bluffing:
		return bluffWeak
	case strong:
		return honestStrong
	}
	return honestWeak
}

// 强牌低调、弱牌高调时的±1微调
func adjustBase(situation betSituation, style abstracts.BettingStyle, base, stack int) int {
	switch situation {
	case bluffStrong, honestWeak:
		if style == abstracts.StyleAggressive {
			base = maxInt(1, base-1)
		}
	case bluffWeak, honestStrong:
		if style != abstracts.StyleAggressive {
			base = minInt(stack, base+1)
		}
	}
	return base
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
