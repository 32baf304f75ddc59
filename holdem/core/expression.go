package core

import (
	"math/rand"

	"github.com/roboholdem/roboholdem/holdem/abstracts"
)

type HandQuality string

const (
	QualityGood    HandQuality = "good"
	QualityAverage HandQuality = "average"
	QualityBad     HandQuality = "bad"
)

// 结局对机器人而言的牌力标签
func QualityOf(declared abstracts.Outcome) HandQuality {
	switch declared {
	case abstracts.OutcomeRobotWins:
		return QualityGood
	case abstracts.OutcomeTie:
		return QualityAverage
	}
	return QualityBad
}

// bluff时表情与真实牌力相反
func ExpressionOf(declared abstracts.Outcome, bluffing bool) abstracts.ExpressionCode {
	strong := declared == abstracts.OutcomeRobotWins
	if bluffing == strong {
		return abstracts.ExpressionUncertain
	}
	return abstracts.ExpressionConfident
}

// 下注时的台词，按 bluff × 牌力 分组
var bettingLines = map[bool]map[HandQuality][]string{
	true: {
		QualityGood: {
			"Hmm, I'm not sure about this hand.",
			"This is tricky.",
			"I need to think about this one.",
		},
		QualityAverage: {
			"I like these cards!",
			"This looks promising.",
			"I'm feeling lucky with this hand.",
		},
		QualityBad: {
			"I like these cards!",
			"This looks promising.",
			"I'm feeling lucky with this hand.",
		},
	},
	false: {
		QualityGood: {
			"I have a strong hand.",
			"These cards look great!",
			"I'm feeling confident.",
		},
		QualityAverage: {
			"My cards are okay.",
			"This is a decent hand.",
			"Let's see what happens.",
		},
		QualityBad: {
			"Not the best cards.",
			"This hand is challenging.",
			"I'll need some luck with these cards.",
		},
	},
}

var newRoundLines = []string{
	"Let's play a new round.",
	"Ready for the next hand?",
	"New cards, new opportunities.",
	"Let's see what we get this time.",
}

var winLines = []string{
	"I won this round!",
	"Great! I take this pot.",
	"That was a good hand for me.",
	"Looks like I won this time.",
}

var lossLines = []string{
	"You won this round.",
	"Congratulations, that was a good play.",
	"You got me this time.",
	"Well played.",
}

var tieLines = []string{
	"It's a tie.",
	"We both had similar hands.",
	"Let's split the pot.",
	"Neither of us wins this time.",
}

func NewExpressionPolicy(rnd *rand.Rand) *ExpressionPolicy {
	return &ExpressionPolicy{rnd: rnd}
}

type ExpressionPolicy struct {
	rnd *rand.Rand
}

// 从对应局面的台词集中均匀取一条
func (p *ExpressionPolicy) SpokenLine(declared abstracts.Outcome, quality HandQuality, bluffing bool) string {
	lines := bettingLines[bluffing][quality]
	if len(lines) == 0 {
		lines = bettingLines[false][QualityAverage]
	}
	return p.pick(lines)
}

func (p *ExpressionPolicy) NewRoundLine() string {
	return p.pick(newRoundLines)
}

// 轮末台词按实际结局说
func (p *ExpressionPolicy) RoundEndLine(actual abstracts.Outcome) string {
	switch actual {
	case abstracts.OutcomeRobotWins:
		return p.pick(winLines)
	case abstracts.OutcomeParticipantWins:
		return p.pick(lossLines)
	}
	return p.pick(tieLines)
}

// 轮末表情按实际结局摆
func RoundEndExpression(actual abstracts.Outcome) abstracts.ExpressionCode {
	switch actual {
	case abstracts.OutcomeRobotWins:
		return abstracts.ExpressionHappy
	case abstracts.OutcomeParticipantWins:
		return abstracts.ExpressionSad
	}
	return abstracts.ExpressionNeutral
}

func (p *ExpressionPolicy) pick(lines []string) string {
	return lines[p.rnd.Intn(len(lines))]
}
