package core

import "time"

// 实验配置档位
var SessionLevels = map[int]SessionLevel{
	1: {Rounds: 6, StartChips: 12, BetTimeout: 30 * time.Second},
	2: {Rounds: 12, StartChips: 24, BetTimeout: 30 * time.Second},
	3: {Rounds: 6, StartChips: 12, BetTimeout: 2 * time.Minute},
}

type SessionLevel struct {
	// 每场多少轮
	Rounds uint
	// 双方各带入多少筹码
	StartChips int
	// 等参与者下注多久算弃牌
	BetTimeout time.Duration
}
