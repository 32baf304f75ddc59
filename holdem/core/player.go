package core

import (
	"github.com/roboholdem/roboholdem/common/log"
	"go.uber.org/zap"
)

func NewActor(id string, chips int) *Actor {
	return &Actor{id: id, origin: chips, remain: chips}
}

// 对局里的一方（参与者或机器人）的筹码状态。赢来的筹码下一轮可以继续下
type Actor struct {
	id     string
	origin int
	remain int
	// 累计赢得的筹码，统计用
	win int
}

func (a *Actor) ID() string {
	return a.id
}

func (a *Actor) Bet(amount int) (enough bool, isAllIn bool) {
	if amount > a.remain {
		return false, false
	}
	enough = true
	if amount == a.remain && a.remain > 0 {
		log.L.Debug("tag actor all in", zap.String("actor", a.id))
		isAllIn = true
	}
	a.remain -= amount
	return
}

func (a *Actor) WinChips(amount int) {
	a.win += amount
	a.remain += amount
}

func (a *Actor) Chips() int {
	return a.remain
}

func (a *Actor) OriginChips() int {
	return a.origin
}

// 对局结果
func (a *Actor) Result() (change int, isAdd bool) {
	if a.remain > a.origin {
		return a.remain - a.origin, true
	}
	return a.origin - a.remain, false
}
