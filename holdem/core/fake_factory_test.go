package core

import (
	"math/rand"
	"sync"

	"github.com/roboholdem/roboholdem/holdem/abstracts"
)

// 记录发出去的消息
type fakeMsgSender struct {
	mu   sync.Mutex
	msgs []sentMsg
}

type sentMsg struct {
	uID     string
	msgType int
	msg     []byte
}

func (f *fakeMsgSender) Send(id string, msgType int, mID int64, msg []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, sentMsg{uID: id, msgType: msgType, msg: msg})
}

func (f *fakeMsgSender) countOf(msgType int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, m := range f.msgs {
		if m.msgType == msgType {
			count++
		}
	}
	return count
}

// 记录机器人收到的通知
type fakeNotifier struct {
	mu           sync.Mutex
	newRounds    int
	bettingTurns []abstracts.ExpressionCode
	roundEnds    []abstracts.ExpressionCode
	voices       []string
}

func (f *fakeNotifier) OnNewRound(round uint, line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newRounds++
}

func (f *fakeNotifier) OnBettingTurn(expression abstracts.ExpressionCode, line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bettingTurns = append(f.bettingTurns, expression)
}

func (f *fakeNotifier) OnRoundEnd(expression abstracts.ExpressionCode, line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roundEnds = append(f.roundEnds, expression)
}

func (f *fakeNotifier) SetVoiceGender(gender string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.voices = append(f.voices, gender)
}

func (f *fakeNotifier) roundEndCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.roundEnds)
}

func newTestScheduler(seed int64) *Scheduler {
	s, err := NewScheduler(DefaultCatalog(), rand.New(rand.NewSource(seed)))
	if err != nil {
		panic(err)
	}
	return s
}
