package holdem

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/core"
	"github.com/roboholdem/roboholdem/holdem/results"
	"github.com/roboholdem/roboholdem/holdem/robot"
	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	mu   sync.Mutex
	msgs []fakeSentMsg
}

type fakeSentMsg struct {
	uID     string
	msgType int
}

func (f *fakeSender) Send(id string, msgType int, mID int64, msg []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, fakeSentMsg{uID: id, msgType: msgType})
}

func (f *fakeSender) countOf(msgType int) int {
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

type fakeDB struct {
	mu       sync.Mutex
	rounds   []results.RoundRecord
	sessions []results.SessionResult
}

func (f *fakeDB) SaveRounds(records []results.RoundRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rounds = append(f.rounds, records...)
	return nil
}

func (f *fakeDB) SaveSession(result results.SessionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, result)
	return nil
}

func testSession(db *fakeDB, sender *fakeSender, rounds uint) *Session {
	level := core.SessionLevel{Rounds: rounds, StartChips: 12, BetTimeout: 30 * time.Second}
	return NewSession(0, level, sender, robot.NewNoop(), db, rand.New(rand.NewSource(1)))
}

// 进位、准备、打完一整场、落库、清位
func TestSession_FullFlow(t *testing.T) {
	prepareWait = 100 * time.Millisecond

	sender := &fakeSender{}
	db := &fakeDB{}
	s := testSession(db, sender, 2)
	assert.NoError(t, s.Start())

	u := NewParticipant("p1")
	assert.NoError(t, s.Enter(u))
	assert.Error(t, s.Enter(NewParticipant("p2")))
	assert.Equal(t, 1, sender.countOf(abstracts.MsgTypePrepare))

	assert.NoError(t, s.Ready(u))
	time.Sleep(300 * time.Millisecond)

	scene := s.GetScene("p1")
	assert.NotNil(t, scene)
	assert.Equal(t, uint(1), scene.Round)

	// 对局中不能离开
	assert.Error(t, s.Leave(u))

	for round := uint(1); round <= 2; round++ {
		err := s.Do(abstracts.PlayerActionMsg{
			UserID: "p1", Round: round, ActionType: abstracts.GameActionOfBet, Amount: 1,
		})
		assert.NoError(t, err)
	}
	time.Sleep(200 * time.Millisecond)

	db.mu.Lock()
	assert.Equal(t, 2, len(db.rounds))
	assert.Equal(t, 1, len(db.sessions))
	assert.Equal(t, 24, db.sessions[0].ParticipantChips+db.sessions[0].RobotChips)
	assert.Equal(t, "p1", db.sessions[0].ParticipantID)
	db.mu.Unlock()

	assert.Equal(t, 1, sender.countOf(abstracts.MsgTypeSessionResult))

	// 跑完清位，能再进
	assert.Nil(t, s.GetScene("p1"))
	assert.NoError(t, s.Enter(u))

	assert.NoError(t, s.Stop())
}

// 准备计时到还没ready就移除
func TestSession_NotReadyKicked(t *testing.T) {
	prepareWait = 100 * time.Millisecond

	sender := &fakeSender{}
	s := testSession(&fakeDB{}, sender, 2)
	assert.NoError(t, s.Start())

	u := NewParticipant("p1")
	assert.NoError(t, s.Enter(u))
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 1, sender.countOf(abstracts.MsgTypeNotReadyLeave))
	// 位子已空
	assert.NoError(t, s.Enter(u))

	assert.NoError(t, s.Stop())
}

func TestSession_DoWithoutGame(t *testing.T) {
	s := testSession(&fakeDB{}, &fakeSender{}, 2)
	assert.NoError(t, s.Start())

	err := s.Do(abstracts.PlayerActionMsg{UserID: "p1", Round: 1, ActionType: abstracts.GameActionOfBet, Amount: 1})
	assert.Error(t, err)

	assert.NoError(t, s.Stop())
}

func TestParticipantRegistry(t *testing.T) {
	r := newParticipantRegistry()

	assert.Nil(t, r.GetUserByToken(""))
	assert.Nil(t, r.GetUser("p1"))

	u := r.GetUserByToken("p1")
	assert.NotNil(t, u)
	assert.Equal(t, "p1", u.ID())
	// 同一token拿到同一个登记对象
	assert.Equal(t, u, r.GetUserByToken("p1"))
	assert.Equal(t, "p1", r.GetUser("p1").ID())
}
