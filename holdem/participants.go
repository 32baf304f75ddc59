package holdem

import (
	"sync"

	"github.com/roboholdem/roboholdem/common/msg_server"
	"github.com/roboholdem/roboholdem/holdem/abstracts"
)

func NewParticipant(id string) *Participant {
	return &Participant{id: id}
}

type Participant struct {
	id string
}

func (p *Participant) ID() string {
	return p.id
}

func (p *Participant) Copy() abstracts.User {
	return &Participant{id: p.id}
}

func newParticipantRegistry() *participantRegistry {
	return &participantRegistry{}
}

// 实验里token就是主试分配的参与者编号，第一次握手时登记
type participantRegistry struct {
	participants sync.Map
}

func (r *participantRegistry) GetUserByToken(token string) msg_server.AbsUser {
	if token == "" {
		return nil
	}
	p, _ := r.participants.LoadOrStore(token, NewParticipant(token))
	return p.(*Participant)
}

func (r *participantRegistry) GetUser(id string) *Participant {
	if p, ok := r.participants.Load(id); ok {
		return p.(*Participant)
	}
	return nil
}
