package holdem

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/roboholdem/roboholdem/common/log"
	"github.com/roboholdem/roboholdem/common/msg_server"
	"github.com/roboholdem/roboholdem/common/util"
	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/core"
	"go.uber.org/zap"
)

func NewSessionServer(sessionCount int, level int, srvPort int, db ResultsDB,
	notifier abstracts.RobotNotifier, seed int64) *SessionServer {

	sl, ok := core.SessionLevels[level]
	if !ok {
		panic(fmt.Sprintf("unknown session level: %v", level))
	}
	// 牌组配置错误必须在启动时就暴露
	if _, err := core.NewScheduler(core.DefaultCatalog(), rand.New(rand.NewSource(seed))); err != nil {
		panic("invalid hand setup catalog: " + err.Error())
	}

	r := &SessionServer{registry: newParticipantRegistry()}
	r.wsServer = msg_server.NewWsServer(srvPort, r.registry, r)

	sessions := make([]*Session, sessionCount)
	for i := 0; i < sessionCount; i++ {
		sessions[i] = NewSession(i, sl, r.wsServer, notifier, db, rand.New(rand.NewSource(seed+int64(i))))
	}
	r.sessions = sessions
	return r
}

/*

实验房间：若干个单人session，参与者握手后quick start进一个空位。
记录哪个参与者在哪个session里，消息按此路由。

*/
type SessionServer struct {
	sessions []*Session
	wsServer *msg_server.WsServer
	// 记录哪个参与者在哪个session
	users sync.Map

	registry *participantRegistry

	started uint32
}

func (r *SessionServer) Handle(uID string, msgType int, mID int64, msg []byte) error {
	u := r.registry.GetUser(uID)
	if u == nil {
		log.L.Debug("receive msg, but can't find participant", zap.String("uid", uID))
		return errors.New("can't find participant: " + uID)
	}
	switch msgType {
	case abstracts.MsgTypeQuickStart:
		r.quickStart(abstracts.CommonMsg{MsgID: mID, User: u})
	case abstracts.MsgTypeLeave:
		r.leave(abstracts.CommonMsg{MsgID: mID, User: u})
	case abstracts.MsgTypeReady:
		r.ready(abstracts.CommonMsg{MsgID: mID, User: u})
	case abstracts.MsgTypeGameAction:
		var gMsg abstracts.PlayerActionMsg
		if err := util.ParseJsonFromBytes(msg, &gMsg); err != nil {
			return err
		}
		gMsg.UserID = uID
		gMsg.MsgID = mID
		r.gameMsg(gMsg)
	}
	return nil
}

// 快速开始
func (r *SessionServer) quickStart(msg abstracts.CommonMsg) {
	user := msg.User
	// 已在某个session里，直接把当前场景回给客户端
	tmp, ok := r.users.Load(user.ID())
	if ok {
		s := tmp.(*Session)
		r.sendMsg(msg, abstracts.MsgTypeSessionScene, s.GetScene(user.ID()))
		return
	}

	var toSession *Session
	// 找一个空位坐下
	for _, s := range r.sessions {
		if err := s.Enter(user); err == nil {
			toSession = s
			r.users.Store(user.ID(), s)
			break
		}
	}

	if toSession != nil {
		r.sendMsg(msg, abstracts.MsgTypeSessionScene, toSession.GetScene(user.ID()))
	} else {
		r.sendErr(msg, "no more seat")
	}
}

func (r *SessionServer) leave(msg abstracts.CommonMsg) {
	user := msg.User
	tmp, ok := r.users.Load(user.ID())
	if !ok {
		r.sendErr(msg, "participant not in any session")
		return
	}
	s := tmp.(*Session)

	if err := s.Leave(user); err != nil {
		r.sendErr(msg, err.Error())
		return
	}
	r.users.Delete(user.ID())

	r.sendSuccess(msg, "leave success")
}

func (r *SessionServer) ready(msg abstracts.CommonMsg) {
	user := msg.User
	tmp, ok := r.users.Load(user.ID())
	if !ok {
		r.sendErr(msg, "participant not in any session")
		return
	}
	s := tmp.(*Session)

	if err := s.Ready(user); err != nil {
		r.sendErr(msg, err.Error())
		return
	}
}

func (r *SessionServer) gameMsg(msg abstracts.PlayerActionMsg) {
	tmp, ok := r.users.Load(msg.UserID)
	if !ok {
		r.wsServer.Send(msg.UserID, abstracts.MsgTypeErr, msg.MsgID, util.StringifyJsonToBytes(abstracts.ErrResp{Info: "participant not in any session"}))
		return
	}
	s := tmp.(*Session)

	if err := s.Do(msg); err != nil {
		r.wsServer.Send(msg.UserID, abstracts.MsgTypeErr, msg.MsgID, util.StringifyJsonToBytes(abstracts.ErrResp{Info: err.Error()}))
		return
	}
}

// send success
func (r *SessionServer) sendSuccess(msg abstracts.CommonMsg, info string) {
	r.wsServer.Send(msg.User.ID(), abstracts.MsgTypeSuccess, msg.MsgID, util.StringifyJsonToBytes(abstracts.SuccessResp{Info: info}))
}

// send err
func (r *SessionServer) sendErr(msg abstracts.CommonMsg, info string) {
	r.wsServer.Send(msg.User.ID(), abstracts.MsgTypeErr, msg.MsgID, util.StringifyJsonToBytes(abstracts.ErrResp{Info: info}))
}

// send msg
func (r *SessionServer) sendMsg(msg abstracts.CommonMsg, mt int, data interface{}) {
	r.wsServer.Send(msg.User.ID(), mt, msg.MsgID, util.StringifyJsonToBytes(data))
}

func (r *SessionServer) startServer() error {
	go r.wsServer.Run()
	return nil
}

func (r *SessionServer) stopServer() error { return nil }

func (r *SessionServer) startSessions() error {
	for _, s := range r.sessions {
		if err := s.Start(); err != nil {
			return err
		}
	}
	return nil
}

func (r *SessionServer) stopSessions() error {
	for _, s := range r.sessions {
		if err := s.Stop(); err != nil {
			return err
		}
	}
	return nil
}

func (r *SessionServer) Start() error {
	if atomic.LoadUint32(&r.started) == 1 {
		return errors.New("session server already started")
	}

	if atomic.CompareAndSwapUint32(&r.started, 0, 1) {
		r.startSessions()
		r.startServer()
	} else {
		log.L.Warn("start server atomic.CompareAndSwapUint32(&r.started... is false")
	}

	return nil
}

func (r *SessionServer) Stop() error {
	if atomic.LoadUint32(&r.started) == 0 {
		return errors.New("session server not started")
	}

	if atomic.CompareAndSwapUint32(&r.started, 1, 0) {
		r.stopSessions()
		r.stopServer()
	} else {
		log.L.Warn("stop server atomic.CompareAndSwapUint32(&r.started... is false")
	}

	return nil
}
