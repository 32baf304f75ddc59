package msg_server

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/roboholdem/roboholdem/common/log"
	"github.com/roboholdem/roboholdem/common/util"
	"github.com/stretchr/testify/assert"
)

const (
	playReqMsg  = 0x1
	playRespMsg = 0x2
)

type playReq struct {
	Name string
}

type playResp struct {
	Chips int
}

var fakeUsers = map[string]*fakeUser{
	"1": {id: "1"},
	"2": {id: "2"},
	"3": {id: "3"},
}

type fakeUser struct{ id string }

func (f *fakeUser) ID() string { return f.id }

type fakeUserGetter struct{}

func (f *fakeUserGetter) GetUserByToken(token string) AbsUser {
	if u, ok := fakeUsers[token]; ok {
		return u
	}
	return nil
}

type fakeMsgHandler struct {
	msgCount int
	server   *WsServer
}

func (f *fakeMsgHandler) Handle(uID string, msgType int, mID int64, msg []byte) error {
	f.msgCount++
	switch msgType {
	case playReqMsg:
		var req playReq
		if err := util.ParseJsonFromBytes(msg, &req); err != nil {
			return err
		}
		log.L.Sugar().Debug("receive req", req)
		if f.msgCount == 1 {
			if f.server == nil {
				panic("f.server is nil")
			}
			f.server.Send(uID, playRespMsg, 1, util.StringifyJsonToBytes(playResp{Chips: 12}))
		}
	}
	return nil
}

// 测试正常连接可以收发消息
func TestNormalSeen(t *testing.T) {
	h := &fakeMsgHandler{}
	// start server
	server := NewWsServer(3333, &fakeUserGetter{}, h)
	h.server = server
	go func() {
		if err := server.Run(); err != nil {
			fmt.Println("server run err", err)
		}
	}()

	time.Sleep(time.Millisecond)

	u := url.URL{Scheme: "ws", Host: "localhost:3333", Path: "/msg"}
	var dialer *websocket.Dialer

	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		panic(err)
	}
	// hand shake
	err = conn.WriteMessage(websocket.BinaryMessage, WrapMsg(MsgTypeHandShake, 1, util.StringifyJsonToBytes(HandShakeReq{Token: "1"})))
	assert.NoError(t, err)
	err = conn.WriteMessage(websocket.BinaryMessage, WrapMsg(playReqMsg, 1, util.StringifyJsonToBytes(playReq{Name: "alice"})))
	assert.NoError(t, err)
	err = conn.WriteMessage(websocket.BinaryMessage, WrapMsg(playReqMsg, 1, util.StringifyJsonToBytes(playReq{Name: "bob"})))
	assert.NoError(t, err)

	mt, mb, err := conn.ReadMessage()
	assert.Equal(t, websocket.BinaryMessage, mt)
	assert.NoError(t, err)
	msgType, _, msgB := UnWrapMsg(mb)
	var resp playResp
	err = util.ParseJsonFromBytes(msgB, &resp)
	assert.NoError(t, err)
	assert.Equal(t, playRespMsg, msgType)
	assert.Equal(t, 12, resp.Chips)

	time.Sleep(100 * time.Millisecond)
}

func TestWrapUnWrap(t *testing.T) {
	b := WrapMsg(0x16, 99, []byte("xx"))
	mt, mID, msg := UnWrapMsg(b)
	assert.Equal(t, 0x16, mt)
	assert.Equal(t, int64(99), mID)
	assert.Equal(t, []byte("xx"), msg)

	mt, mID, _ = UnWrapMsg([]byte("short"))
	assert.Equal(t, -1, mt)
	assert.Equal(t, int64(-1), mID)
}
