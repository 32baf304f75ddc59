package robot

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/roboholdem/roboholdem/common/log"
	"github.com/roboholdem/roboholdem/common/util"
	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"go.uber.org/zap"
)

// Misty TTS的voice id
const (
	maleVoiceID   = "en-US-Chirp-HD-D"
	femaleVoiceID = "en-US-Chirp-HD-F"
)

func NewMisty(address string) *Misty {
	m := &Misty{
		baseURL: "http://" + address + "/api",
		client:  &http.Client{Timeout: 3 * time.Second},
		voiceID: maleVoiceID,
	}
	m.probe()
	return m
}

/*

Misty机器人的HTTP驱动。所有通知都是fire-and-forget，
在自己的goroutine里发请求，出错只记日志，绝不阻塞对局循环。

*/
type Misty struct {
	baseURL string
	client  *http.Client

	connected bool

	mu      sync.Mutex
	voiceID string
}

// 启动时探一次连通性，失败只降级不报错
func (m *Misty) probe() {
	resp, err := m.client.Get(m.baseURL + "/device")
	if err != nil {
		log.L.Warn("misty not reachable, notifications will be dropped", zap.Error(err))
		return
	}
	resp.Body.Close()
	m.connected = true
	m.display(abstracts.ExpressionNeutral)
	log.L.Info("misty connected", zap.String("base url", m.baseURL))
}

func (m *Misty) OnNewRound(round uint, line string) {
	go func() {
		m.display(abstracts.ExpressionNeutral)
		m.speak(line)
	}()
}

func (m *Misty) OnBettingTurn(expression abstracts.ExpressionCode, line string) {
	go func() {
		// 先装思考，停2~3秒再亮表情说台词
		m.display(abstracts.ExpressionThinking)
		time.Sleep(2*time.Second + time.Duration(util.RandANum(1000))*time.Millisecond)
		m.display(expression)
		m.speak(line)
	}()
}

func (m *Misty) OnRoundEnd(expression abstracts.ExpressionCode, line string) {
	go func() {
		m.display(expression)
		m.speak(line)
	}()
}

func (m *Misty) SetVoiceGender(gender string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gender == abstracts.VoiceFemale {
		m.voiceID = femaleVoiceID
	} else {
		m.voiceID = maleVoiceID
	}
}

func (m *Misty) display(expression abstracts.ExpressionCode) {
	m.post("/images/display", map[string]interface{}{
		"FileName": string(expression),
		"Alpha":    1,
	})
}

func (m *Misty) speak(text string) {
	if text == "" {
		return
	}
	m.mu.Lock()
	voiceID := m.voiceID
	m.mu.Unlock()

	m.post("/tts/speak", map[string]interface{}{
		"Text":    text,
		"VoiceId": voiceID,
		"Flush":   true,
	})
}

func (m *Misty) post(path string, body map[string]interface{}) {
	if !m.connected {
		return
	}
	resp, err := m.client.Post(m.baseURL+path, "application/json", bytes.NewReader(util.StringifyJsonToBytes(body)))
	if err != nil {
		log.L.Warn("misty call failed", zap.String("path", path), zap.Error(err))
		return
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.L.Warn("misty call not ok", zap.String("path", path), zap.Int("status", resp.StatusCode))
	}
}

// 没接机器人时用
func NewNoop() *Noop { return &Noop{} }

type Noop struct{}

func (n *Noop) OnNewRound(round uint, line string)                             {}
func (n *Noop) OnBettingTurn(expression abstracts.ExpressionCode, line string) {}
func (n *Noop) OnRoundEnd(expression abstracts.ExpressionCode, line string)    {}
func (n *Noop) SetVoiceGender(gender string)                                   {}
