package abstracts

type User interface {
	// user的id
	ID() string
	Copy() User
}

type Game interface {
	ID() int64
	Run()
	OnMsg(msg PlayerActionMsg) error
	GetScene(uid string) *GameScene
}

type Session interface {
	Start() error
	Stop() error

	Enter(u User) error
	Leave(u User) error
	// 每次客户端程序自动发该消息，如果没有发则默认其掉线，将其踢出该会话
	Ready(u User) error

	Do(action PlayerActionMsg) error

	GetScene(uID string) *GameScene
}

// 对局向机器人硬件发的通知，实现方不允许阻塞调用者
type RobotNotifier interface {
	OnNewRound(round uint, line string)
	OnBettingTurn(expression ExpressionCode, line string)
	OnRoundEnd(expression ExpressionCode, line string)
	SetVoiceGender(gender string)
}
