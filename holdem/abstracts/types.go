package abstracts

// 每轮预定的胜负归属
type Outcome int

const (
	OutcomeParticipantWins Outcome = iota + 1
	OutcomeRobotWins
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeParticipantWins:
		return "participant_wins"
	case OutcomeRobotWins:
		return "robot_wins"
	case OutcomeTie:
		return "tie"
	}
	return "unknown"
}

type BettingStyle string

const (
	StyleAggressive   BettingStyle = "aggressive"
	StyleConservative BettingStyle = "conservative"
	StyleNeutral      BettingStyle = "neutral"
)

// 机器人表情，值为Misty上的图片文件名
type ExpressionCode string

const (
	ExpressionNeutral   ExpressionCode = "e_ContentLeft.jpg"
	ExpressionHappy     ExpressionCode = "e_Joy.jpg"
	ExpressionSad       ExpressionCode = "e_Sadness.jpg"
	ExpressionConfident ExpressionCode = "e_Surprise.jpg"
	ExpressionUncertain ExpressionCode = "e_Fear.jpg"
	ExpressionThinking  ExpressionCode = "e_Contempt.jpg"
)

const (
	VoiceMale   = "male"
	VoiceFemale = "female"
)

type GameAction uint

const (
	GameActionOfBet GameAction = iota
	GameActionOfFold
)

const (
	// c - s
	MsgTypeQuickStart = 0x10
	// c - s
	MsgTypeLeave = 0x11
	// s - c
	MsgTypePrepare = 0x12
	// s - c
	MsgTypeNotReadyLeave = 0x13
	// c - s
	MsgTypeReady = 0x15
	// c - s
	MsgTypeGameAction = 0x16

	// s - c
	MsgTypeErr = 0x20
	// s - c
	MsgTypeSuccess = 0x21
	// s - c
	MsgTypeSessionScene = 0x22
	// s - c
	MsgTypeRoundResult = 0x23
	// s - c
	MsgTypeSessionResult = 0x24
)

type CommonMsg struct {
	MsgID int64
	User  User
}

type PlayerActionMsg struct {
	// 不能是客户端传上来的，应该由程序赋值
	MsgID  int64
	UserID string

	GameID     int64      `json:"game_id"`
	Round      uint       `json:"round"`
	ActionType GameAction `json:"action_type"`
	// 下注情况下是下多少注。过牌该值为0
	Amount int `json:"amount"`
}

type ErrResp struct {
	ErrCode int    `json:"err_code"`
	Info    string `json:"info"`
}

type SuccessResp struct {
	Info string `json:"info"`
}

/*

当前对局的快照
1. 双方筹码、自己的手牌（机器人手牌只在摊牌后可见）
1. 公共牌
1. 彩池、轮次、机器人的表情和台词

*/
type GameScene struct {
	Round       uint `json:"round"`
	TotalRounds uint `json:"total_rounds"`
	Pot         int  `json:"pot"`

	Participant *ActorScene `json:"participant"`
	Robot       *ActorScene `json:"robot"`

	CommunityCards []string `json:"community_cards"`

	RobotExpression string `json:"robot_expression"`
	RobotLine       string `json:"robot_line"`

	// 是否在等参与者下注
	AwaitingBet bool `json:"awaiting_bet"`
}

type ActorScene struct {
	ID    string   `json:"id"`
	Chips int      `json:"chips"`
	Cards []string `json:"cards"`
}

type RoundResultMsg struct {
	Round        uint     `json:"round"`
	Outcome      string   `json:"outcome"`
	Pot          int      `json:"pot"`
	Folded       bool     `json:"folded"`
	RobotBet     int      `json:"robot_bet"`
	RobotMessage string   `json:"robot_message"`
	RobotCards   []string `json:"robot_cards"`
}

type SessionResultMsg struct {
	Rounds           uint `json:"rounds"`
	ParticipantChips int  `json:"participant_chips"`
	RobotChips       int  `json:"robot_chips"`
	ParticipantWins  int  `json:"participant_wins"`
	RobotWins        int  `json:"robot_wins"`
	Ties             int  `json:"ties"`
}
