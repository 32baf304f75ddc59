package results

import "time"

// 一轮的记录，对局层每轮产出一条
type RoundRecord struct {
	GameID int64 `json:"game_id"`
	Round  uint  `json:"round"`

	DeclaredOutcome string `json:"declared_outcome"`
	ActualOutcome   string `json:"actual_outcome"`

	ParticipantBet int  `json:"participant_bet"`
	RobotBet       int  `json:"robot_bet"`
	Pot            int  `json:"pot"`
	Folded         bool `json:"folded"`

	Bluffed       bool `json:"bluffed"`
	DetectedBluff bool `json:"detected_bluff"`
	RobotAllIn    bool `json:"robot_all_in"`

	BettingStyle string `json:"betting_style"`
	RobotMessage string `json:"robot_message"`
	VoiceGender  string `json:"voice_gender"`

	CreatedAt time.Time `json:"created_at"`
}

// 一场实验结束时的汇总
type SessionResult struct {
	GameID        int64  `json:"game_id"`
	ParticipantID string `json:"participant_id"`

	Rounds           uint `json:"rounds"`
	StartChips       int  `json:"start_chips"`
	ParticipantChips int  `json:"participant_chips"`
	RobotChips       int  `json:"robot_chips"`

	FinishedAt time.Time `json:"finished_at"`
}
