package results

const (
	outcomeParticipantWins = "participant_wins"
	outcomeRobotWins       = "robot_wins"
	outcomeTie             = "tie"
)

type SessionStats struct {
	TotalRounds int `json:"total_rounds"`

	ParticipantWins int `json:"participant_wins"`
	RobotWins       int `json:"robot_wins"`
	Ties            int `json:"ties"`
	Folds           int `json:"folds"`

	BluffCount     int `json:"bluff_count"`
	DetectedBluffs int `json:"detected_bluffs"`

	AvgParticipantBet float64 `json:"avg_participant_bet"`
	AvgRobotBet       float64 `json:"avg_robot_bet"`

	MaleVoiceRounds   int `json:"male_voice_rounds"`
	FemaleVoiceRounds int `json:"female_voice_rounds"`

	// key: male / female
	RoundsByVoice map[string]*VoiceStats `json:"rounds_by_voice"`
}

type VoiceStats struct {
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Ties           int `json:"ties"`
	Bluffs         int `json:"bluffs"`
	DetectedBluffs int `json:"detected_bluffs"`
}

// 纯计算，按实际结局汇总一场的轮记录
func Aggregate(records []RoundRecord) *SessionStats {
	stats := &SessionStats{
		TotalRounds: len(records),
		RoundsByVoice: map[string]*VoiceStats{
			"male":   {},
			"female": {},
		},
	}
	if len(records) == 0 {
		return stats
	}

	totalParticipantBet, totalRobotBet := 0, 0
	for _, r := range records {
		byVoice := stats.RoundsByVoice[r.VoiceGender]
		if byVoice == nil {
			byVoice = &VoiceStats{}
			stats.RoundsByVoice[r.VoiceGender] = byVoice
		}
		if r.VoiceGender == "female" {
			stats.FemaleVoiceRounds++
		} else {
			stats.MaleVoiceRounds++
		}

		switch r.ActualOutcome {
		case outcomeParticipantWins:
			stats.ParticipantWins++
			// 对机器人来说参与者赢是losses
			byVoice.Losses++
		case outcomeRobotWins:
			stats.RobotWins++
			byVoice.Wins++
		case outcomeTie:
			stats.Ties++
			byVoice.Ties++
		}

		if r.Folded {
			stats.Folds++
		}
		if r.Bluffed {
			stats.BluffCount++
			byVoice.Bluffs++
		}
		if r.DetectedBluff {
			stats.DetectedBluffs++
			byVoice.DetectedBluffs++
		}

		totalParticipantBet += r.ParticipantBet
		totalRobotBet += r.RobotBet
	}

	stats.AvgParticipantBet = float64(totalParticipantBet) / float64(len(records))
	stats.AvgRobotBet = float64(totalRobotBet) / float64(len(records))
	return stats
}
