package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	assert.Equal(t, 0, stats.TotalRounds)
	assert.Equal(t, float64(0), stats.AvgRobotBet)
	assert.NotNil(t, stats.RoundsByVoice["male"])
	assert.NotNil(t, stats.RoundsByVoice["female"])
}

func TestAggregate(t *testing.T) {
	records := []RoundRecord{
		{Round: 1, ActualOutcome: "participant_wins", ParticipantBet: 2, RobotBet: 3, Bluffed: true, DetectedBluff: true, VoiceGender: "male"},
		{Round: 2, ActualOutcome: "robot_wins", ParticipantBet: 1, RobotBet: 1, VoiceGender: "male"},
		{Round: 3, ActualOutcome: "tie", ParticipantBet: 1, RobotBet: 1, VoiceGender: "male"},
		{Round: 4, ActualOutcome: "robot_wins", Folded: true, VoiceGender: "female"},
		{Round: 5, ActualOutcome: "participant_wins", ParticipantBet: 3, RobotBet: 3, Bluffed: true, VoiceGender: "female"},
		{Round: 6, ActualOutcome: "tie", ParticipantBet: 1, RobotBet: 2, VoiceGender: "female"},
	}

	stats := Aggregate(records)
	assert.Equal(t, 6, stats.TotalRounds)
	assert.Equal(t, 2, stats.ParticipantWins)
	assert.Equal(t, 2, stats.RobotWins)
	assert.Equal(t, 2, stats.Ties)
	assert.Equal(t, 1, stats.Folds)
	assert.Equal(t, 2, stats.BluffCount)
	assert.Equal(t, 1, stats.DetectedBluffs)
	assert.Equal(t, 3, stats.MaleVoiceRounds)
	assert.Equal(t, 3, stats.FemaleVoiceRounds)

	assert.InDelta(t, 8.0/6, stats.AvgParticipantBet, 0.0001)
	assert.InDelta(t, 10.0/6, stats.AvgRobotBet, 0.0001)

	male := stats.RoundsByVoice["male"]
	assert.Equal(t, 1, male.Wins)
	assert.Equal(t, 1, male.Losses)
	assert.Equal(t, 1, male.Ties)
	assert.Equal(t, 1, male.Bluffs)
	assert.Equal(t, 1, male.DetectedBluffs)

	female := stats.RoundsByVoice["female"]
	assert.Equal(t, 1, female.Wins)
	assert.Equal(t, 1, female.Losses)
	assert.Equal(t, 1, female.Ties)
	assert.Equal(t, 1, female.Bluffs)
	assert.Equal(t, 0, female.DetectedBluffs)
}
