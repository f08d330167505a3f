package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cesizen/internal/model"
)

var questions = []model.Question{
	{ID: 1, Question: "Have you recently experienced the death of your spouse?", Score: 100},
	{ID: 2, Question: "Have you recently divorced?", Score: 73},
	{ID: 3, Question: "Have you experienced a marital separation?", Score: 65},
	{ID: 4, Question: "Have you had a personal injury or illness?", Score: 100},
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		selected []uint
		want     int
	}{
		{"partial selection", []uint{1, 3}, 165},
		{"empty selection", nil, 0},
		{"full selection", []uint{1, 2, 3, 4}, 338},
		{"unknown ids ignored", []uint{1, 99}, 100},
		{"duplicate ids counted once", []uint{2, 2, 2}, 73},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(questions, tt.selected))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		wantLevel   string
		wantMessage string
	}{
		{"zero is low", 0, LevelLow, MessageLow},
		{"just below moderate", 149, LevelLow, MessageLow},
		{"moderate boundary", 150, LevelModerate, MessageModerate},
		{"partial selection total", 165, LevelModerate, MessageModerate},
		{"just below high", 299, LevelModerate, MessageModerate},
		{"high boundary", 300, LevelHigh, MessageHigh},
		{"full selection total", 338, LevelHigh, MessageHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.total)
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, tt.wantLevel, res.Level)
			assert.Equal(t, tt.wantMessage, res.Message)
		})
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	forward := Score(questions, []uint{1, 2, 3, 4})
	reversed := Score([]model.Question{questions[3], questions[2], questions[1], questions[0]}, []uint{4, 3, 2, 1})
	assert.Equal(t, forward, reversed)
}
