// Package stress computes the stress-assessment score and its
// qualitative band. Pure computation, no I/O.
package stress

import "cesizen/internal/model"

// Band labels, ordered by severity.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
)

// Band thresholds: a total below 150 is low, below 300 moderate,
// anything else high.
const (
	moderateThreshold = 150
	highThreshold     = 300
)

// Advisory messages attached to each band.
const (
	MessageLow      = "Your stress level is relatively low. Keep taking care of yourself!"
	MessageModerate = "Your stress level is moderate. Consider adding relaxation practices to your daily routine."
	MessageHigh     = "Your stress level is high. It would be beneficial to consult a health professional."
)

// Result is a scored assessment.
type Result struct {
	Total   int    `json:"total"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Score sums the weights of the selected questions. Unknown ids in the
// selection contribute nothing; iteration order is irrelevant.
func Score(questions []model.Question, selectedIDs []uint) int {
	selected := make(map[uint]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	total := 0
	for _, q := range questions {
		if selected[q.ID] {
			total += q.Score
		}
	}
	return total
}

// Evaluate maps a total score onto its band.
func Evaluate(total int) Result {
	switch {
	case total < moderateThreshold:
		return Result{Total: total, Level: LevelLow, Message: MessageLow}
	case total < highThreshold:
		return Result{Total: total, Level: LevelModerate, Message: MessageModerate}
	default:
		return Result{Total: total, Level: LevelHigh, Message: MessageHigh}
	}
}
