// Package scoring computes the deterministic task heuristics stamped onto
// records at creation: a weight score from task type, grade share, and
// instructor language, and a priority score folding in urgency and
// predicted effort. Same inputs, same scores: there is no randomness and
// no hidden state, so migrated records keep their numbers.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

// Base weights per task type. Raw Final/Midterm labels score higher than
// the generic Exam they normalize to, so scoring runs on the label the
// syllabus actually used when available.
var typeWeights = map[string]float64{
	"Final":      0.95,
	"Exam":       0.9,
	"Midterm":    0.85,
	"Project":    0.8,
	"Assignment": 0.7,
	"Lab":        0.65,
	"Quiz":       0.6,
	"Reading":    0.4,
}

// Instructor emphasis keywords. The strongest match wins.
var keywordWeights = map[string]float64{
	"critical":    0.9,
	"mandatory":   0.85,
	"major":       0.8,
	"essential":   0.8,
	"required":    0.75,
	"important":   0.7,
	"significant": 0.7,
	"key":         0.6,
}

// Neutral fallbacks for unrecognized types, absent keywords, and an unset
// grade share.
const neutralWeight = 0.5

// Weight and priority component coefficients.
const (
	gradeCoeff   = 0.3
	typeCoeff    = 0.4
	keywordCoeff = 0.3
	weightCoeff  = 0.5
	urgencyCoeff = 0.3
	effortCoeff  = 0.2
	effortCapHrs = 10.0
)

// WeightScore rates how much a task matters: 0.3·grade share + 0.4·type
// weight + 0.3·instructor emphasis, capped at 1.0. A zero grade percentage
// means "unknown share" and contributes the neutral 0.5, not zero.
func WeightScore(taskType types.TaskType, gradePercentage float64, keywords []string) float64 {
	typeWeight, ok := typeWeights[string(taskType)]
	if !ok {
		typeWeight = neutralWeight
	}

	emphasis := neutralWeight
	for _, kw := range keywords {
		if w, ok := keywordWeights[strings.ToLower(strings.TrimSpace(kw))]; ok && w > emphasis {
			emphasis = w
		}
	}

	grade := neutralWeight
	if gradePercentage != 0 {
		grade = math.Min(gradePercentage/100, 1.0)
	}

	weight := gradeCoeff*grade + typeCoeff*typeWeight + keywordCoeff*emphasis
	return math.Min(weight, 1.0)
}

// PriorityScore orders the dashboard: 0.5·weight + 0.3·urgency +
// 0.2·normalized effort. Urgency is the inverse of the calendar days left,
// saturating at 1.0 for anything due today or overdue. A task with no due
// timestamp gets no urgency contribution rather than a panic-everything
// score. Effort normalizes against a ten-hour ceiling.
func PriorityScore(weightScore float64, due time.Time, predictedHours float64, now time.Time) float64 {
	urgency := 0.0
	if !due.IsZero() {
		days := daysBetween(now, due)
		if days < 1 {
			days = 1
		}
		urgency = 1.0 / float64(days)
	}

	effort := math.Min(predictedHours/effortCapHrs, 1.0)

	return weightCoeff*weightScore + urgencyCoeff*urgency + effortCoeff*effort
}

// daysBetween counts whole calendar days from one wall date to another,
// ignoring time of day. Mapping both dates to UTC midnights keeps the
// difference an exact multiple of 24h regardless of DST.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
