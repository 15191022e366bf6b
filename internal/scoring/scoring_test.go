package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

func almostEqual(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWeightScore_TypeTable(t *testing.T) {
	// Grade and keywords left neutral so only the type component moves:
	// weight = 0.3*0.5 + 0.4*type + 0.3*0.5.
	cases := []struct {
		taskType string
		want     float64
	}{
		{"Final", 0.68},
		{"Exam", 0.66},
		{"Midterm", 0.64},
		{"Project", 0.62},
		{"Assignment", 0.58},
		{"Lab", 0.56},
		{"Quiz", 0.54},
		{"Reading", 0.46},
		{"Homework", 0.5}, // unrecognized label falls back to neutral
		{"", 0.5},
	}
	for _, tc := range cases {
		got := WeightScore(types.TaskType(tc.taskType), 0, nil)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("WeightScore(%q) = %v, want %v", tc.taskType, got, tc.want)
		}
	}
}

func TestWeightScore_GradeShare(t *testing.T) {
	// Exam with a 20% grade share: 0.3*0.2 + 0.4*0.9 + 0.3*0.5.
	almostEqual(t, WeightScore(types.TaskExam, 20, nil), 0.57)

	// Full-grade task: 0.3*1.0 + 0.36 + 0.15.
	almostEqual(t, WeightScore(types.TaskExam, 100, nil), 0.81)

	// Shares over 100 clamp to the full-grade factor.
	almostEqual(t, WeightScore(types.TaskExam, 250, nil), 0.81)

	// Zero means unknown, not worthless: same as the neutral 0.5 factor.
	almostEqual(t, WeightScore(types.TaskExam, 0, nil), 0.66)
}

func TestWeightScore_Keywords(t *testing.T) {
	// Strongest matched keyword wins.
	got := WeightScore(types.TaskAssignment, 0, []string{"key", "critical"})
	almostEqual(t, got, 0.3*0.5+0.4*0.7+0.3*0.9)

	// Matching is case and whitespace insensitive.
	got = WeightScore(types.TaskAssignment, 0, []string{"  CRITICAL "})
	almostEqual(t, got, 0.3*0.5+0.4*0.7+0.3*0.9)

	// Unrecognized words leave the neutral emphasis in place.
	got = WeightScore(types.TaskAssignment, 0, []string{"banana"})
	almostEqual(t, got, 0.58)

	got = WeightScore(types.TaskAssignment, 0, []string{"mandatory"})
	almostEqual(t, got, 0.3*0.5+0.4*0.7+0.3*0.85)
}

func TestWeightScore_Bounds(t *testing.T) {
	// The heaviest possible combination stays within [0, 1].
	got := WeightScore(types.TaskType("Final"), 100, []string{"critical"})
	almostEqual(t, got, 0.95)

	if got > 1.0 {
		t.Fatalf("weight %v exceeds 1.0", got)
	}
}

func TestPriorityScore_Urgency(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// Five days out: 0.5*0.6 + 0.3*(1/5) + 0.2*(4/10).
	got := PriorityScore(0.6, now.AddDate(0, 0, 5), 4, now)
	almostEqual(t, got, 0.44)

	// Due today saturates urgency at 1.0.
	got = PriorityScore(0.5, now, 10, now)
	almostEqual(t, got, 0.25+0.3+0.2)

	// Overdue is treated the same as due today.
	got = PriorityScore(0.5, now.AddDate(0, 0, -3), 10, now)
	almostEqual(t, got, 0.75)

	// Tomorrow still counts as one day out.
	got = PriorityScore(0.5, now.AddDate(0, 0, 1), 0, now)
	almostEqual(t, got, 0.25+0.3)

	got = PriorityScore(0.5, now.AddDate(0, 0, 2), 0, now)
	almostEqual(t, got, 0.25+0.15)
}

func TestPriorityScore_CalendarDays(t *testing.T) {
	// 24h02m apart on the clock, but two calendar days apart: time of day
	// must not influence urgency.
	now := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	due := time.Date(2025, 1, 3, 0, 1, 0, 0, time.UTC)

	got := PriorityScore(0, due, 0, now)
	almostEqual(t, got, 0.3*0.5)
}

func TestPriorityScore_EffortCap(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 10)

	// 25 predicted hours clamp to the ten-hour ceiling.
	got := PriorityScore(0, due, 25, now)
	almostEqual(t, got, 0.3*0.1+0.2)

	got = PriorityScore(0, due, 0, now)
	almostEqual(t, got, 0.3*0.1)
}

func TestPriorityScore_NoDueDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// Without a due timestamp there is no urgency contribution.
	got := PriorityScore(0.5, time.Time{}, 0, now)
	almostEqual(t, got, 0.25)
}

func TestScores_Deterministic(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 3)

	w0 := WeightScore(types.TaskProject, 35, []string{"required"})
	p0 := PriorityScore(w0, due, 6, now)
	for i := 0; i < 5; i++ {
		w := WeightScore(types.TaskProject, 35, []string{"required"})
		p := PriorityScore(w, due, 6, now)
		if w != w0 || p != p0 {
			t.Fatalf("scores drifted on run %d: weight %v vs %v, priority %v vs %v", i, w, w0, p, p0)
		}
	}
}
