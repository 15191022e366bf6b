// Seed command: create sample data for development and demos.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/planner"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create sample courses and tasks",
		Long: `Seed fills the authoritative store with a demo schedule: three courses
and seven tasks with due dates relative to today. It refuses to run when
tasks already exist.`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}
}

// seedCourse is one demo course with the tasks created under it.
type seedCourse struct {
	name        string
	description string
	tasks       []planner.TaskInput
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if existing, _ := svc.Tasks(ctx); len(existing) > 0 {
		fmt.Fprintln(out, "Store already holds tasks. Skipping seed data creation.")
		return nil
	}

	courses := []seedCourse{
		{
			name:        "Introduction to Computer Science",
			description: "CS101, Fall 2024",
			tasks: []planner.TaskInput{
				{Title: "Programming Assignment 1", Description: "Write a simple Python program that calculates factorial", TaskType: "Assignment", Due: dueIn(7), GradePercentage: 10, PredictedHours: 3.5},
				{Title: "Midterm Exam", Description: "Covers chapters 1-5", TaskType: "Exam", Due: dueIn(21), GradePercentage: 25, PredictedHours: 8},
				{Title: "Quiz 2", Description: "Short quiz on loops and functions", TaskType: "Quiz", Due: dueIn(14), GradePercentage: 5, PredictedHours: 2},
			},
		},
		{
			name:        "Data Structures and Algorithms",
			description: "CS201, Fall 2024",
			tasks: []planner.TaskInput{
				{Title: "Algorithm Analysis Project", Description: "Implement and analyze sorting algorithms", TaskType: "Project", Due: dueIn(14), GradePercentage: 20, PredictedHours: 12},
				{Title: "Weekly Problem Set 3", Description: "Complete problems 3.1-3.15", TaskType: "Assignment", Due: dueIn(5), GradePercentage: 8, PredictedHours: 4},
			},
		},
		{
			name:        "Calculus I",
			description: "MATH101, Fall 2024",
			tasks: []planner.TaskInput{
				{Title: "Homework 4", Description: "Derivatives and limits", TaskType: "Assignment", Due: dueIn(3), GradePercentage: 5, PredictedHours: 2.5},
				{Title: "Final Exam", Description: "Comprehensive final exam", TaskType: "Exam", Due: dueIn(35), GradePercentage: 30, PredictedHours: 15},
			},
		},
	}

	var taskCount int
	for _, c := range courses {
		course, err := svc.AddCourse(ctx, c.name, c.description)
		if err != nil {
			return fmt.Errorf("seed course %q: %w", c.name, err)
		}
		for _, in := range c.tasks {
			in.CourseID = course.ID
			if _, err := svc.AddTask(ctx, in); err != nil {
				return fmt.Errorf("seed task %q: %w", in.Title, err)
			}
			taskCount++
		}
	}

	fmt.Fprintf(out, "Seeded %d course(s) and %d task(s)\n", len(courses), taskCount)
	return nil
}

// dueIn formats a due timestamp n days from now.
func dueIn(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02 15:04:05")
}
