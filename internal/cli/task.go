// Task commands: create, list, complete, and ingest extracted tasks.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/planner"
	"github.com/andrewvu270/AI-Academic-Scheduler/internal/resolver"
	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskCompleteCmd())
	cmd.AddCommand(newTaskIngestCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var in planner.TaskInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Add creates a task in the authoritative store: the remote backend when
signed in, the device-local guest store otherwise. Guest tasks migrate
to the account on the next sign-in.

Example:
  planner task add --title "Essay 1" --due 2025-04-01 --type assignment
  planner task add --title "Final" --due "2025-05-10 09:00:00" --type exam --grade 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := svc.AddTask(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("add task: %w", err)
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), task)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task: %s\n", task.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "task title (required)")
	cmd.Flags().StringVar(&in.Description, "description", "", "longer description")
	cmd.Flags().StringVar(&in.TaskType, "type", "", "task type (assignment, exam, quiz, project, reading, lab)")
	cmd.Flags().StringVar(&in.Due, "due", "", "due date (YYYY-MM-DD or timestamp; bare dates default to 23:59)")
	cmd.Flags().StringVar(&in.CourseID, "course", "", "owning course ID")
	cmd.Flags().Float64Var(&in.GradePercentage, "grade", 0, "grade percentage (0-100)")
	cmd.Flags().Float64Var(&in.PredictedHours, "hours", 0, "predicted effort in hours")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks from the authoritative store",
		Long: `List fetches tasks from the remote backend when signed in, or from the
device-local guest store otherwise, and displays them.

Example:
  planner task list
  planner task list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, source := svc.Tasks(cmd.Context())
			if tasks == nil {
				tasks = []*types.Task{}
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), struct {
					Source resolver.Source `json:"source"`
					Tasks  []*types.Task   `json:"tasks"`
				}{source, tasks})
			}
			printTaskTable(cmd.OutOrStdout(), tasks)
			fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", source)
			return nil
		},
	}
}

func newTaskCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := svc.CompleteTask(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("task %q not found", args[0])
				}
				return fmt.Errorf("complete task: %w", err)
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), task)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed task: %s\n", task.ID)
			return nil
		},
	}
}

func newTaskIngestCmd() *cobra.Command {
	var courseID string
	cmd := &cobra.Command{
		Use:   "ingest <file>",
		Short: "Store tasks extracted from a syllabus",
		Long: `Ingest reads a JSON file of extracted tasks (the output of syllabus
analysis) and stores them in the authoritative store. The file holds
either a bare array of tasks or an object with a "tasks" field.

Rows without a title or a usable due date are skipped.

Example:
  planner task ingest extracted.json --course 0195fa2b
  planner task ingest extracted.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readExtracted(args[0])
			if err != nil {
				return err
			}
			stored, err := svc.IngestExtractedTasks(cmd.Context(), courseID, rows)
			if err != nil {
				return fmt.Errorf("ingest tasks: %w", err)
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), stored)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d of %d extracted task(s)\n", len(stored), len(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&courseID, "course", "", "course ID to attach the tasks to")
	return cmd
}

// readExtracted loads extracted-task rows from a JSON file. Both a bare
// array and an object with a "tasks" field are accepted.
func readExtracted(path string) ([]planner.ExtractedTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rows []planner.ExtractedTask
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	var envelope struct {
		Tasks []planner.ExtractedTask `json:"tasks"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return envelope.Tasks, nil
}
