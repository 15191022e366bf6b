// Course commands: create and list.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewvu270/AI-Academic-Scheduler/internal/resolver"
	"github.com/andrewvu270/AI-Academic-Scheduler/pkg/types"
)

func newCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}
	cmd.AddCommand(newCourseAddCmd())
	cmd.AddCommand(newCourseListCmd())
	return cmd
}

func newCourseAddCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new course",
		Long: `Add creates a course in the authoritative store. The course code is
derived from the name.

Example:
  planner course add "CS 6200 Graduate Intro to OS"
  planner course add "Biology 101" --description "Spring term"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := svc.AddCourse(cmd.Context(), args[0], description)
			if err != nil {
				return fmt.Errorf("add course: %w", err)
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), course)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created course: %s\n", course.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "course description")
	return cmd
}

func newCourseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses from the authoritative store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, source := svc.Courses(cmd.Context())
			if courses == nil {
				courses = []*types.Course{}
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), struct {
					Source  resolver.Source `json:"source"`
					Courses []*types.Course `json:"courses"`
				}{source, courses})
			}
			printCourseTable(cmd.OutOrStdout(), courses)
			fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", source)
			return nil
		},
	}
}
