// Package main provides the planner CLI.
package main

import "github.com/andrewvu270/AI-Academic-Scheduler/internal/cli"

func main() {
	cli.Execute()
}
