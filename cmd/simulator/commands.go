package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/taskora/taskora-api/internal/client"
	"github.com/taskora/taskora-api/internal/domain"
)

func workdayCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("workday", flag.ExitOnError)
	email := fs.String("email", "demo@taskora.com", "login email")
	password := fs.String("password", "password123", "login password")
	fs.Parse(args)

	c := client.New(apiURL)

	user, err := c.Login(*email, *password)
	if err != nil {
		fatalf("login failed: %v", err)
	}
	fmt.Printf("Logged in as %s (id %d)\n", user.Name, user.ID)

	project, err := c.CreateProject("Simulated Sprint", "Created by the simulator")
	if err != nil {
		fatalf("create project failed: %v", err)
	}
	fmt.Printf("Created project %q (id %d)\n", project.Name, project.ID)

	titles := []string{"Draft release notes", "Fix login redirect", "Review analytics charts"}
	var tasks []*domain.Task
	for _, title := range titles {
		task, err := c.CreateTask(project.ID, title, "")
		if err != nil {
			fatalf("create task failed: %v", err)
		}
		tasks = append(tasks, task)
		fmt.Printf("Created task %q (id %d, status %s)\n", task.Title, task.ID, task.Status)
	}

	// Drag every task across the board the way the browser does: apply the
	// move optimistically, then confirm or roll back on the server's answer.
	board := client.NewBoard(tasks)
	path := []domain.TaskStatus{
		domain.TaskStatusInProgress,
		domain.TaskStatusInReview,
		domain.TaskStatusConcluded,
	}
	for _, task := range tasks {
		for _, to := range path {
			if err := board.Move(task.ID, to); err != nil {
				fatalf("board move failed: %v", err)
			}
			updated, err := c.MoveTask(project.ID, task.ID, to)
			if err != nil {
				board.Reject(task.ID)
				status, state, _ := board.Status(task.ID)
				fmt.Printf("Move of task %d rejected (%v); showing %s (%s)\n", task.ID, err, status, state)
				continue
			}
			board.Confirm(task.ID, updated.Status)
		}
		status, state, _ := board.Status(task.ID)
		fmt.Printf("Task %d finished in column %s (%s)\n", task.ID, status, state)
	}

	for i := 0; i < 3; i++ {
		if _, err := c.LogPomodoroSession(25*60, domain.PomodoroModeWork, &tasks[0].ID); err != nil {
			fatalf("log pomodoro failed: %v", err)
		}
	}
	if _, err := c.LogPomodoroSession(5*60, domain.PomodoroModeShortBreak, nil); err != nil {
		fatalf("log break failed: %v", err)
	}
	fmt.Println("Logged 3 work sessions and a short break")

	printSummary(c)
}

func summaryCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	email := fs.String("email", "demo@taskora.com", "login email")
	password := fs.String("password", "password123", "login password")
	fs.Parse(args)

	c := client.New(apiURL)
	if _, err := c.Login(*email, *password); err != nil {
		fatalf("login failed: %v", err)
	}

	printSummary(c)
}

func printSummary(c *client.Client) {
	summary, err := c.AnalyticsSummary()
	if err != nil {
		fatalf("fetch summary failed: %v", err)
	}

	fmt.Println("\n--- 7-day summary ---")
	fmt.Printf("Tasks completed:    %d\n", summary.TasksCompleted)
	fmt.Printf("Tasks created:      %d\n", summary.TasksCreated)
	fmt.Printf("Pomodoro sessions:  %d\n", summary.PomodoroSessions)
	fmt.Printf("Focus time:         %ds (%.2fh)\n", summary.TotalFocusTime.Seconds, summary.TotalFocusTime.Hours)
	fmt.Printf("Completion rate:    %.2f\n", summary.CompletionRate)
	fmt.Printf("Productivity score: %d/100\n", summary.ProductivityScore)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
