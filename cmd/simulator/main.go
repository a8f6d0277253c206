package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "workday":
		workdayCmd(apiURL, args)
	case "summary":
		summaryCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Taskora Simulator - Development tool for exercising the API

USAGE:
  simulator <command> [options]

COMMANDS:
  workday   Log in, create a project with tasks, drag them across the board,
            log pomodoro sessions, and print the analytics summary
  summary   Log in and print the analytics summary
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Simulate a demo user's workday against a local server
  simulator workday

  # Simulate with custom credentials
  simulator workday --email=demo@taskora.com --password=password123`)
}
