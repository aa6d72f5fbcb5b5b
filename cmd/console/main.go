package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jwebster45206/mystery-room/pkg/state"
)

// ConsoleConfig holds the console client settings.
type ConsoleConfig struct {
	APIBaseURL string
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
	}

	client := &http.Client{
		Timeout: 90 * time.Second, // Narrative generation can be slow
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API at %s\n", cfg.APIBaseURL)
		fmt.Fprintln(os.Stderr, "Is the server running? Set API_BASE_URL to override the address.")
		os.Exit(1)
	}

	var gs *state.GameState
	var err error

	// An existing session ID as the first argument resumes that case.
	if len(os.Args) > 1 {
		id, parseErr := uuid.Parse(os.Args[1])
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Invalid session ID %q: %v\n", os.Args[1], parseErr)
			os.Exit(1)
		}
		gs, err = getGameState(client, cfg.APIBaseURL, id)
	} else {
		gs, err = createGame(client, cfg.APIBaseURL)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		NewConsoleUI(cfg, client, gs),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running console: %v\n", err)
		os.Exit(1)
	}
}
