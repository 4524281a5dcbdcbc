package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gerhardt0011/gpt5-todo/internal/config"
	"github.com/Gerhardt0011/gpt5-todo/internal/repo/sqlite"
	"github.com/Gerhardt0011/gpt5-todo/internal/service"
	"github.com/Gerhardt0011/gpt5-todo/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatalf("sqlite open: %v", err)
	}
	defer db.Close()

	// The TUI talks to the store directly; no list cache here.
	svc := service.NewTodoService(db, nil)

	p := tea.NewProgram(tui.NewModel(svc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
