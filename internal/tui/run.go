package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/district-atlas/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx is done.
func Run(ctx context.Context, r *report.Report, opts ...Option) error {
	if r == nil {
		return fmt.Errorf("report is required")
	}

	program := tea.NewProgram(
		New(r, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	slog.Debug("Starting dashboard", "districts", len(r.Demographics))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
