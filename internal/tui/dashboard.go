package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"habitflow/internal/storage"
	"habitflow/internal/store"
)

// RunDashboard opens the interactive dashboard over the given store.
// It returns when the user quits.
func RunDashboard(ctx context.Context, st *store.Store, kv *storage.KV, out io.Writer) error {
	m := newDashboardModel(ctx, st, kv)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	m.cancelSub()
	return err
}
