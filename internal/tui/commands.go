package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
)

const bannerTimeout = 3 * time.Second

// createCmd runs the create off the render goroutine.
func createCmd(ctx context.Context, svc LibraryService, name, coverID, paperID string) tea.Cmd {
	return func() tea.Msg {
		item, err := svc.Create(ctx, name, coverID, paperID)
		if err != nil && !errors.Is(err, library.ErrPersistenceFailure) {
			return CreateFailedMsg{Err: err}
		}
		return ItemCreatedMsg{Item: item, Err: err}
	}
}

// deleteCmd removes a library item asynchronously.
func deleteCmd(ctx context.Context, svc LibraryService, id string) tea.Cmd {
	return func() tea.Msg {
		item, err := svc.Delete(ctx, id)
		if err != nil && !errors.Is(err, library.ErrPersistenceFailure) {
			return DeleteFailedMsg{ID: id, Err: err}
		}
		return ItemDeletedMsg{Item: item, Err: err}
	}
}

func clearBannerCmd(seq int) tea.Cmd {
	return tea.Tick(bannerTimeout, func(time.Time) tea.Msg {
		return ClearBannerMsg{Seq: seq}
	})
}
