package repository

import (
	"context"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// NopJournal is wired when the local journal is disabled so callers never
// branch on its presence.
type NopJournal struct{}

func (NopJournal) Append(ctx context.Context, e *domain.ScanEntry) error {
	return nil
}

func (NopJournal) ListRecent(ctx context.Context, meetingID string, outcomes []domain.ScanOutcome, limit int) ([]*domain.ScanEntry, error) {
	return nil, nil
}
