package ports

import (
	"context"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// ScanJournal is the local audit trail of scan attempts. Best effort: a
// journal failure must never block a check-in.
type ScanJournal interface {
	Append(ctx context.Context, entry *domain.ScanEntry) error
	ListRecent(ctx context.Context, meetingID string, outcomes []domain.ScanOutcome, limit int) ([]*domain.ScanEntry, error)
}
