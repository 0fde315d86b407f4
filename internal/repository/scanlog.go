package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// ScanLogRepository is the local audit journal: one row per scan attempt,
// whatever its outcome. The backend owns attendance itself; this exists so a
// station keeps a trail even when the backend call failed.
type ScanLogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScanLogRepo(db *dbpg.DB) *ScanLogRepository {
	return &ScanLogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ScanLogRepository) Append(ctx context.Context, e *domain.ScanEntry) error {
	query := `INSERT INTO scan_log (id, meeting_id, member_id, raw_text, outcome, reason, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.MeetingID, e.MemberID, e.RawText, e.Outcome, e.Reason, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan entry: %w", err)
	}

	return nil
}

func (r *ScanLogRepository) ListRecent(ctx context.Context, meetingID string, outcomes []domain.ScanOutcome, limit int) ([]*domain.ScanEntry, error) {
	if len(outcomes) == 0 {
		outcomes = domain.JournaledOutcomes
	}

	query := `SELECT id, meeting_id, member_id, raw_text, outcome, reason, created_at
			  FROM scan_log
			  WHERE meeting_id = $1 AND outcome = ANY($2)
			  ORDER BY created_at DESC
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, meetingID, pq.Array(outcomes), limit)
	if err != nil {
		return nil, fmt.Errorf("list scan entries: %w", err)
	}
	defer rows.Close()

	var res []*domain.ScanEntry
	for rows.Next() {
		var e domain.ScanEntry
		if err = rows.Scan(&e.ID, &e.MeetingID, &e.MemberID, &e.RawText, &e.Outcome, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
