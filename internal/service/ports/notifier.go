package ports

import (
	"context"
	"time"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// LiveNotifier announces live-session changes to the admin channel.
type LiveNotifier interface {
	NotifyWindowOpened(ctx context.Context, status *domain.LiveStatus)
	NotifyWindowClosed(ctx context.Context, status *domain.LiveStatus)
	NotifySeriesPlanned(ctx context.Context, topic string, dates []time.Time)
}
