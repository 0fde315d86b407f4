package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
)

// FrameSource is an acquired camera stream. Grab blocks until the next frame
// is available.
type FrameSource interface {
	Grab(ctx context.Context) (image.Image, error)
	Close() error
}

// OpenFunc acquires the camera. The decoder holds the source only while it is
// actively scanning; the stream is released on every pause and on stop, so at
// most one holder exists at a time.
type OpenFunc func(ctx context.Context) (FrameSource, error)

// LiveDecoder samples a camera stream and attempts one QR decode per sampled
// frame. On the first successful decode it emits exactly one Result and
// pauses until Resume is called, so a badge held still in front of the camera
// produces one scan, not a storm.
type LiveDecoder struct {
	open     OpenFunc
	interval time.Duration
	log      logger.Logger

	results  chan Result
	resume   chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

func NewLiveDecoder(open OpenFunc, interval time.Duration, log logger.Logger) *LiveDecoder {
	return &LiveDecoder{
		open:     open,
		interval: interval,
		log:      log,
		results:  make(chan Result),
		resume:   make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

// Results is the decoder's output stream. It is never closed while the
// decoder runs; consumers select against their own lifetime.
func (d *LiveDecoder) Results() <-chan Result {
	return d.results
}

// Start runs the sampling loop until ctx is cancelled or Stop is called.
// Each pass acquires the camera, scans until one decode succeeds (or the
// source fails), releases the camera, and waits for Resume.
func (d *LiveDecoder) Start(ctx context.Context) {
	for {
		if done := d.scanOnce(ctx); done {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case <-d.resume:
		}
	}
}

// Resume re-arms the decoder after the caller has handled the last emission.
func (d *LiveDecoder) Resume() {
	select {
	case d.resume <- struct{}{}:
	default:
	}
}

// Stop terminates the loop. Safe to call more than once.
func (d *LiveDecoder) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
}

// scanOnce returns true when the decoder should terminate for good.
func (d *LiveDecoder) scanOnce(ctx context.Context) bool {
	src, err := d.open(ctx)
	if err != nil {
		return d.emit(ctx, Result{Err: fmt.Errorf("acquire camera: %w", err)})
	}
	defer src.Close()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-d.stop:
			return true
		case <-ticker.C:
		}

		frame, err := src.Grab(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return true
			}
			return d.emit(ctx, Result{Err: fmt.Errorf("grab frame: %w", err)})
		}

		text, err := decodeFrame(frame)
		if err != nil {
			// No code in this frame. Keep sampling.
			continue
		}

		d.log.Debug("live frame decoded", logger.Int("bytes", len(text)))
		return d.emit(ctx, Result{Text: text})
	}
}

func (d *LiveDecoder) emit(ctx context.Context, r Result) bool {
	select {
	case d.results <- r:
		return false
	case <-ctx.Done():
		return true
	case <-d.stop:
		return true
	}
}
