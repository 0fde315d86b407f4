package capture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

const payload = "MEMBER_CHECKIN:11111111-1111-1111-1111-111111111111:GENERAL"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func qrPNG(t *testing.T, text string) []byte {
	t.Helper()
	data, err := qrcode.Encode(text, qrcode.Medium, 256)
	require.NoError(t, err)
	return data
}

func qrImage(t *testing.T, text string) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(qrPNG(t, text)))
	require.NoError(t, err)
	return img
}

func blankImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// --- Static decoder ---

func TestDecodeImage_RoundTrip(t *testing.T) {
	text, err := DecodeImage(qrPNG(t, payload))

	require.NoError(t, err)
	assert.Equal(t, payload, text)
}

func TestDecodeImage_RejectsNonImage(t *testing.T) {
	_, err := DecodeImage([]byte("%PDF-1.4 definitely not pixels"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotImage)
}

func TestDecodeImage_RejectsEmpty(t *testing.T) {
	_, err := DecodeImage(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotImage)
}

func TestDecodeImage_NoCodeFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, blankImage()))

	_, err := DecodeImage(buf.Bytes())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoCodeFound)
}

// --- Live decoder ---

// fakeSource is touched by both the decoder goroutine and the test, so all
// state sits behind the mutex.
type fakeSource struct {
	mu     sync.Mutex
	frames []image.Image
	idx    int
	closed bool
}

func (s *fakeSource) Grab(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx < len(s.frames) {
		f := s.frames[s.idx]
		s.idx++
		return f, nil
	}
	// Held-still camera: repeat the last frame forever.
	return s.frames[len(s.frames)-1], nil
}

func (s *fakeSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSource) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// sourceRecorder tracks every camera acquisition across goroutines.
type sourceRecorder struct {
	mu      sync.Mutex
	sources []*fakeSource
}

func (r *sourceRecorder) add(s *fakeSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, s)
}

func (r *sourceRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sources)
}

func (r *sourceRecorder) at(i int) *fakeSource {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sources[i]
}

func TestLiveDecoder_EmitsOnceThenPauses(t *testing.T) {
	code := qrImage(t, payload)
	rec := &sourceRecorder{}
	open := func(ctx context.Context) (FrameSource, error) {
		src := &fakeSource{frames: []image.Image{blankImage(), code}}
		rec.add(src)
		return src, nil
	}

	d := NewLiveDecoder(open, time.Millisecond, newTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Start(ctx)
	defer d.Stop()

	select {
	case r := <-d.Results():
		require.NoError(t, r.Err)
		assert.Equal(t, payload, r.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("no decode emitted")
	}

	// Paused: the held-still code must not produce a second emission.
	select {
	case r := <-d.Results():
		t.Fatalf("unexpected emission while paused: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}

	require.Equal(t, 1, rec.count())
	assert.Eventually(t, rec.at(0).Closed, time.Second, 5*time.Millisecond,
		"camera must be released on pause")

	d.Resume()

	select {
	case r := <-d.Results():
		require.NoError(t, r.Err)
		assert.Equal(t, payload, r.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("no decode after resume")
	}
	assert.Equal(t, 2, rec.count(), "resume must re-acquire the camera")
}

func TestLiveDecoder_StopReleasesCamera(t *testing.T) {
	var src *fakeSource
	open := func(ctx context.Context) (FrameSource, error) {
		src = &fakeSource{frames: []image.Image{blankImage()}}
		return src, nil
	}

	d := NewLiveDecoder(open, time.Millisecond, newTestLogger(t))

	done := make(chan struct{})
	go func() {
		d.Start(context.Background())
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	d.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("decoder did not stop")
	}
	assert.True(t, src.Closed(), "camera must be released on stop")
}

func TestLiveDecoder_SourceFailureSurfacesError(t *testing.T) {
	open := func(ctx context.Context) (FrameSource, error) {
		return nil, assert.AnError
	}

	d := NewLiveDecoder(open, time.Millisecond, newTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Start(ctx)
	defer d.Stop()

	select {
	case r := <-d.Results():
		require.Error(t, r.Err)
		assert.ErrorIs(t, r.Err, assert.AnError)
	case <-time.After(2 * time.Second):
		t.Fatal("no error emitted")
	}
}
