package capture

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

// mjpegSource reads frames from a multipart/x-mixed-replace MJPEG stream, the
// usual wire format of kiosk IP cameras.
type mjpegSource struct {
	resp   *http.Response
	parts  *multipart.Reader
	cancel context.CancelFunc
}

// OpenMJPEG builds an OpenFunc for an MJPEG camera endpoint. Each invocation
// opens a fresh stream, so pause/resume maps to a clean release and
// re-acquire of the camera.
func OpenMJPEG(url string, client *http.Client) OpenFunc {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context) (FrameSource, error) {
		ctx, cancel := context.WithCancel(ctx)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("build stream request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("open stream: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			cancel()
			return nil, fmt.Errorf("open stream: unexpected status %d", resp.StatusCode)
		}

		mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
		if err != nil || !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
			resp.Body.Close()
			cancel()
			return nil, fmt.Errorf("not an MJPEG stream: content-type %q", resp.Header.Get("Content-Type"))
		}

		return &mjpegSource{
			resp:   resp,
			parts:  multipart.NewReader(resp.Body, params["boundary"]),
			cancel: cancel,
		}, nil
	}
}

func (s *mjpegSource) Grab(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	part, err := s.parts.NextPart()
	if err != nil {
		return nil, fmt.Errorf("next frame: %w", err)
	}
	defer part.Close()

	frame, err := jpeg.Decode(part)
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}

	return frame, nil
}

func (s *mjpegSource) Close() error {
	s.cancel()
	return s.resp.Body.Close()
}
