package capture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// MaxImageBytes bounds uploaded badge photos.
const MaxImageBytes = 10 << 20

// DecodeImage is the static capture adapter: it takes an uploaded file,
// rejects non-image content before any pixel work, rasterizes, and runs a
// single decode attempt.
func DecodeImage(data []byte) (string, error) {
	if len(data) == 0 || !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return "", domain.ErrNotImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNotImage, err)
	}

	return decodeFrame(img)
}
