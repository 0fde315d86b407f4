// Package capture holds the two producers of raw decoded QR text: a live
// frame-stream decoder and a static image decoder. Neither owns any check-in
// logic; both hand decoded text to the same codec downstream.
package capture

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

// Result is one emission from a capture source: decoded text or the reason
// nothing could be decoded.
type Result struct {
	Text string
	Err  error
}

// decodeFrame runs exactly one decode attempt over a rasterized frame.
func decodeFrame(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("rasterize frame: %w", err)
	}

	res, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", domain.ErrNoCodeFound
	}

	return res.GetText(), nil
}
