package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const badgeSize = 256

// Badge renders a member's check-in payload as a PNG QR code, the image a
// member presents at the door.
func Badge(memberID, scope string) ([]byte, error) {
	png, err := qrcode.Encode(Format(memberID, scope), qrcode.Medium, badgeSize)
	if err != nil {
		return nil, fmt.Errorf("encode badge: %w", err)
	}
	return png, nil
}
