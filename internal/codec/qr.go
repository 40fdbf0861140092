package codec

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QR image sizes in pixels.
const (
	DefaultQRSize = 256
	MinQRSize     = 64
	MaxQRSize     = 1024
)

// QRCode renders link as a square PNG of size pixels. Sizes outside
// [MinQRSize, MaxQRSize] are clamped.
func QRCode(link string, size int) ([]byte, error) {
	size = max(MinQRSize, min(size, MaxQRSize))
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return png, nil
}
