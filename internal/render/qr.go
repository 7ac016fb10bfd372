package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// qrPNG encodes content as a QR code PNG of sizePx square pixels.
func qrPNG(content string, sizePx int) ([]byte, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR content: %w", err)
	}

	scaled, err := barcode.Scale(code, sizePx, sizePx)
	if err != nil {
		return nil, fmt.Errorf("failed to scale QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode QR PNG: %w", err)
	}
	return buf.Bytes(), nil
}
