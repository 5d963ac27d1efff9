// Package qrcode generates the scannable code image embedded in the
// document title block. It is a thin wrapper around
// github.com/skip2/go-qrcode adding input validation and sentinel
// errors comparable with errors.Is.
package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// Sentinel errors for QR generation.
var (
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	ErrInvalidSize  = errors.New("qrcode: size must be positive")
	ErrEncode       = errors.New("qrcode: failed to encode")
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 256

// Generate encodes content as a QR code and returns PNG bytes of the
// given edge length.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return png, nil
}
