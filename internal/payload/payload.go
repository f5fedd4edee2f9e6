// Package payload recognises and decodes image payloads stored as answer values and
// signatures (data URLs or bare base64).
package payload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"regexp"
	"strings"
)

var (
	ErrNotImage     = errors.New("not an image payload")
	ErrUnsupported  = errors.New("unsupported image format")
	dataURLPattern  = regexp.MustCompile(`^data:image/[a-zA-Z]+;base64,`)
	base64Sample    = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
	bareSampleChars = 100
)

// IsImage reports whether s looks like an image payload: a data:image URL, or a string
// longer than 100 characters whose first 100 characters are valid base64.
func IsImage(s string) bool {
	if s == "" {
		return false
	}
	if dataURLPattern.MatchString(s) {
		return true
	}
	if len(s) > bareSampleChars {
		return base64Sample.MatchString(s[:bareSampleChars])
	}
	return false
}

// Image is a decoded payload ready to be embedded in a document.
type Image struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Decode strips an optional data URL prefix, base64-decodes s and re-encodes the PNG or
// JPEG it contains as a plain 8-bit, non-interlaced PNG.
func Decode(s string) (Image, error) {
	if !IsImage(s) {
		return Image{}, ErrNotImage
	}
	raw := s
	if loc := dataURLPattern.FindStringIndex(s); loc != nil {
		raw = s[loc[1]:]
	}
	raw = strings.TrimSpace(raw)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return Image{}, fmt.Errorf("decode base64: %w", err)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decode image: %w", err)
	}
	if format != "png" && format != "jpeg" {
		return Image{}, fmt.Errorf("%w: %s", ErrUnsupported, format)
	}

	bounds := src.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), src, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return Image{}, fmt.Errorf("encode png: %w", err)
	}
	return Image{Data: buf.Bytes(), Format: "PNG", Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
