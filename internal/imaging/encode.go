package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Region is a half-open pixel rectangle.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// EncodeResult is a PNG ready to embed in a tool response.
type EncodeResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Encode scales img and encodes it as base64 PNG. Scaling uses
// nearest-neighbor so hard edges such as checkerboard cells stay crisp.
func Encode(img image.Image, scale float64) (*EncodeResult, error) {
	out := image.Image(img)
	if scale != 1.0 && scale > 0 {
		w := int(float64(img.Bounds().Dx()) * scale)
		h := int(float64(img.Bounds().Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %.3f shrinks %dx%d image to nothing", scale, img.Bounds().Dx(), img.Bounds().Dy())
		}
		out = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodeResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Crop extracts r from img, then scales and encodes it like Encode.
func Crop(img image.Image, r Region, scale float64) (*EncodeResult, error) {
	bounds := img.Bounds()
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds %v",
			r.X1, r.Y1, r.X2, r.Y2, bounds)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return Encode(imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2)), scale)
}
