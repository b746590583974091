package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"testing"
)

func decode(t *testing.T, res *EncodeResult) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if img.Bounds().Dx() != res.Width || img.Bounds().Dy() != res.Height {
		t.Errorf("png is %v, result says %dx%d", img.Bounds(), res.Width, res.Height)
	}
}

func TestEncode(t *testing.T) {
	img := createPatternImage(40, 20)

	tests := []struct {
		name          string
		scale         float64
		width, height int
	}{
		{"unscaled", 1, 40, 20},
		{"zero scale means unscaled", 0, 40, 20},
		{"double", 2, 80, 40},
		{"half", 0.5, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Encode(img, tt.scale)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if res.Width != tt.width || res.Height != tt.height {
				t.Errorf("dimensions: got %dx%d, want %dx%d", res.Width, res.Height, tt.width, tt.height)
			}
			if res.MimeType != "image/png" {
				t.Errorf("MimeType: got %s", res.MimeType)
			}
			decode(t, res)
		})
	}
}

func TestEncode_ScaleTooSmall(t *testing.T) {
	img := createInMemoryImage(4, 4, color.White)
	if _, err := Encode(img, 0.1); err == nil {
		t.Error("expected error when scaling to zero pixels")
	}
}

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	res, err := Crop(img, Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, 2)
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if res.Width != 100 || res.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", res.Width, res.Height)
	}
	decode(t, res)
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name string
		r    Region
	}{
		{"outside right", Region{X1: 50, Y1: 0, X2: 150, Y2: 50}},
		{"negative", Region{X1: -1, Y1: 0, X2: 10, Y2: 10}},
		{"empty", Region{X1: 10, Y1: 10, X2: 10, Y2: 20}},
		{"inverted", Region{X1: 20, Y1: 10, X2: 10, Y2: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.r, 1); err == nil {
				t.Errorf("expected error for %+v", tt.r)
			}
		})
	}
}
