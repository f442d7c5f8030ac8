// Package raster provides image loading, saving, and geometry validation.
package raster

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Load reads and decodes an image from the given path.
// PNG, JPEG, TIFF, and BMP inputs are supported.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Save encodes an image to the given path. The encoder is chosen by the
// file extension (.png, .jpg, .jpeg, .bmp, .tif, .tiff).
func Save(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(file, img)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, nil)
	default:
		err = fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// ValidateGeometry checks that an image can be divided into vertical strips
// of the given width. The width must be a positive multiple of stripWidth.
func ValidateGeometry(img image.Image, stripWidth int) error {
	if stripWidth <= 0 {
		return fmt.Errorf("strip width must be positive, got %d", stripWidth)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < stripWidth {
		return fmt.Errorf("image width %d is smaller than strip width %d", w, stripWidth)
	}
	if w%stripWidth != 0 {
		return fmt.Errorf("image width %d is not a multiple of strip width %d", w, stripWidth)
	}
	if h <= 0 {
		return fmt.Errorf("image height must be positive, got %d", h)
	}
	return nil
}

// SupportedFormats returns the list of supported image file extensions.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}
}

// IsSupportedFormat checks if the given path has a supported image extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
