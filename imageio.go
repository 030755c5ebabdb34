package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/xfmoulet/qoi"
)

func init() {
	image.RegisterFormat("qoi", "qoif", qoi.Decode, qoi.DecodeConfig)
}

var ErrNotSquare = errors.New("image is not square")

// candidateExts lists the lossless raster formats the sweep can emit and the
// ranker will pick up again.
var candidateExts = map[string]bool{
	".png": true,
	".qoi": true,
}

// LoadImage decodes the file at path into an NRGBA buffer with zero-based
// bounds. Any format registered with image (PNG, JPEG, GIF, QOI, ...) is
// accepted.
func LoadImage(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// LoadSquareImage is LoadImage plus the transform precondition: the cat map
// is only defined on square grids.
func LoadSquareImage(path string) (*image.NRGBA, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w != h || w == 0 {
		return nil, fmt.Errorf("%w: %q is %dx%d", ErrNotSquare, path, w, h)
	}
	return img, nil
}

// SaveImage writes img to path, choosing the encoder from the extension.
// QOI is handled directly; everything else goes through imaging.
func SaveImage(img *image.NRGBA, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".qoi") {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %q: %w", path, err)
		}
		if err := qoi.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode %q: %w", path, err)
		}
		return f.Close()
	}
	return imaging.Save(img, path)
}
