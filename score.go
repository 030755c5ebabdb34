package main

import (
	"image"
	"math"

	"github.com/klauspost/compress/zstd"
)

// SmoothnessScore returns the mean local gradient magnitude of img: for
// every pixel that has both a right and a bottom neighbor, the six absolute
// channel differences (R, G, B against each neighbor) are accumulated, then
// normalized by the comparison count 2*(w-1)*(h-1) so the score does not
// depend on image size. Lower means smoother. A correctly decoded image is
// expected to be far smoother than a scrambled one.
//
// Images with a dimension below 2 carry no gradient information and get the
// maximal score, ranking them last.
func SmoothnessScore(img *image.NRGBA) float64 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w < 2 || h < 2 {
		return math.MaxFloat64
	}

	var total uint64
	for y := 0; y < h-1; y++ {
		rowOff := y * img.Stride
		for x := 0; x < w-1; x++ {
			i := rowOff + x*4
			right := i + 4
			below := i + img.Stride

			total += absDiff(img.Pix[i], img.Pix[right]) +
				absDiff(img.Pix[i+1], img.Pix[right+1]) +
				absDiff(img.Pix[i+2], img.Pix[right+2]) +
				absDiff(img.Pix[i], img.Pix[below]) +
				absDiff(img.Pix[i+1], img.Pix[below+1]) +
				absDiff(img.Pix[i+2], img.Pix[below+2])
		}
	}

	comparisons := 2 * (w - 1) * (h - 1)
	return float64(total) / float64(comparisons)
}

func absDiff(a, b uint8) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// CompressionRatio is a second plausibility signal reported alongside the
// smoothness score: zstd compressed size of the raw pixel data over raw
// size. Scrambled pixels look like noise and barely compress; a decoded
// image usually drops well below 1.0. The ranking itself stays defined by
// the smoothness score only.
func CompressionRatio(img *image.NRGBA) float64 {
	if len(img.Pix) == 0 {
		return 1
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 1
	}
	defer enc.Close()

	compressed := enc.EncodeAll(img.Pix, nil)
	return float64(len(compressed)) / float64(len(img.Pix))
}
