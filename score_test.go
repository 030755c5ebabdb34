package main

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"
)

func TestSmoothnessScoreUniformIsZero(t *testing.T) {
	for _, n := range []int{2, 3, 16, 64} {
		img := makeUniformImage(n, color.NRGBA{R: 120, G: 200, B: 7, A: 255})
		if got := SmoothnessScore(img); got != 0.0 {
			t.Errorf("uniform %dx%d image: score = %v, want exactly 0.0", n, n, got)
		}
	}
}

func TestSmoothnessScoreDegenerateIsMax(t *testing.T) {
	for _, n := range []int{0, 1} {
		img := image.NewNRGBA(image.Rect(0, 0, n, n))
		if got := SmoothnessScore(img); got != math.MaxFloat64 {
			t.Errorf("%dx%d image: score = %v, want MaxFloat64 sentinel", n, n, got)
		}
	}
}

// A hand-checkable 2x2 case: one white pixel among black.
// Comparisons: (0,0)-(1,0) and (0,0)-(0,1), each 3 channels.
func TestSmoothnessScoreSmallKnownValue(t *testing.T) {
	img := makeUniformImage(2, color.NRGBA{A: 255})
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	// total = 255*3 (right) + 255*3 (below) = 1530; comparisons = 2.
	want := 1530.0 / 2.0
	if got := SmoothnessScore(img); got != want {
		t.Fatalf("score = %v, want %v", got, want)
	}
}

func TestSmoothnessScoreRanksScrambledWorse(t *testing.T) {
	src := makeGradientImage(32)
	scrambled := scrambleImage(src, 3, 1, 1)

	orig := SmoothnessScore(src)
	scr := SmoothnessScore(scrambled)
	if orig >= scr {
		t.Fatalf("gradient image must score smoother than its scramble: %v >= %v", orig, scr)
	}
}

// Scoring the same persisted candidate twice must be bit-identical, or the
// ranking would not be reproducible.
func TestScoreIsDeterministicAcrossReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidate.png")

	src := makeNoiseImage(24)
	if err := SaveImage(src, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	var scores [2]float64
	for i := range scores {
		img, err := LoadImage(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		scores[i] = SmoothnessScore(img)
	}
	if scores[0] != scores[1] {
		t.Fatalf("re-scoring gave %v then %v, want bit-identical floats", scores[0], scores[1])
	}
}

func TestCompressionRatioOrdersNoiseAboveFlat(t *testing.T) {
	flat := makeUniformImage(64, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	noise := makeNoiseImage(64)

	rf := CompressionRatio(flat)
	rn := CompressionRatio(noise)
	if rf <= 0 || rn <= 0 {
		t.Fatalf("ratios must be positive, got %v and %v", rf, rn)
	}
	if rf >= rn {
		t.Fatalf("flat image must compress better than noise: %v >= %v", rf, rn)
	}
}
