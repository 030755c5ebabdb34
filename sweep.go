package main

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
)

// SweepConfig controls one brute-force run over the parameter cube.
type SweepConfig struct {
	OutputDir string
	Format    string // candidate extension without the dot: "png" or "qoi"
	Workers   int    // pool size; <= 0 means one per CPU
	Progress  io.Writer
}

// SweepResult summarizes a completed sweep. Saved can be lower than
// Attempted: persistence is best effort and a failed save never aborts the
// batch, it just leaves a hole in the output directory.
type SweepResult struct {
	Attempted int
	Saved     int
	Elapsed   time.Duration
}

// RunSweep decodes src once per triple in the cube and persists each
// candidate as {k}_{a}_{b}.{ext} under cfg.OutputDir. Every triple is an
// independent task on the worker pool, owning its own pair of buffers; the
// shared source image is never written to.
func RunSweep(src *image.NRGBA, triples []Triple, cfg SweepConfig) SweepResult {
	if len(triples) == 0 {
		return SweepResult{}
	}
	if cfg.Format == "" {
		cfg.Format = "png"
	}

	bar := newProgressBar(len(triples), "decoding", cfg.Progress)

	pool := newWorkerPool(cfg.Workers)
	defer pool.Close()

	saved := make([]bool, len(triples))
	start := time.Now()

	pool.ForEach(len(triples), func(i int) {
		t := triples[i]
		decoded := decodeImage(src, t.K, t.A, t.B)

		name := fmt.Sprintf("%s.%s", t, cfg.Format)
		if err := SaveImage(decoded, filepath.Join(cfg.OutputDir, name)); err == nil {
			saved[i] = true
		}
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	res := SweepResult{Attempted: len(triples), Elapsed: time.Since(start)}
	for _, ok := range saved {
		if ok {
			res.Saved++
		}
	}
	return res
}

// newProgressBar builds the (completed, total) reporter for one parallel
// region. A nil writer yields a silent bar, which tests rely on.
func newProgressBar(total int, label string, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)
}
