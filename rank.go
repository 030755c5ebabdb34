package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScoredCandidate pairs one persisted candidate file with its smoothness
// score. Ratio is the zstd compressibility of the raw pixels, filled in only
// for the candidates that make the final report.
type ScoredCandidate struct {
	Name  string
	Score float64
	Ratio float64
}

// RankCandidates loads every candidate image in dir, scores each on the
// worker pool and returns them sorted ascending by score (smoothest first,
// stable on ties). Unreadable or corrupt files are skipped, an empty
// directory yields an empty slice; neither is an error for the ranking pass.
func RankCandidates(dir string, workers int, progress io.Writer) ([]ScoredCandidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read candidate directory %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if candidateExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, nil
	}

	bar := newProgressBar(len(names), "scoring", progress)

	pool := newWorkerPool(workers)
	defer pool.Close()

	// Each task writes only its own slot; no locking needed.
	scored := make([]ScoredCandidate, len(names))
	ok := make([]bool, len(names))

	pool.ForEach(len(names), func(i int) {
		defer bar.Add(1)
		img, err := LoadImage(filepath.Join(dir, names[i]))
		if err != nil {
			return
		}
		scored[i] = ScoredCandidate{Name: names[i], Score: SmoothnessScore(img)}
		ok[i] = true
	})
	_ = bar.Finish()

	ranked := scored[:0]
	for i := range scored {
		if ok[i] {
			ranked = append(ranked, scored[i])
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked, nil
}

// FillCompressionRatios reloads the given candidates and computes their zstd
// pixel compressibility. Meant for the short head of the ranking only; the
// full candidate set is never recompressed.
func FillCompressionRatios(dir string, ranked []ScoredCandidate) {
	for i := range ranked {
		img, err := LoadImage(filepath.Join(dir, ranked[i].Name))
		if err != nil {
			ranked[i].Ratio = 1
			continue
		}
		ranked[i].Ratio = CompressionRatio(img)
	}
}

// PrintReport writes the top entries of the ranking as a fixed-width table.
func PrintReport(w io.Writer, ranked []ScoredCandidate, top int) {
	if len(ranked) == 0 {
		fmt.Fprintln(w, "no candidates found to analyze")
		return
	}
	if top > len(ranked) {
		top = len(ranked)
	}

	fmt.Fprintf(w, "\nTop %d candidates (lower score = smoother = more plausible):\n", top)
	fmt.Fprintln(w, strings.Repeat("-", 64))
	for _, c := range ranked[:top] {
		fmt.Fprintf(w, "  %-28s score %10.2f   zstd ratio %.3f\n", c.Name, c.Score, c.Ratio)
	}
	fmt.Fprintln(w, strings.Repeat("-", 64))
}
