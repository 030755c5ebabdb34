// Arnold is a brute-force decoder for images scrambled with the generalized
// Arnold cat map. It sweeps a (iterations, a, b) parameter cube in parallel,
// persists one candidate image per triple and ranks the candidates by a
// local-gradient smoothness score so the plausible decodings surface first.

package main

import (
	"image"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"
)

// catCoeffs holds the 2x2 coordinate matrix of one cat-map pass. The source
// coordinate for destination (row, col) is
//
//	oldRow = (rr*row + rc*col) mod N
//	oldCol = (cr*row + cc*col) mod N
//
// Both the inverse and the forward map are gathers with this shape; they only
// differ in the matrix. det == 1 for both, so each pass is a permutation of
// pixel positions for every a, b and N.
type catCoeffs struct {
	rr, rc, cr, cc int64
}

func inverseCoeffs(a, b int64) catCoeffs {
	return catCoeffs{rr: 1, rc: b, cr: a, cc: a*b + 1}
}

// forwardCoeffs is the matrix inverse of inverseCoeffs, used by the scrambler.
func forwardCoeffs(a, b int64) catCoeffs {
	return catCoeffs{rr: a*b + 1, rc: -b, cr: -a, cc: 1}
}

// euclidMod returns the non-negative remainder of v mod n. The coefficient
// products go negative for negative a or b, and Go's % truncates toward zero,
// so the plain remainder cannot be used here.
func euclidMod(v, n int64) int64 {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// applyMapOnce runs one cat-map pass from src into dst. Both buffers must be
// square with identical bounds. Rows of dst are partitioned across stripes;
// every stripe only reads src and writes its own rows, so no locking is
// needed as long as src stays untouched until the pass completes.
func applyMapOnce(dst, src *image.NRGBA, c catCoeffs) {
	rows := src.Rect.Dy()
	n := int64(rows)

	workers := min(runtime.NumCPU(), rows)
	if workers < 1 {
		workers = 1
	}
	rowsPerWorker := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		y0 := i * rowsPerWorker
		if y0 >= rows {
			break
		}
		y1 := y0 + rowsPerWorker
		if y1 > rows {
			y1 = rows
		}

		wg.Add(1)
		go mapStripe(dst, src, c, n, y0, y1, &wg)
	}
	wg.Wait()
}

func mapStripe(dst, src *image.NRGBA, c catCoeffs, n int64, yStart, yEnd int, wg *sync.WaitGroup) {
	defer wg.Done()
	for row := yStart; row < yEnd; row++ {
		ri := int64(row)
		dstOff := row * dst.Stride
		for col := 0; col < int(n); col++ {
			ci := int64(col)
			oldRow := euclidMod(c.rr*ri+c.rc*ci, n)
			oldCol := euclidMod(c.cr*ri+c.cc*ci, n)

			si := int(oldRow)*src.Stride + int(oldCol)*4
			di := dstOff + col*4
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}

// iterateMap applies the pass k times using two alternating buffers, so the
// hot loop never allocates. k == 0 returns an untouched copy of the input.
func iterateMap(img *image.NRGBA, k int64, c catCoeffs) *image.NRGBA {
	cur := imaging.Clone(img)
	if k == 0 {
		return cur
	}

	next := image.NewNRGBA(cur.Rect)
	for i := int64(0); i < k; i++ {
		applyMapOnce(next, cur, c)
		cur, next = next, cur
	}
	return cur
}

// decodeImage undoes k forward cat-map applications with parameters (a, b).
func decodeImage(img *image.NRGBA, k, a, b int64) *image.NRGBA {
	return iterateMap(img, k, inverseCoeffs(a, b))
}

// scrambleImage applies the forward cat map k times; decodeImage with the
// same triple restores the original exactly.
func scrambleImage(img *image.NRGBA, k, a, b int64) *image.NRGBA {
	return iterateMap(img, k, forwardCoeffs(a, b))
}
