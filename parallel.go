package chicken

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelChunkSize is the number of input bytes encoded by each goroutine.
const parallelChunkSize = 64 * 1024

// EncodeParallel encodes src into dst like [Encoder.Encode] of the whole of
// src, splitting the work across at most limit goroutines.
// A limit <= 0 uses GOMAXPROCS.
//
// len(dst) must be at least MaxLength(len(src)).
func EncodeParallel(dst, src []byte, limit int) (int, error) {
	if err := validate(dst, src, 0, len(src)); err != nil {
		return 0, err
	}

	t := lookupTable()

	if len(src) <= parallelChunkSize {
		return encodeGeneric(dst, src, t), nil
	}

	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	chunks := (len(src) + parallelChunkSize - 1) / parallelChunkSize
	written := make([]int, chunks)

	var g errgroup.Group
	g.SetLimit(limit)

	for i := range chunks {
		g.Go(func() error {
			lo := i * parallelChunkSize
			hi := min(lo+parallelChunkSize, len(src))
			// Each chunk owns the MaxLength sized region of its input.
			written[i] = encodeGeneric(dst[MaxLength(lo):MaxLength(hi)], src[lo:hi], t)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	// Close the gaps left by chunks shorter than their region. The write
	// position never overtakes the region being moved.
	p := written[0]
	for i := 1; i < chunks; i++ {
		region := MaxLength(i * parallelChunkSize)
		p += copy(dst[p:], dst[region:region+written[i]])
	}

	return p, nil
}
