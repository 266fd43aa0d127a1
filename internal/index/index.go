// Package index holds an exact nearest-neighbour index over place embeddings.
//
// Distances are squared Euclidean over the raw vectors. Each Build publishes
// an immutable snapshot, so queries running during a rebuild finish against
// the snapshot they started with.
package index

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

type Entry struct {
	PlaceID uuid.UUID
	Vector  []float32
}

type Neighbor struct {
	PlaceID  uuid.UUID
	Distance float64
}

type snapshot struct {
	dim     int
	ids     []uuid.UUID
	vectors [][]float32
}

type Index struct {
	current atomic.Pointer[snapshot]
	buildMu sync.Mutex
}

func New() *Index {
	return &Index{}
}

// Build replaces the current snapshot with one built from entries. Entry order
// is kept and decides the order of equal-distance results. On error the
// previous snapshot stays in place.
func (ix *Index) Build(entries []Entry) error {
	if len(entries) == 0 {
		return ErrEmptyCatalog
	}

	ix.buildMu.Lock()
	defer ix.buildMu.Unlock()

	dim := len(entries[0].Vector)
	if dim == 0 {
		return &DimensionMismatchError{Expected: 1, Got: 0}
	}

	snap := &snapshot{
		dim:     dim,
		ids:     make([]uuid.UUID, 0, len(entries)),
		vectors: make([][]float32, 0, len(entries)),
	}
	for _, e := range entries {
		if len(e.Vector) != dim {
			return &DimensionMismatchError{Expected: dim, Got: len(e.Vector)}
		}
		vec := make([]float32, dim)
		copy(vec, e.Vector)
		snap.ids = append(snap.ids, e.PlaceID)
		snap.vectors = append(snap.vectors, vec)
	}

	ix.current.Store(snap)
	return nil
}

// Query returns up to k entries nearest to vec, nearest first.
func (ix *Index) Query(vec []float32, k int) ([]Neighbor, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	snap := ix.current.Load()
	if snap == nil || len(snap.ids) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(vec) != snap.dim {
		return nil, &DimensionMismatchError{Expected: snap.dim, Got: len(vec)}
	}

	neighbors := make([]Neighbor, len(snap.ids))
	for i, stored := range snap.vectors {
		neighbors[i] = Neighbor{PlaceID: snap.ids[i], Distance: squaredL2(vec, stored)}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}

// Dimension is 0 until the first successful Build.
func (ix *Index) Dimension() int {
	if snap := ix.current.Load(); snap != nil {
		return snap.dim
	}
	return 0
}

func (ix *Index) Len() int {
	if snap := ix.current.Load(); snap != nil {
		return len(snap.ids)
	}
	return 0
}

func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
