package maze

import (
	"math/rand"

	"github.com/TeamDev2015/labyLink/internal/domain/entity"
)

// Source is the random stream the generator draws from.
// Its whole state must derive from the seed it was built with.
type Source interface {
	// Intn returns a number in [0, n).
	Intn(n int) int
}

// SourceFunc builds a Source from a seed
type SourceFunc func(seed int32) Source

// NewSource returns the default seeded stream
func NewSource(seed int32) Source {
	return rand.New(rand.NewSource(int64(seed)))
}

// shuffle permutes cells in place (Fisher-Yates)
func shuffle(src Source, cells []entity.Point) {
	for i := len(cells) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}
