package fitness

import (
	"math"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// memo remembers the fitness of gene vectors already evaluated in a run.
type memo struct {
	store *cache.Cache
}

func newMemo() *memo {
	return &memo{store: cache.New(cache.NoExpiration, 0)}
}

func (m *memo) get(genes []float64) (framework.Fitness, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.store.Get(key(genes))
	if !ok {
		return nil, false
	}
	return v.(framework.Fitness).Clone(), true
}

func (m *memo) set(genes []float64, f framework.Fitness) {
	if m == nil {
		return
	}
	m.store.SetDefault(key(genes), f.Clone())
}

func (m *memo) len() int {
	if m == nil {
		return 0
	}
	return m.store.ItemCount()
}

// key encodes the exact bit patterns so that only identical vectors collide.
func key(genes []float64) string {
	var b strings.Builder
	b.Grow(len(genes) * 17)
	for i, g := range genes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(math.Float64bits(g), 16))
	}
	return b.String()
}
