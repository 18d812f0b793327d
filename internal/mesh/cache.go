package mesh

import (
	"strconv"
	"strings"
	"sync"

	"github.com/san-kum/polyview/internal/palette"
)

type cacheKey struct {
	kind    Kind
	params  Params
	palette string
}

// Cache memoizes Build. Meshes do not depend on rotation, so one entry
// serves every frame of a spinning shape. Returned slices are shared and
// must be treated as read-only. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey][]Face
	limit   int
	hits    int
	misses  int
}

// NewCache returns a cache holding at most limit meshes; limit <= 0 means
// unbounded. When full the cache is cleared before inserting.
func NewCache(limit int) *Cache {
	return &Cache{entries: make(map[cacheKey][]Face), limit: limit}
}

// Faces returns the cached mesh, building it on a miss. Palettes are told
// apart by their face colors, not their names.
func (c *Cache) Faces(k Kind, p Params, pal palette.Palette) []Face {
	key := cacheKey{kind: k, params: p, palette: faceKey(pal)}

	c.mu.Lock()
	defer c.mu.Unlock()
	if faces, ok := c.entries[key]; ok {
		c.hits++
		return faces
	}
	c.misses++
	faces := Build(k, p, pal)
	if c.limit > 0 && len(c.entries) >= c.limit {
		clear(c.entries)
	}
	c.entries[key] = faces
	return faces
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// faceKey encodes the colors Build reads from pal.
func faceKey(pal palette.Palette) string {
	var b strings.Builder
	for _, f := range pal.Faces {
		b.WriteString(f.Hex())
		b.WriteByte('/')
		b.WriteString(strconv.FormatFloat(f.A, 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}
