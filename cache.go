package mandel

// TileCache memoizes tile results by tile identity.
//
// There is no eviction: the owner calls Clear whenever zoom or the iteration
// bound changes, since entries keyed on the old values can never be hit again.
// Get is safe for concurrent use as long as no Put or Clear runs at the same time.
type TileCache struct {
	entries map[Tile]TileResult
}

// NewTileCache returns an empty cache.
func NewTileCache() *TileCache {
	return &TileCache{entries: make(map[Tile]TileResult)}
}

// Get returns the cached result for t.
func (c *TileCache) Get(t Tile) (TileResult, bool) {
	r, ok := c.entries[t]
	return r, ok
}

// Put stores r under t, replacing any previous entry.
func (c *TileCache) Put(t Tile, r TileResult) {
	c.entries[t] = r
}

// Clear drops every entry.
func (c *TileCache) Clear() {
	clear(c.entries)
}

// Len returns the number of cached tiles.
func (c *TileCache) Len() int {
	return len(c.entries)
}
