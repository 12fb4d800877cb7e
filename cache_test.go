package mandel

import "testing"

func TestTileCache(t *testing.T) {
	c := NewTileCache()
	a := Tile{X: 0, Y: 0, Zoom: 16, Size: 32, MaxIter: 50}
	b := a
	b.MaxIter = 51

	if _, ok := c.Get(a); ok {
		t.Error("expected miss on empty cache")
	}

	c.Put(a, TileResult{X: 0, Y: 0, Size: 32, Evaluations: 7})
	if r, ok := c.Get(a); !ok || r.Evaluations != 7 {
		t.Errorf("expected stored result, got %+v (ok=%v)", r, ok)
	}
	if _, ok := c.Get(b); ok {
		t.Error("tiles differing only in MaxIter must not share an entry")
	}

	c.Put(a, TileResult{Evaluations: 9})
	if c.Len() != 1 {
		t.Errorf("expected 1 entry after overwrite, got %d", c.Len())
	}

	c.Put(b, TileResult{})
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
	if _, ok := c.Get(a); ok {
		t.Error("expected miss after Clear")
	}
}
