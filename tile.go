package mandel

import "iter"

// sampleStride is the distance between border samples of the uniformity check.
const sampleStride = 2

// Tile is a square, grid-aligned region of the plane grid. X and Y are the
// top-left corner in the same integer space as Viewport.CenterX/CenterY and
// are multiples of Size. Tile is a comparable value and doubles as the cache key.
type Tile struct {
	X, Y    int64
	Zoom    uint64
	Size    int
	MaxIter uint32
}

// Point returns the plane point of the pixel at (col, row) within the tile.
func (t Tile) Point(col, row int) Point {
	return GridToPlane(t.X+int64(col), t.Y+int64(row), t.Zoom)
}

// Pixel is one resolved pixel at an absolute grid position.
type Pixel struct {
	X, Y       int64
	Iterations uint32
	Color      RGB
}

// TileResult holds the resolved contents of a tile, either a single value
// shared by every pixel or a dense row-major array.
type TileResult struct {
	X, Y int64
	Size int

	uniform    bool
	iterations uint32
	color      RGB

	dense  []uint32
	colors []RGB

	// Evaluations is the number of escape evaluations spent producing the result.
	Evaluations int
}

// Uniform reports whether all pixels share one escape count.
func (r TileResult) Uniform() bool { return r.uniform }

// Len returns the number of pixels.
func (r TileResult) Len() int { return r.Size * r.Size }

// At returns the pixel at row-major index i = row*Size + col.
func (r TileResult) At(i int) Pixel {
	p := Pixel{
		X: r.X + int64(i%r.Size),
		Y: r.Y + int64(i/r.Size),
	}
	if r.uniform {
		p.Iterations, p.Color = r.iterations, r.color
	} else {
		p.Iterations, p.Color = r.dense[i], r.colors[i]
	}
	return p
}

// Pixels returns the pixels in row-major order. The sequence may be ranged
// over any number of times.
func (r TileResult) Pixels() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for i := range r.Len() {
			if !yield(r.At(i)) {
				return
			}
		}
	}
}

// evaluator computes escape counts; Iterations in production.
type evaluator func(Point, uint32) uint32

// Resolve computes the tile contents.
//
// The top-left corner is evaluated first. Border pixels are then sampled every
// sampleStride pixels along all four edges, plus the last pixel of each edge;
// the scan stops at the first sample whose count differs from the corner. If
// none differs the tile is reported uniform without evaluating the interior.
// A tile whose border agrees but whose interior does not (a small island of
// detail fully enclosed by the tile) renders flat; a different zoom frames it
// in other tiles.
func (t Tile) Resolve() TileResult {
	return t.resolve(Iterations)
}

func (t Tile) resolve(eval evaluator) TileResult {
	res := TileResult{X: t.X, Y: t.Y, Size: t.Size}
	if t.Size <= 0 {
		res.uniform = true
		return res
	}

	n := t.Size * t.Size
	dense := make([]uint32, n)
	known := make([]bool, n)
	at := func(col, row int) uint32 {
		i := row*t.Size + col
		if !known[i] {
			dense[i] = eval(t.Point(col, row), t.MaxIter)
			known[i] = true
			res.Evaluations++
		}
		return dense[i]
	}

	prev := at(0, 0)
	if t.uniformBorder(prev, at) {
		res.uniform = true
		res.iterations = prev
		res.color = ColorOf(prev)
		return res
	}

	colors := make([]RGB, n)
	for row := range t.Size {
		for col := range t.Size {
			colors[row*t.Size+col] = ColorOf(at(col, row))
		}
	}
	res.dense = dense
	res.colors = colors
	return res
}

// uniformBorder samples the border and reports whether every sample equals prev.
func (t Tile) uniformBorder(prev uint32, at func(col, row int) uint32) bool {
	last := t.Size - 1
	for a := 0; ; a += sampleStride {
		if a > last {
			a = last
		}
		// opposite edges in pairs: top/bottom, then left/right
		if at(a, 0) != prev || at(a, last) != prev {
			return false
		}
		if at(0, a) != prev || at(last, a) != prev {
			return false
		}
		if a == last {
			return true
		}
	}
}
