package mandel

import "testing"

func TestResolveUniformInside(t *testing.T) {
	tile := Tile{X: -200, Y: 0, Zoom: 1000, Size: 32, MaxIter: 100}
	r := tile.Resolve()

	if !r.Uniform() {
		t.Fatal("expected a tile deep inside the main cardioid to be uniform")
	}
	maxSamples := 4 * (tile.Size/sampleStride + 1)
	if r.Evaluations == 0 || r.Evaluations > maxSamples {
		t.Errorf("expected 1..%d border evaluations, got %d", maxSamples, r.Evaluations)
	}
	for p := range r.Pixels() {
		if p.Iterations != 0 || p.Color != Black {
			t.Fatalf("pixel (%d, %d): expected black, got %v (%d iterations)", p.X, p.Y, p.Color, p.Iterations)
		}
	}
}

func TestResolveUniformOutside(t *testing.T) {
	tile := Tile{X: 160, Y: 0, Zoom: 16, Size: 32, MaxIter: 50}
	r := tile.Resolve()

	if !r.Uniform() {
		t.Fatal("expected a tile far outside the set to be uniform")
	}
	want := ColorOf(1)
	for i := range r.Len() {
		if p := r.At(i); p.Iterations != 1 || p.Color != want {
			t.Fatalf("pixel %d: expected %v, got %v", i, want, p.Color)
		}
	}
}

func TestResolveDenseMatchesEvaluator(t *testing.T) {
	tile := Tile{X: -16, Y: -16, Zoom: 16, Size: 32, MaxIter: 50}
	r := tile.Resolve()

	if r.Uniform() {
		t.Fatal("expected a tile straddling the set boundary to be dense")
	}
	if r.Evaluations != tile.Size*tile.Size {
		t.Errorf("expected every pixel evaluated exactly once (%d), got %d", tile.Size*tile.Size, r.Evaluations)
	}
	for row := range tile.Size {
		for col := range tile.Size {
			want := Iterations(tile.Point(col, row), tile.MaxIter)
			p := r.At(row*tile.Size + col)
			if p.Iterations != want || p.Color != ColorOf(want) {
				t.Fatalf("pixel (%d, %d): expected %d iterations, got %d", col, row, want, p.Iterations)
			}
		}
	}
}

// borderEval reports 7 on the border of an 8×8 tile at zoom 1 and 3 inside.
func borderEval(p Point, _ uint32) uint32 {
	col, row := int(p.Real), int(-p.Imag)
	if col == 0 || row == 0 || col == 7 || row == 7 {
		return 7
	}
	return 3
}

func TestResolveUniformBorderSkipsInterior(t *testing.T) {
	tile := Tile{X: 0, Y: 0, Zoom: 1, Size: 8, MaxIter: 10}
	r := tile.resolve(borderEval)

	if !r.Uniform() {
		t.Fatal("expected uniform result when all border samples agree")
	}
	// offsets 0, 2, 4, 6, 7 on four edges, corners shared
	if r.Evaluations != 16 {
		t.Errorf("expected 16 border evaluations, got %d", r.Evaluations)
	}
	for p := range r.Pixels() {
		if p.Iterations != 7 || p.Color != ColorOf(7) {
			t.Fatalf("pixel (%d, %d): expected replicated corner value, got %d", p.X, p.Y, p.Iterations)
		}
	}
}

func TestResolveBorderMismatchGoesDense(t *testing.T) {
	eval := func(p Point, maxIter uint32) uint32 {
		if p.Real == 4 && p.Imag == 0 {
			return 9
		}
		return borderEval(p, maxIter)
	}
	tile := Tile{X: 0, Y: 0, Zoom: 1, Size: 8, MaxIter: 10}
	r := tile.resolve(eval)

	if r.Uniform() {
		t.Fatal("expected dense result when a border sample differs")
	}
	for p := range r.Pixels() {
		want := eval(tile.Point(int(p.X), int(p.Y)), tile.MaxIter)
		if p.Iterations != want {
			t.Errorf("pixel (%d, %d): expected %d, got %d", p.X, p.Y, want, p.Iterations)
		}
	}
}

func TestPixelsRowMajorAndRestartable(t *testing.T) {
	tile := Tile{X: 64, Y: -32, Zoom: 16, Size: 4, MaxIter: 5}
	r := tile.Resolve()

	var first, second []Pixel
	for p := range r.Pixels() {
		first = append(first, p)
	}
	for p := range r.Pixels() {
		second = append(second, p)
	}
	if len(first) != 16 || len(second) != 16 {
		t.Fatalf("expected 16 pixels per pass, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pass differs at %d: %+v vs %+v", i, first[i], second[i])
		}
		wantX, wantY := tile.X+int64(i%4), tile.Y+int64(i/4)
		if first[i].X != wantX || first[i].Y != wantY {
			t.Errorf("index %d: expected (%d, %d), got (%d, %d)", i, wantX, wantY, first[i].X, first[i].Y)
		}
	}

	n := 0
	for range r.Pixels() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected early break after 3 pixels, got %d", n)
	}
}
