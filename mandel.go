// Package mandel renders the Mandelbrot set tile by tile, memoizing tiles
// across frames so that panning only computes the newly exposed area.
package mandel

import (
	"math"
	"sort"
	"strings"
)

// Region is a rectangle of the complex plane.
type Region struct {
	Name       string
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Viewport returns a width×height viewport showing the whole region,
// centered on its midpoint.
func (r Region) Viewport(width, height int, maxIter uint32) Viewport {
	zoom := math.Floor(math.Min(
		float64(width)/(r.Xmax-r.Xmin),
		float64(height)/(r.Ymax-r.Ymin),
	))
	midX := (r.Xmin + r.Xmax) / 2
	midY := (r.Ymin + r.Ymax) / 2
	return NewViewport(
		width, height,
		int64(math.Round(midX*zoom)),
		int64(math.Round(-midY*zoom)),
		uint64(zoom),
		maxIter,
	)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Whole set
	FullSet = Region{
		Name: "full",
		Xmin: -2.5,
		Xmax: 1.0,
		Ymin: -1.25,
		Ymax: 1.25,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Name: "seahorse",
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Name: "elephant",
		Xmin: 0.25,
		Xmax: 0.35,
		Ymin: -0.05,
		Ymax: 0.05,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Name: "spiral",
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Name: "triple",
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Name: "dragon",
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Name: "minibrot",
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Regions lists the landmarks in display order.
var Regions = []Region{
	FullSet,
	SeahorseValley,
	ElephantValley,
	SpiralMinibrot,
	TripleSpiral,
	ValleyOfTheDragon,
	MinibrotInMiniSpiral,
}

// RegionByName looks a landmark up by its case-insensitive name.
func RegionByName(name string) (Region, bool) {
	for _, r := range Regions {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Region{}, false
}

// RegionNames returns the sorted landmark names.
func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for _, r := range Regions {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}
