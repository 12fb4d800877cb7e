package mandel

// escapeRadiusSq is the squared magnitude at which an orbit is considered escaped.
const escapeRadiusSq = 4.0

// Point is a coordinate in the complex plane.
type Point struct {
	Real, Imag float64
}

// Iterations returns the 1-based step at which the orbit of p under z = z² + p
// first reaches |z|² >= 4, or 0 when it has not escaped after maxIter steps.
func Iterations(p Point, maxIter uint32) uint32 {
	var zr, zi float64
	for n := uint32(1); n <= maxIter; n++ {
		// (a+bi)² = (a+b)(a-b) + 2abi
		zr, zi = (zr+zi)*(zr-zi)+p.Real, 2*zr*zi+p.Imag
		if zr*zr+zi*zi >= escapeRadiusSq {
			return n
		}
	}
	return 0
}
