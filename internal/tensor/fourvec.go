package tensor

// Vec4 is a four-vector; index 0 is the temporal component.
type Vec4 [4]float64

// Rank2 is a dense rank-2 tensor over four-valued indices.
type Rank2 [4][4]float64

// Rank4 is a dense rank-4 tensor over four-valued indices.
type Rank4 [4][4][4][4]float64

// Metric is the Minkowski metric with signature (-,+,+,+). Read-only.
var Metric = Rank2{
	{-1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Interval returns the Minkowski squared norm k^2 = -t^2 + x^2 + y^2 + z^2.
func Interval(k Vec4) float64 {
	return -k[0]*k[0] + k[1]*k[1] + k[2]*k[2] + k[3]*k[3]
}

// Dot returns the Minkowski inner product of a and b.
func Dot(a, b Vec4) float64 {
	return -a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}
