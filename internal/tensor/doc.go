// Package tensor provides Minkowski four-vectors and the rank-2/rank-4
// tensor algebra behind the spin-2 projector checks.
//
// All quantities use signature (-,+,+,+) with the temporal component first:
//
//	k := tensor.Vec4{omega, kx, ky, kz}
//	k2 := tensor.Interval(k)
//	P, err := tensor.SpinTwoProjector(k)
//
// The projector is undefined on (near-)null momenta; constructors return
// [ErrNearNull] when |k^2| falls below the guard tolerance.
package tensor
