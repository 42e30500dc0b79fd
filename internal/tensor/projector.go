package tensor

import "math"

// nullTol is the strict guard below which |k^2| makes theta undefined.
const nullTol = 1e-10

// Theta returns theta_{mu nu} = eta_{mu nu} - k_mu k_nu / k^2, the
// transverse tensor the spin-2 projector is assembled from. Returns
// ErrNearNull when |k^2| < 1e-10.
func Theta(k Vec4) (Rank2, error) {
	k2 := Interval(k)
	if math.Abs(k2) < nullTol {
		return Rank2{}, ErrNearNull
	}
	var th Rank2
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			th[mu][nu] = Metric[mu][nu] - k[mu]*k[nu]/k2
		}
	}
	return th, nil
}

// SpinTwoProjector builds the rank-4 spin-2 projector from theta:
//
//	P_{mu nu rho sigma} = (1/2)(theta_{mu rho} theta_{nu sigma} + theta_{mu sigma} theta_{nu rho})
//	                    - (1/3) theta_{mu nu} theta_{rho sigma}
//
// It inherits Theta's near-null error.
func SpinTwoProjector(k Vec4) (Rank4, error) {
	th, err := Theta(k)
	if err != nil {
		return Rank4{}, err
	}
	var p Rank4
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			for rho := 0; rho < 4; rho++ {
				for sigma := 0; sigma < 4; sigma++ {
					sym := 0.5 * (th[mu][rho]*th[nu][sigma] + th[mu][sigma]*th[nu][rho])
					p[mu][nu][rho][sigma] = sym - th[mu][nu]*th[rho][sigma]/3.0
				}
			}
		}
	}
	return p, nil
}

// SourceTensor builds the kinematic tensor
//
//	N_{mu nu rho sigma} = (q_mu k_nu + q_nu k_mu)(q_rho k_sigma + q_sigma k_rho)
//
// from the reference vector q and the probe vector k.
func SourceTensor(q, k Vec4) Rank4 {
	var n Rank4
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			a := q[mu]*k[nu] + q[nu]*k[mu]
			for rho := 0; rho < 4; rho++ {
				for sigma := 0; sigma < 4; sigma++ {
					n[mu][nu][rho][sigma] = a * (q[rho]*k[sigma] + q[sigma]*k[rho])
				}
			}
		}
	}
	return n
}

// Contract sums the elementwise products of a and b over all 256 index
// combinations. Indices are not raised with the metric, so this equals a
// proper Lorentz contraction only when the index positions already line
// up; see Appendix C of the paper for the analytic structure.
func Contract(a, b Rank4) float64 {
	val := 0.0
	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			for rho := 0; rho < 4; rho++ {
				for sigma := 0; sigma < 4; sigma++ {
					val += a[mu][nu][rho][sigma] * b[mu][nu][rho][sigma]
				}
			}
		}
	}
	return val
}
