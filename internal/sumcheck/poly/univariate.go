package poly

import "github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"

// Univariate is a single-variable polynomial over F, stored densely by
// ascending power. It is the type the naive prover sends each round.
type Univariate struct {
	f      field.Field
	coeffs []field.Element // coeffs[i] is the coefficient of x^i
}

// NewUnivariateFromMap builds a dense Univariate from a sparse power->coeff
// map, filling any missing powers with zero.
func NewUnivariateFromMap(f field.Field, sparse map[uint]field.Element) *Univariate {
	degree := uint(0)
	for pw := range sparse {
		if pw > degree {
			degree = pw
		}
	}
	coeffs := make([]field.Element, degree+1)
	for i := range coeffs {
		coeffs[i] = f.Zero()
	}
	for pw, c := range sparse {
		coeffs[pw] = c
	}
	return &Univariate{f: f, coeffs: coeffs}
}

// NewUnivariate builds a dense Univariate directly from ascending-power
// coefficients.
func NewUnivariate(f field.Field, coeffs []field.Element) *Univariate {
	cp := make([]field.Element, len(coeffs))
	copy(cp, coeffs)
	if len(cp) == 0 {
		cp = []field.Element{f.Zero()}
	}
	return &Univariate{f: f, coeffs: cp}
}

// Degree returns the polynomial's formal degree (len(coeffs)-1); it is not
// trimmed of trailing zero coefficients.
func (u *Univariate) Degree() int { return len(u.coeffs) - 1 }

// Coefficients returns a copy of the ascending-power coefficient list.
func (u *Univariate) Coefficients() []field.Element {
	cp := make([]field.Element, len(u.coeffs))
	copy(cp, u.coeffs)
	return cp
}

// Eval evaluates the polynomial at x via Horner's method.
func (u *Univariate) Eval(x field.Element) field.Element {
	if len(u.coeffs) == 0 {
		return u.f.Zero()
	}
	result := u.coeffs[len(u.coeffs)-1]
	for i := len(u.coeffs) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(u.coeffs[i])
	}
	return result
}

// EvalAtZero and EvalAtOne are the two evaluations the naive verifier
// checks sum to the expected claim each round.
func (u *Univariate) EvalAtZero() field.Element { return u.coeffs[0] }

func (u *Univariate) EvalAtOne() field.Element {
	sum := u.f.Zero()
	for _, c := range u.coeffs {
		sum = sum.Add(c)
	}
	return sum
}

// LagrangeEval reconstructs the degree-len(ys)-1 univariate interpolating
// (0, ys[0]), (1, ys[1]), ..., (len(ys)-1, ys[len(ys)-1]) and evaluates it
// at r, without ever materialising the interpolated polynomial:
//
//	Σ_t y_t * Π_{s≠t} (r - x_s) / (x_t - x_s), x_t = t (embedded in F).
//
// Requires the field characteristic to exceed len(ys)-1 so every
// denominator (x_t - x_s) is invertible.
func LagrangeEval(f field.Field, ys []field.Element, r field.Element) (field.Element, error) {
	n := len(ys)
	xs := make([]field.Element, n)
	for t := 0; t < n; t++ {
		xs[t] = f.NewElement(int64(t))
	}

	result := f.Zero()
	for t := 0; t < n; t++ {
		num := f.One()
		den := f.One()
		for s := 0; s < n; s++ {
			if s == t {
				continue
			}
			num = num.Mul(r.Sub(xs[s]))
			den = den.Mul(xs[t].Sub(xs[s]))
		}
		denInv, err := den.Inv()
		if err != nil {
			return nil, err
		}
		term := ys[t].Mul(num).Mul(denInv)
		result = result.Add(term)
	}
	return result, nil
}
