package polyn

import (
	"fmt"

	"github.com/npillmayer/curves"
	"gonum.org/v1/gonum/mat"
)

// Vandermonde returns the k×k Vandermonde matrix for parameter values
// t.0 … t.k-1, i.e. V[i,j] = t.i^j.
func Vandermonde(ts []float64) *mat.Dense {
	k := len(ts)
	V := mat.NewDense(k, k, nil)
	for i, t := range ts {
		x := 1.0
		for j := 0; j < k; j++ {
			V.Set(i, j, x)
			x *= t
		}
	}
	return V
}

// Fit finds polynomials of degree len(ts)-1 in power basis through the
// sample points (t.i, y.i), one polynomial per slice of y-values. It solves
// the linear system V⋅a = y, where V is the Vandermonde matrix of ts.
//
// Fit returns an error wrapping curves.ErrSingularSystem if two parameter
// values are equal or the system cannot be solved, and
// curves.ErrDimensionMismatch if a slice of y-values differs in length
// from ts. Parameter values are compared exactly.
func Fit(ts []float64, ys ...[]float64) ([]Polynomial, error) {
	k := len(ts)
	if k == 0 {
		return nil, fmt.Errorf("%w: no sample points", curves.ErrDimensionMismatch)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if ts[i] == ts[j] {
				T().Errorf("Vandermonde matrix is singular: t.%d = t.%d = %g", i, j, ts[i])
				return nil, fmt.Errorf("%w: t.%d and t.%d coincide at %g",
					curves.ErrSingularSystem, i, j, ts[i])
			}
		}
	}
	if len(ys) == 0 {
		return nil, nil
	}
	Y := mat.NewDense(k, len(ys), nil)
	for c, y := range ys {
		if len(y) != k {
			return nil, fmt.Errorf("%w: %d parameter values, but %d samples",
				curves.ErrDimensionMismatch, k, len(y))
		}
		Y.SetCol(c, y)
	}
	var A mat.Dense
	if err := A.Solve(Vandermonde(ts), Y); err != nil {
		T().Errorf("cannot solve Vandermonde system: %v", err)
		return nil, fmt.Errorf("%w: %v", curves.ErrSingularSystem, err)
	}
	polys := make([]Polynomial, len(ys))
	for c := range ys {
		p := NewConstantPolynomial(A.At(0, c))
		for e := 1; e < k; e++ {
			p.SetTerm(e, A.At(e, c))
		}
		polys[c] = p
		T().Debugf("fitted P(t) = %s", p)
	}
	return polys, nil
}
