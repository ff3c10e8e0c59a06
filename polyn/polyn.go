// Package polyn is for arithmetic with polynomials in power basis, and for
// fitting them through sample points.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return tracing.Select("equations")
}

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅t^I
//
// I > 0
type X struct {
	I int     // exponent of t
	C float64 // coefficient
}

// New creates a polynomial, given the term coefficients and exponents.
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(t) = 8 + 2/3t + 5t²
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, tm := range tms {
		if tm.I < 1 {
			err = fmt.Errorf("term exponent must be at least 1, skipping it")
		} else {
			p.SetTerm(tm.I, tm.C)
		}
	}
	return p, err
}

// Polynomial is a type for polynomials in power basis
//
//	c + a.1 t + a.2 t² + ... a.n t^n .
//
// We store the coefficients only. Index 0 is the constant term.
// We store the coefficients in a TreeMap (sorted map), keyed by exponent.
type Polynomial struct {
	Terms *treemap.Map
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.Terms.Put(0, c) // initialize with constant term (at position 0)
	return p
}

func (p *Polynomial) checkTerms() {
	if p.Terms == nil {
		p.Terms = treemap.NewWithIntComparator()
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, coeff float64) Polynomial {
	p.checkTerms()
	p.Terms.Put(i, coeff)
	return p
}

// GetCoeffForTerm gets the coefficient for term # i.
//
// Example:
//
//	p = 1 + 3t²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	if p.Terms == nil {
		return 0.0
	}
	if c, found := p.Terms.Get(i); found {
		return c.(float64)
	}
	return 0.0
}

// TermCount returns the number of stored terms, including the constant term.
func (p Polynomial) TermCount() int {
	if p.Terms == nil {
		return 0
	}
	return p.Terms.Size()
}

// Degree returns the highest exponent with a stored term.
func (p Polynomial) Degree() int {
	if p.Terms == nil || p.Terms.Empty() {
		return 0
	}
	deg, _ := p.Terms.Max()
	return deg.(int)
}

// CopyPolynomial makes a copy of a Polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p1 := NewConstantPolynomial(0.0)
	p.checkTerms()
	it := p.Terms.Iterator()
	for it.Next() {
		p1.SetTerm(it.Key().(int), it.Value().(float64))
	}
	return p1
}

// Zap eliminates all terms with coefficient=0 from a polynomial. The
// constant term is always kept.
func (p Polynomial) Zap() Polynomial {
	p.checkTerms()
	for _, pos := range p.Terms.Keys() {
		if c, _ := p.Terms.Get(pos); curves.Is0(c.(float64)) {
			p.Terms.Remove(pos)
		}
	}
	if _, ok := p.Terms.Get(0); !ok {
		p.Terms.Put(0, 0.0)
	}
	return p
}

// Eval evaluates p at t, using Horner's scheme.
func (p Polynomial) Eval(t float64) float64 {
	r := 0.0
	for e := p.Degree(); e >= 0; e-- {
		r = r*t + p.GetCoeffForTerm(e)
	}
	return r
}

// String creates a readable string representation for a Polynomial.
// Coefficients are rounded to Epsilon.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	p.checkTerms()
	it := p.Terms.Iterator()
	first := true
	for it.Next() {
		pos := it.Key().(int)
		c := curves.Zap(it.Value().(float64))
		if !first {
			if c < 0 {
				buffer.WriteString(" - ")
			} else {
				buffer.WriteString(" + ")
			}
			c = math.Abs(c)
		}
		first = false
		switch pos {
		case 0:
			buffer.WriteString(fmt.Sprintf("%g", c))
		case 1:
			buffer.WriteString(fmt.Sprintf("%gt", c))
		default:
			buffer.WriteString(fmt.Sprintf("%gt^%d", c, pos))
		}
	}
	return buffer.String()
}
