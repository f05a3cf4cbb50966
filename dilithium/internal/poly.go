package internal

// Poly is an element of R_q = Z_q[X]/(X²⁵⁶+1).  Coefficients are unsigned
// and frequently carried unreduced; each method states the range it assumes
// or guarantees.  The zero value is the zero polynomial.
type Poly [N]uint32

// Reduce partially reduces each coefficient below 2²³ + 2¹³.
func (p *Poly) Reduce() {
	for i := range p {
		p[i] = reduce32(p[i])
	}
}

// CSubQ subtracts Q once from each coefficient that is ≥ Q.  Coefficients
// must be below 2Q.
func (p *Poly) CSubQ() {
	for i := range p {
		p[i] = csubq(p[i])
	}
}

// Freeze brings each coefficient to its canonical representative in [0, Q).
func (p *Poly) Freeze() {
	for i := range p {
		p[i] = freeze(p[i])
	}
}

// Add sets p to a + b without reduction.
func (p *Poly) Add(a, b *Poly) {
	for i := range p {
		p[i] = a[i] + b[i]
	}
}

// Sub sets p to a - b, keeping coefficients non-negative via a 2Q offset.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p {
		p[i] = a[i] + 2*Q - b[i]
	}
}

// ShiftLeft multiplies each coefficient by 2ᵏ without reduction.
func (p *Poly) ShiftLeft(k uint) {
	for i := range p {
		p[i] <<= k
	}
}

// MulHat sets p to the coefficient-wise NTT-domain product a·b with a
// Montgomery reduction, so the result carries an R⁻¹ factor.
func (p *Poly) MulHat(a, b *Poly) {
	for i := range p {
		p[i] = montReduce(uint64(a[i]) * uint64(b[i]))
	}
}

// Power2Round splits p into p0 and p1 coefficient-wise; see power2round.
// Coefficients must be in canonical form.
func (p *Poly) Power2Round(p0, p1 *Poly) {
	for i := range p {
		p0[i], p1[i] = power2round(p[i])
	}
}

// Decompose splits p into p0 and p1 coefficient-wise; see decompose.
// Coefficients must be in canonical form.
func (p *Poly) Decompose(p0, p1 *Poly) {
	for i := range p {
		p0[i], p1[i] = decompose(p[i])
	}
}

// MakeHint sets h to the hint polynomial for a (the value) and b (the value
// plus perturbation) and returns the number of hint bits set.
func (h *Poly) MakeHint(a, b *Poly) int {
	pop := 0
	for i := range h {
		h[i] = makeHint(a[i], b[i])
		pop += int(h[i])
	}
	return pop
}

// UseHint reconstructs the high parts of the unperturbed value from the
// perturbed a and the hint polynomial h.
func (p *Poly) UseHint(a, h *Poly) {
	for i := range p {
		p[i] = useHint(a[i], h[i])
	}
}

// Exceeds reports whether the centred absolute value of any coefficient is
// ≥ bound.  Coefficients must be in canonical form.
func (p *Poly) Exceeds(bound uint32) bool {
	for i := range p {
		t := int32((Q-1)/2 - p[i])
		t ^= t >> 31
		t = (Q-1)/2 - t
		if uint32(t) >= bound {
			return true
		}
	}
	return false
}
