package internal

// VecL is a vector of L polynomials.
type VecL [L]Poly

// VecK is a vector of K polynomials.
type VecK [K]Poly

// PolyDotHat sets w to the NTT-domain inner product Σ u[i]·v[i], partially
// reduced.  This is the matrix-row by vector primitive behind A·s₁ and A·y.
func PolyDotHat(w *Poly, u, v *VecL) {
	var t Poly

	w.MulHat(&u[0], &v[0])
	for i := 1; i < L; i++ {
		t.MulHat(&u[i], &v[i])
		for j := range w {
			w[j] += t[j]
		}
	}
	w.Reduce()
}

// Sets v to a + b.
func (v *VecL) Add(a, b *VecL) {
	for i := 0; i < L; i++ {
		v[i].Add(&a[i], &b[i])
	}
}

// NTT transforms each component in place.
func (v *VecL) NTT() {
	for i := 0; i < L; i++ {
		v[i].NTT()
	}
}

// Freeze normalizes each component to canonical form.
func (v *VecL) Freeze() {
	for i := 0; i < L; i++ {
		v[i].Freeze()
	}
}

// Exceeds reports whether any component exceeds the centred norm bound.
func (v *VecL) Exceeds(bound uint32) bool {
	for i := 0; i < L; i++ {
		if v[i].Exceeds(bound) {
			return true
		}
	}
	return false
}

// PackLeqEta packs the vector using Poly.PackLeqEta.
func (v *VecL) PackLeqEta(buf []byte) {
	for i := 0; i < L; i++ {
		v[i].PackLeqEta(buf[i*PolyLeqEtaSize:])
	}
}

// UnpackLeqEta reverses PackLeqEta.
func (v *VecL) UnpackLeqEta(buf []byte) {
	for i := 0; i < L; i++ {
		v[i].UnpackLeqEta(buf[i*PolyLeqEtaSize:])
	}
}

// PackLeGamma1 packs the vector using Poly.PackLeGamma1.
func (v *VecL) PackLeGamma1(buf []byte) {
	for i := 0; i < L; i++ {
		v[i].PackLeGamma1(buf[i*PolyLeGamma1Size:])
	}
}

// UnpackLeGamma1 reverses PackLeGamma1.
func (v *VecL) UnpackLeGamma1(buf []byte) {
	for i := 0; i < L; i++ {
		v[i].UnpackLeGamma1(buf[i*PolyLeGamma1Size:])
	}
}

// Sets v to a + b.
func (v *VecK) Add(a, b *VecK) {
	for i := 0; i < K; i++ {
		v[i].Add(&a[i], &b[i])
	}
}

// Sets v to a - b with the usual 2Q offset.
func (v *VecK) Sub(a, b *VecK) {
	for i := 0; i < K; i++ {
		v[i].Sub(&a[i], &b[i])
	}
}

// NTT transforms each component in place.
func (v *VecK) NTT() {
	for i := 0; i < K; i++ {
		v[i].NTT()
	}
}

// InvNTT transforms each component back in place.
func (v *VecK) InvNTT() {
	for i := 0; i < K; i++ {
		v[i].InvNTT()
	}
}

// Reduce partially reduces each component.
func (v *VecK) Reduce() {
	for i := 0; i < K; i++ {
		v[i].Reduce()
	}
}

// CSubQ conditionally subtracts Q from each coefficient.
func (v *VecK) CSubQ() {
	for i := 0; i < K; i++ {
		v[i].CSubQ()
	}
}

// Freeze normalizes each component to canonical form.
func (v *VecK) Freeze() {
	for i := 0; i < K; i++ {
		v[i].Freeze()
	}
}

// Exceeds reports whether any component exceeds the centred norm bound.
func (v *VecK) Exceeds(bound uint32) bool {
	for i := 0; i < K; i++ {
		if v[i].Exceeds(bound) {
			return true
		}
	}
	return false
}

// ShiftLeft multiplies every coefficient by 2ᵏ.
func (v *VecK) ShiftLeft(k uint) {
	for i := 0; i < K; i++ {
		v[i].ShiftLeft(k)
	}
}

// Power2Round splits v componentwise into v0 and v1.
func (v *VecK) Power2Round(v0, v1 *VecK) {
	for i := 0; i < K; i++ {
		v[i].Power2Round(&v0[i], &v1[i])
	}
}

// Decompose splits v componentwise into v0 and v1.
func (v *VecK) Decompose(v0, v1 *VecK) {
	for i := 0; i < K; i++ {
		v[i].Decompose(&v0[i], &v1[i])
	}
}

// MakeHint computes the hint vector for a and b and returns the total hint
// weight, which the signer checks against Omega.
func (h *VecK) MakeHint(a, b *VecK) int {
	pop := 0
	for i := 0; i < K; i++ {
		pop += h[i].MakeHint(&a[i], &b[i])
	}
	return pop
}

// UseHint reconstructs the w₁ high parts componentwise.
func (v *VecK) UseHint(a, h *VecK) {
	for i := 0; i < K; i++ {
		v[i].UseHint(&a[i], &h[i])
	}
}

// PackT1 packs the vector using Poly.PackT1.
func (v *VecK) PackT1(buf []byte) {
	for i := 0; i < K; i++ {
		v[i].PackT1(buf[i*PolyT1Size:])
	}
}

// UnpackT1 reverses PackT1.
func (v *VecK) UnpackT1(buf []byte) {
	for i := 0; i < K; i++ {
		v[i].UnpackT1(buf[i*PolyT1Size:])
	}
}

// PackT0 packs the vector using Poly.PackT0.
func (v *VecK) PackT0(buf []byte) {
	for i := 0; i < K; i++ {
		v[i].PackT0(buf[i*PolyT0Size:])
	}
}

// UnpackT0 reverses PackT0.
func (v *VecK) UnpackT0(buf []byte) {
	for i := 0; i < K; i++ {
		v[i].UnpackT0(buf[i*PolyT0Size:])
	}
}

// PackLeqEta packs the vector using Poly.PackLeqEta.
func (v *VecK) PackLeqEta(buf []byte) {
	for i := 0; i < K; i++ {
		v[i].PackLeqEta(buf[i*PolyLeqEtaSize:])
	}
}

// UnpackLeqEta reverses PackLeqEta.
func (v *VecK) UnpackLeqEta(buf []byte) {
	for i := 0; i < K; i++ {
		v[i].UnpackLeqEta(buf[i*PolyLeqEtaSize:])
	}
}

// PackW1 packs the vector using Poly.PackW1.
func (v *VecK) PackW1(buf []byte) {
	for i := 0; i < K; i++ {
		v[i].PackW1(buf[i*PolyW1Size:])
	}
}
