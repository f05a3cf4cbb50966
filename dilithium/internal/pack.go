package internal

// bitWriter packs fixed-width fields LSB-first into a byte slice.  One
// cursor replaces the reference's per-width shift/mask chains while keeping
// the exact bit order on the wire.
type bitWriter struct {
	buf []byte
	acc uint64
	n   uint
	pos int
}

func (w *bitWriter) put(v uint32, bits uint) {
	w.acc |= uint64(v&((1<<bits)-1)) << w.n
	w.n += bits
	for w.n >= 8 {
		w.buf[w.pos] = byte(w.acc)
		w.pos++
		w.acc >>= 8
		w.n -= 8
	}
}

// bitReader is the matching LSB-first cursor for unpacking.
type bitReader struct {
	buf []byte
	acc uint64
	n   uint
	pos int
}

func (r *bitReader) get(bits uint) uint32 {
	for r.n < bits {
		r.acc |= uint64(r.buf[r.pos]) << r.n
		r.pos++
		r.n += 8
	}
	v := uint32(r.acc & ((1 << bits) - 1))
	r.acc >>= bits
	r.n -= bits
	return v
}

// PackLeqEta packs a polynomial sampled by PolyDeriveUniformLeqEta, whose
// coefficients have the form Q+η-t with t ∈ [0, 2η].
func (p *Poly) PackLeqEta(buf []byte) {
	w := bitWriter{buf: buf}
	for i := 0; i < N; i++ {
		w.put(Q+Eta-p[i], DoubleEtaBits)
	}
}

// UnpackLeqEta reverses PackLeqEta.
func (p *Poly) UnpackLeqEta(buf []byte) {
	r := bitReader{buf: buf}
	for i := 0; i < N; i++ {
		p[i] = Q + Eta - r.get(DoubleEtaBits)
	}
}

// PackT0 packs the t₀ low parts, coefficients of the form Q+2ᴰ⁻¹-t.
func (p *Poly) PackT0(buf []byte) {
	w := bitWriter{buf: buf}
	for i := 0; i < N; i++ {
		w.put(Q+(1<<(D-1))-p[i], D)
	}
}

// UnpackT0 reverses PackT0.
func (p *Poly) UnpackT0(buf []byte) {
	r := bitReader{buf: buf}
	for i := 0; i < N; i++ {
		p[i] = Q + (1 << (D - 1)) - r.get(D)
	}
}

// PackT1 packs the t₁ high parts, 9 bits per coefficient.
func (p *Poly) PackT1(buf []byte) {
	w := bitWriter{buf: buf}
	for i := 0; i < N; i++ {
		w.put(p[i], QBits-D)
	}
}

// UnpackT1 reverses PackT1.
func (p *Poly) UnpackT1(buf []byte) {
	r := bitReader{buf: buf}
	for i := 0; i < N; i++ {
		p[i] = r.get(QBits - D)
	}
}

// PackLeGamma1 packs a canonical polynomial with centred norm < γ₁, 20 bits
// per coefficient, mapping each to γ₁-1-a mod Q first.
func (p *Poly) PackLeGamma1(buf []byte) {
	w := bitWriter{buf: buf}
	for i := 0; i < N; i++ {
		t := Gamma1 - 1 - p[i]
		t += uint32(int32(t)>>31) & Q
		w.put(t, QBits-3)
	}
}

// UnpackLeGamma1 reverses PackLeGamma1.
func (p *Poly) UnpackLeGamma1(buf []byte) {
	r := bitReader{buf: buf}
	for i := 0; i < N; i++ {
		t := Gamma1 - 1 - r.get(QBits-3)
		t += uint32(int32(t)>>31) & Q
		p[i] = t
	}
}

// PackW1 packs the 4-bit w₁ high parts, two per byte.
func (p *Poly) PackW1(buf []byte) {
	w := bitWriter{buf: buf}
	for i := 0; i < N; i++ {
		w.put(p[i], 4)
	}
}
