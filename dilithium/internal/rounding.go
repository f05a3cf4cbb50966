package internal

// power2round splits a into its low D bits and high bits, a = a1·2ᴰ + a0'
// with a0' ∈ (-2ᴰ⁻¹, 2ᴰ⁻¹].  The low part is returned offset by Q so it
// stays unsigned: a0 = Q + a0'.
func power2round(a uint32) (a0, a1 uint32) {
	t := int32(a & ((1 << D) - 1))
	t -= (1 << (D - 1)) + 1
	t += (t >> 31) & (1 << D)
	t -= (1 << (D - 1)) - 1
	return Q + uint32(t), (a - uint32(t)) >> D
}

// decompose splits a into a centred low part and a high part a1 ∈ [0, 16)
// with respect to α = 2γ₂, folding the top interval onto index 0.  The low
// part is returned offset by Q.
func decompose(a uint32) (a0, a1 uint32) {
	t := int32(a & 0x7ffff)
	t += int32((a >> 19) << 9)
	t -= Alpha/2 + 1
	t += (t >> 31) & Alpha
	t -= Alpha/2 - 1
	a -= uint32(t)

	u := int32(a) - 1
	u >>= 31
	a = (a >> 19) + 1
	a -= uint32(u & 1)

	return Q + uint32(t) - (a >> 4), a & 0xf
}

// makeHint returns 1 iff the high parts of a and b differ.
func makeHint(a, b uint32) uint32 {
	_, x := decompose(a)
	_, y := decompose(b)
	if x != y {
		return 1
	}
	return 0
}

// useHint reconstructs the high part of the unperturbed value from its
// perturbed counterpart a and a hint bit.  The correction direction hinges
// on a0 > Q rather than α/2; this exact test is wire-compatible behaviour
// and must not be "simplified".
func useHint(a, hint uint32) uint32 {
	a0, a1 := decompose(a)
	if hint == 0 {
		return a1
	}
	if a0 > Q {
		return (a1 + 1) & 0xf
	}
	return (a1 - 1) & 0xf
}
