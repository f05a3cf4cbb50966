package internal

// montReduce returns a·R⁻¹ mod Q in [0, 2Q) for any a ≤ Q·2³².
func montReduce(a uint64) uint32 {
	t := (a * Qinv) & 0xffffffff
	t *= Q
	t += a
	return uint32(t >> 32)
}

// reduce32 partially reduces a below 2²³ + 2¹³, exploiting Q = 2²³ - 2¹³ + 1.
func reduce32(a uint32) uint32 {
	t := a & 0x7fffff
	a >>= 23
	return t + (a << 13) - a
}

// csubq subtracts Q once if a ≥ Q, branchless.
func csubq(a uint32) uint32 {
	a -= Q
	a += uint32(int32(a)>>31) & Q
	return a
}

// freeze returns the canonical representative of a in [0, Q).
func freeze(a uint32) uint32 {
	return csubq(reduce32(a))
}
