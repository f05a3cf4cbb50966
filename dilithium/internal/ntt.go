package internal

// NTT computes the in-place forward NTT of p, an 8-level
// decimation-in-frequency butterfly network.  Coefficients of the result are
// not reduced and may grow towards 4Q; callers reduce where canonical form
// matters.
func (p *Poly) NTT() {
	k := 1
	for l := N / 2; l > 0; l >>= 1 {
		for start := 0; start < N; start += 2 * l {
			zeta := uint64(zetas[k])
			k++
			for j := start; j < start+l; j++ {
				t := montReduce(zeta * uint64(p[j+l]))
				p[j+l] = p[j] + 2*Q - t
				p[j] += t
			}
		}
	}
}

// InvNTT computes the in-place inverse NTT of p.  The final pass multiplies
// by a constant that strips the Montgomery factor and the 1/256
// normalisation in a single reduction.  Input coefficients must be below 2Q.
func (p *Poly) InvNTT() {
	// f = R²/256 mod Q, expressed the way the reference derives it.
	const f = ((Mont * Mont % Q) * (Q - 1) % Q) * ((Q - 1) >> 8) % Q

	k := 1
	for l := 1; l < N; l <<= 1 {
		for start := 0; start < N; start += 2 * l {
			zeta := uint64(zetasInv[k])
			k++
			for j := start; j < start+l; j++ {
				t := p[j]
				p[j] = t + p[j+l]
				p[j+l] = t + 256*Q - p[j+l]
				p[j+l] = montReduce(zeta * uint64(p[j+l]))
			}
		}
	}

	for j := 0; j < N; j++ {
		p[j] = montReduce(f * uint64(p[j]))
	}
}
