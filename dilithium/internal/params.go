package internal

// Parameters shared by every mode.  The mode-dependent set (K, L, Eta,
// DoubleEtaBits, Beta, Omega) lives in the params_mode*.go files and is
// selected by build tag; exactly one of those files is ever compiled in.
const (
	// Size of ρ, ρ' and the signing key seed.
	SeedSize = 32

	// Size of tr and μ, the collision resistant hash outputs.
	CRHSize = 48

	N     = 256
	Q     = 8380417 // 2²³ - 2¹³ + 1
	QBits = 23
	D     = 14

	Gamma1 = (Q - 1) / 16
	Gamma2 = Gamma1 / 2

	// α = 2γ₂, the decompose() interval width.
	Alpha = 2 * Gamma2

	// Montgomery constants: R = 2³² mod Q and -Q⁻¹ mod 2³².
	Mont = 4193792
	Qinv = 4236238847
)

// Sizes of the packed polynomial representations.
const (
	// Size of a packed polynomial with coefficients in [0, 2ᵈ').
	PolyT1Size = (N * (QBits - D)) / 8

	// Size of a packed polynomial of the t₀ low bits.
	PolyT0Size = (N * D) / 8

	// Size of a packed polynomial of norm ≤ η.
	PolyLeqEtaSize = (N * DoubleEtaBits) / 8

	// Size of a packed polynomial of norm < γ₁ such as z.
	PolyLeGamma1Size = (N * (QBits - 3)) / 8

	// Size of a packed w₁ polynomial (4-bit high parts).
	PolyW1Size = (N * 4) / 8
)

// Sizes of the wire formats.
const (
	PublicKeySize  = SeedSize + K*PolyT1Size
	PrivateKeySize = 2*SeedSize + CRHSize + (L+K)*PolyLeqEtaSize + K*PolyT0Size
	SignatureSize  = L*PolyLeGamma1Size + (Omega + K) + (N/8 + 8)
)
