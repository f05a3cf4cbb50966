package internal

// Mat is the K×L public matrix A, kept in the NTT domain.
type Mat [K]VecL

// Derive expands ρ into the matrix, one independent SHAKE128 draw per entry
// keyed on the entry coordinates.
func (m *Mat) Derive(rho *[SeedSize]byte) {
	for i := 0; i < K; i++ {
		for j := 0; j < L; j++ {
			PolyDeriveUniform(&m[i][j], rho, uint8(i+(j<<4)))
		}
	}
}
