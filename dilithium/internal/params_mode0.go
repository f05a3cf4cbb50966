//go:build dilithium_mode0

package internal

// Weak parameter set.
const (
	Name          = "Dilithium-I"
	K             = 3
	L             = 2
	Eta           = 7
	DoubleEtaBits = 4
	Beta          = 375
	Omega         = 64
)
