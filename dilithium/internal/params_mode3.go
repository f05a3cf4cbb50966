//go:build dilithium_mode3

package internal

// High security parameter set.
const (
	Name          = "Dilithium-IV"
	K             = 6
	L             = 5
	Eta           = 3
	DoubleEtaBits = 3
	Beta          = 175
	Omega         = 120
)
