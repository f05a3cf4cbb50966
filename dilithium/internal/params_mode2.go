//go:build !dilithium_mode0 && !dilithium_mode1 && !dilithium_mode3

package internal

// Recommended parameter set, the default build.
const (
	Name          = "Dilithium-III"
	K             = 5
	L             = 4
	Eta           = 5
	DoubleEtaBits = 4
	Beta          = 275
	Omega         = 96
)
