//go:build dilithium_mode1

package internal

// Medium parameter set.
const (
	Name          = "Dilithium-II"
	K             = 4
	L             = 3
	Eta           = 6
	DoubleEtaBits = 4
	Beta          = 325
	Omega         = 80
)
