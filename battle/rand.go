package battle

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// CreateRandomStateSeed builds a crypto-seeded PCG for non-reproducible
// battles. Tests and the RL loop pass NewSeed instead.
func CreateRandomStateSeed() rand.PCG {
	var randBytes [16]byte
	_, err := cryptoRand.Read(randBytes[:])
	if err != nil {
		panic(err)
	}

	return *rand.NewPCG(binary.LittleEndian.Uint64(randBytes[0:8]), binary.LittleEndian.Uint64(randBytes[8:]))
}

// NewSeed builds a fixed PCG seed. Two battles started from the same seed
// and fed the same actions play out identically.
func NewSeed(seed1 uint64, seed2 uint64) rand.PCG {
	return *rand.NewPCG(seed1, seed2)
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}
