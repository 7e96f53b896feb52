package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws from crypto/rand
// This is the default source for live tables where no seed was configured
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// A failure to read from the system's entropy source is not recoverable, so it panics
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("could not read random number: %v", err))
	}

	return int(b.Int64())
}
