package utils

import (
	"crypto/rand"
	"log"
	"math/big"
)

const refCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomRef generates a secure random reference code of the given length,
// drawn from uppercase alphanumerics. Used for confirmation numbers and
// generated document ids.
func RandomRef(length int) string {
	out := make([]byte, length)
	max := big.NewInt(int64(len(refCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken.
			log.Fatalf("Failed to generate random reference: %v", err)
		}
		out[i] = refCharset[n.Int64()]
	}
	return string(out)
}
