package room

import "math/rand/v2"

const (
	codeLength = 6
	maxRetries = 100
)

var codeAlphabet = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ23456789")

// GenerateCode returns a random session code not present in existing.
func GenerateCode(existing map[string]bool) string {
	for range maxRetries {
		code := randomCode()
		if !existing[code] {
			return code
		}
	}
	// 32^6 codes; only reachable with a near-full table.
	return randomCode()
}

func randomCode() string {
	b := make([]rune, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
