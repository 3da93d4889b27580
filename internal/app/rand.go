package app

import "math/rand"

const upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randUpper returns n random uppercase alphanumeric characters. Used for
// dispatch fingerprints and booking reference codes; cosmetic only, no
// uniqueness guarantee.
func randUpper(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = upperAlnum[rand.Intn(len(upperAlnum))]
	}
	return string(buf)
}
