package table

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Crockford base32, as used by TypeID.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// HandIDLength is the length of an encoded hand ID.
const HandIDLength = 26

// NewHandID returns a sortable UUIDv7 for a hand dealt at now, encoded as
// 26 base32 characters. The random bits come from rng so that seeded runs
// replay with identical IDs for a fixed clock.
func NewHandID(now time.Time, rng *rand.Rand) string {
	var uuid [16]byte

	ms := now.UnixMilli()
	for i := 0; i < 6; i++ {
		uuid[i] = byte(ms >> (40 - 8*i))
	}
	for i := 6; i < 16; i++ {
		uuid[i] = byte(rng.Uint32())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant 10

	return encodeBase32(uuid)
}

// 128 bits are left-padded to 130 so the first character carries 3 bits.
func encodeBase32(data [16]byte) string {
	out := make([]byte, HandIDLength)
	for i := range out {
		var v uint8
		for b := 0; b < 5; b++ {
			bit := i*5 + b - 2
			v <<= 1
			if bit >= 0 && data[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// ValidateHandID checks the length and alphabet of an encoded hand ID.
func ValidateHandID(id string) error {
	if len(id) != HandIDLength {
		return fmt.Errorf("hand ID must be exactly %d characters, got %d", HandIDLength, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("hand ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
