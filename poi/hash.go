package poi

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// canonicalBits maps -0.0 onto +0.0 so values that compare equal share bits.
func canonicalBits(v float64) uint64 {
	if v == 0 {
		return 0
	}

	return math.Float64bits(v)
}

// hashValues hashes the name followed by the little-endian float64 layout of vs.
func hashValues(name string, vs []float64) uint64 {
	buf := make([]byte, 8+len(name)+8*len(vs))

	binary.LittleEndian.PutUint64(buf, uint64(len(name)))
	n := 8 + copy(buf[8:], name)

	for _, v := range vs {
		binary.LittleEndian.PutUint64(buf[n:], canonicalBits(v))
		n += 8
	}

	return xxhash.Sum64(buf)
}

// hashScalar streams the canonical bits of v ahead of the name, a layout
// distinct from hashValues.
func hashScalar(name string, v float64) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], canonicalBits(v))

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(name)

	return d.Sum64()
}
