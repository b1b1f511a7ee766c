package xxh

import (
	"fmt"

	"github.com/storacha/go-xxh/core/ipld/hash"
	"github.com/storacha/go-xxh/core/ipld/hash/xxh32"
	"github.com/storacha/go-xxh/core/ipld/hash/xxh64"
)

// Width selects the digest size.
type Width int

const (
	Width32 Width = 32
	Width64 Width = 64
)

func (w Width) String() string {
	switch w {
	case Width32:
		return "xxh-32"
	case Width64:
		return "xxh-64"
	default:
		return fmt.Sprintf("Width(%d)", int(w))
	}
}

// HexLen is the length of the hex rendering of a digest of this width.
func (w Width) HexLen() int {
	return int(w) / 4
}

// Sum hashes buf with seed 0.
func (w Width) Sum(buf []byte) uint64 {
	switch w {
	case Width32:
		return uint64(xxh32.Sum32(buf))
	case Width64:
		return xxh64.Sum64(buf)
	default:
		panic(fmt.Sprintf("unsupported digest width %d", int(w)))
	}
}

// Format renders sum as uppercase hex, zero padded to the full width.
func (w Width) Format(sum uint64) string {
	switch w {
	case Width32:
		return fmt.Sprintf("%08X", uint32(sum))
	case Width64:
		return fmt.Sprintf("%016X", sum)
	default:
		panic(fmt.Sprintf("unsupported digest width %d", int(w)))
	}
}

// Hasher returns the multihash hasher for this width.
func (w Width) Hasher() hash.Hasher {
	switch w {
	case Width32:
		return xxh32.Hasher
	case Width64:
		return xxh64.Hasher
	default:
		panic(fmt.Sprintf("unsupported digest width %d", int(w)))
	}
}

// Shape is the expected structure of an entry point's argument.
type Shape int

const (
	// Vector is a sequence of integers, one byte per element.
	Vector Shape = iota
	// Text is a string hashed as its encoded bytes.
	Text
)

func (s Shape) String() string {
	switch s {
	case Vector:
		return "vec"
	case Text:
		return "str"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}
