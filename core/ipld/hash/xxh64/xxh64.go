package xxh64

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-xxh/core/ipld/hash"
)

// xxh-64
const Code = uint64(multicodec.Xxh64)

// xxh-64 has an 8-byte sum
const Size = 8

// Sum64 is XXH64 with seed 0.
func Sum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

type hasher struct{}

func (hasher) Code() uint64 {
	return Code
}

func (hasher) Size() uint64 {
	return Size
}

func (hasher) Sum(b []byte) (hash.Digest, error) {
	sum := binary.BigEndian.AppendUint64(make([]byte, 0, Size), Sum64(b))
	return hash.Encode(Code, sum)
}

var Hasher = hasher{}
