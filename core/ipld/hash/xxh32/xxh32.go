package xxh32

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-xxh/core/ipld/hash"
)

// xxh-32
const Code = uint64(multicodec.Xxh32)

// xxh-32 has a 4-byte sum
const Size = 4

// Sum32 is XXH32 with seed 0.
func Sum32(b []byte) uint32 {
	return xxhash.Checksum32S(b, 0)
}

type hasher struct{}

func (hasher) Code() uint64 {
	return Code
}

func (hasher) Size() uint64 {
	return Size
}

func (hasher) Sum(b []byte) (hash.Digest, error) {
	sum := binary.BigEndian.AppendUint32(make([]byte, 0, Size), Sum32(b))
	return hash.Encode(Code, sum)
}

var Hasher = hasher{}
