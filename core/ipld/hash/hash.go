package hash

import (
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

type Hasher interface {
	Code() uint64
	Size() uint64
	Sum(bytes []byte) (Digest, error)
}

type Digest interface {
	// Code is the multicodec code of the hash function.
	Code() uint64
	// Size is the length of the raw digest in bytes.
	Size() uint64
	// Digest is the raw digest.
	Digest() []byte
	// Bytes is the multihash encoding of the digest.
	Bytes() []byte
}

type digest struct {
	code   uint64
	size   uint64
	digest []byte
	bytes  []byte
}

func (d *digest) Bytes() []byte {
	return d.bytes
}

func (d *digest) Code() uint64 {
	return d.code
}

func (d *digest) Digest() []byte {
	return d.digest
}

func (d *digest) Size() uint64 {
	return d.size
}

func NewDigest(code uint64, size uint64, digst []byte, bytes []byte) Digest {
	return &digest{code, size, digst, bytes}
}

// Encode builds a Digest from a raw digest, computing the multihash bytes.
func Encode(code uint64, digst []byte) (Digest, error) {
	b, err := multihash.Encode(digst, code)
	if err != nil {
		return nil, fmt.Errorf("encoding multihash: %w", err)
	}
	return NewDigest(code, uint64(len(digst)), digst, b), nil
}

// Decode parses multihash bytes back into a Digest.
func Decode(bytes []byte) (Digest, error) {
	code, n, err := varint.FromUvarint(bytes)
	if err != nil {
		return nil, fmt.Errorf("reading multihash code: %w", err)
	}
	size, m, err := varint.FromUvarint(bytes[n:])
	if err != nil {
		return nil, fmt.Errorf("reading multihash length: %w", err)
	}
	digst := bytes[n+m:]
	if uint64(len(digst)) != size {
		return nil, errors.New("multihash length does not match digest")
	}
	return NewDigest(code, size, digst, bytes), nil
}

// Link returns a CIDv1 link with the raw codec addressing the hashed bytes.
func Link(d Digest) cidlink.Link {
	return cidlink.Link{Cid: cid.NewCidV1(cid.Raw, multihash.Multihash(d.Bytes()))}
}
