package cbor

import (
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/storacha/go-xxh/core/ipld/codec"
)

const Code = 0x71

type cdc struct{}

func (cdc) Code() uint64 {
	return Code
}

func (cdc) Encode(node datamodel.Node) ([]byte, error) {
	return Encode(node)
}

func (cdc) Decode(b []byte) (datamodel.Node, error) {
	return Decode(b)
}

var Codec codec.Codec = cdc{}

func Encode(node datamodel.Node) ([]byte, error) {
	b, err := ipld.Encode(node, dagcbor.Encode)
	if err != nil {
		return nil, fmt.Errorf("encoding dagcbor: %w", err)
	}
	return b, nil
}

func Decode(b []byte) (datamodel.Node, error) {
	nd, err := ipld.Decode(b, dagcbor.Decode)
	if err != nil {
		return nil, fmt.Errorf("decoding dagcbor: %w", err)
	}
	return nd, nil
}
