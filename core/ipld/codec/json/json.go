package json

import (
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/storacha/go-xxh/core/ipld/codec"
)

const Code = 0x0129

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
	b, err := ipld.Encode(node, dagjson.Encode)
	if err != nil {
		return nil, fmt.Errorf("encoding dagjson: %w", err)
	}
	return b, nil
}

func Decode(b []byte) (datamodel.Node, error) {
	nd, err := ipld.Decode(b, dagjson.Decode)
	if err != nil {
		return nil, fmt.Errorf("decoding dagjson: %w", err)
	}
	return nd, nil
}
