package codec

import (
	"github.com/ipld/go-ipld-prime/datamodel"
)

// Encoder serializes an untyped IPLD node.
type Encoder interface {
	Code() uint64
	Encode(node datamodel.Node) ([]byte, error)
}

// Decoder parses bytes into an untyped IPLD node.
type Decoder interface {
	Code() uint64
	Decode(bytes []byte) (datamodel.Node, error)
}

type Codec interface {
	Encoder
	Decoder
}
