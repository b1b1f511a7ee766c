package helpers

import (
	crand "crypto/rand"
	"fmt"

	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

// Must takes return values from a function and returns the non-error one. If
// the error value is non-nil then it panics.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func RandomBytes(size int) []byte {
	bytes := make([]byte, size)
	_, _ = crand.Read(bytes)
	return bytes
}

// List builds an IPLD list node. Supported element types are int, int64,
// float64, string, bool, []byte, nil and datamodel.Node.
func List(values ...any) datamodel.Node {
	return Must(qp.BuildList(basicnode.Prototype.Any, int64(len(values)), func(la datamodel.ListAssembler) {
		for _, v := range values {
			qp.ListEntry(la, assemble(v))
		}
	}))
}

// ByteList builds an IPLD list of integers, one element per byte.
func ByteList(b []byte) datamodel.Node {
	values := make([]any, 0, len(b))
	for _, v := range b {
		values = append(values, int(v))
	}
	return List(values...)
}

func assemble(v any) qp.Assemble {
	switch v := v.(type) {
	case int:
		return qp.Int(int64(v))
	case int64:
		return qp.Int(v)
	case float64:
		return qp.Float(v)
	case string:
		return qp.String(v)
	case bool:
		return qp.Bool(v)
	case []byte:
		return qp.Bytes(v)
	case nil:
		return qp.Null()
	case datamodel.Node:
		return qp.Node(v)
	default:
		panic(fmt.Sprintf("unsupported list element type %T", v))
	}
}
