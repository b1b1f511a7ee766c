package ipld

import (
	"errors"
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/node/bindnode"
	"github.com/ipld/go-ipld-prime/schema"
)

type Link = ipld.Link
type Node = ipld.Node

// Builder can be represented as an IPLD node.
type Builder interface {
	ToIPLD() (Node, error)
}

// WrapWithRecovery binds a Go value to an IPLD schema type and returns the
// representation node. bindnode panics when the value does not fit the type,
// those panics are returned as errors.
func WrapWithRecovery(ptrVal any, typ schema.Type, opts ...bindnode.Option) (nd Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = fmt.Errorf("wrapping value: %w", v)
			case string:
				err = errors.New(v)
			default:
				err = fmt.Errorf("unknown panic wrapping value: %v", v)
			}
		}
	}()
	nd = bindnode.Wrap(ptrVal, typ, opts...).Representation()
	return
}
