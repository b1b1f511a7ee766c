package datamodel

import (
	// to use go:embed
	_ "embed"
	"fmt"
	"sync"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/schema"
)

//go:embed failure.ipldsch
var failureSchema []byte

// FailureModel is a generic failure
type FailureModel struct {
	Name    *string
	Message string
	Stack   *string
}

func (f FailureModel) Error() string {
	return f.Message
}

var (
	once sync.Once
	ts   *schema.TypeSystem
	err  error
)

func mustLoadSchema() *schema.TypeSystem {
	once.Do(func() {
		ts, err = ipld.LoadSchemaBytes(failureSchema)
	})
	if err != nil {
		panic(fmt.Errorf("failed to load IPLD schema: %s", err))
	}
	return ts
}

// FailureType is the schema type of [FailureModel].
func FailureType() schema.Type {
	return mustLoadSchema().TypeByName("Failure")
}

func Schema() []byte {
	return failureSchema
}

// Bind binds the IPLD node to a [FailureModel]. This works around IPLD
// requiring data to match the schema _exactly_.
//
// Note: the IPLD node is expected to be a map kind, with a "message" key and
// optionally a "name" and "stack" (all values strings). Missing or mistyped
// entries are left empty.
func Bind(n ipld.Node) FailureModel {
	f := FailureModel{}
	if s, ok := lookupString(n, "name"); ok {
		f.Name = &s
	}
	if s, ok := lookupString(n, "message"); ok {
		f.Message = s
	}
	if s, ok := lookupString(n, "stack"); ok {
		f.Stack = &s
	}
	return f
}

func lookupString(n ipld.Node, key string) (string, bool) {
	v, err := n.LookupByString(key)
	if err != nil {
		return "", false
	}
	s, err := v.AsString()
	if err != nil {
		return "", false
	}
	return s, true
}
