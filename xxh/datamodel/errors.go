package datamodel

import (
	// to use go:embed
	_ "embed"
	"fmt"
	"sync"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/schema"
)

//go:embed errors.ipldsch
var errorsSchema []byte

// HashFailureModel is the IPLD representation of a bridge failure. Index is
// set for element failures, Size and Limit for capacity failures.
type HashFailureModel struct {
	Name    string
	Message string
	Index   *int64
	Size    *int64
	Limit   *int64
	Stack   *string
}

var (
	once sync.Once
	ts   *schema.TypeSystem
	err  error
)

func mustLoadSchema() *schema.TypeSystem {
	once.Do(func() {
		ts, err = ipld.LoadSchemaBytes(errorsSchema)
	})
	if err != nil {
		panic(fmt.Errorf("failed to load IPLD schema: %s", err))
	}
	return ts
}

func HashFailureType() schema.Type {
	return mustLoadSchema().TypeByName("HashFailure")
}
