// Package host describes the capabilities the hash bridge consumes from its
// host runtime and provides an implementation of them over IPLD data model
// values.
package host

import (
	"errors"

	"github.com/storacha/go-xxh/core/ipld"
	"github.com/storacha/go-xxh/core/result"
	"github.com/storacha/go-xxh/core/result/failure"
)

// Value is a dynamically typed host value.
type Value = ipld.Node

// ErrBufferTooSmall is returned by [Env.CopyString] when the destination
// cannot hold the encoded text.
var ErrBufferTooSmall = errors.New("buffer too small for string contents")

// Env is the set of host operations available to functions.
type Env interface {
	// IsVector reports whether v is a vector-like indexable container.
	IsVector(v Value) bool
	// IsString reports whether v is a text value.
	IsString(v Value) bool
	// IsNumberOrMarker reports whether v is numeric.
	IsNumberOrMarker(v Value) bool
	// VecSize returns the number of elements in a vector.
	VecSize(v Value) (int, error)
	// VecGet returns the element of a vector at index i.
	VecGet(v Value, i int) (Value, error)
	// ExtractInteger returns the integer value of a number.
	ExtractInteger(v Value) (int64, error)
	// StringSize returns the encoded length of a text value in bytes.
	StringSize(v Value) (int, error)
	// CopyString copies the encoded bytes of a text value into dst and
	// returns the number of bytes copied. It fails with ErrBufferTooSmall
	// when dst is shorter than the text.
	CopyString(v Value, dst []byte) (int, error)
	// MakeString constructs a text value.
	MakeString(s string) Value
}

// Result is the outcome of calling a host function.
type Result = result.Result[Value, failure.IPLDBuilderFailure]

// Impl is the Go implementation of a host function.
type Impl func(env Env, args []Value) Result

// Function is a host callable with an arity and one-line documentation. A
// negative MaxArgs accepts any number of arguments above MinArgs.
type Function struct {
	Name    string
	Doc     string
	MinArgs int
	MaxArgs int
	Impl    Impl
}
