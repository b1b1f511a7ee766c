package xxh

import (
	"github.com/storacha/go-xxh/core/ipld"
	"github.com/storacha/go-xxh/core/result/failure"
	xdm "github.com/storacha/go-xxh/xxh/datamodel"
)

const (
	TypeMismatchName     = "TypeMismatch"
	CapacityExceededName = "CapacityExceeded"
)

// TypeMismatchError is returned when an argument, or an element of a vector
// argument, does not have the expected type.
type TypeMismatchError interface {
	failure.IPLDBuilderFailure
	// Index is the position of the offending vector element, or -1 when the
	// argument itself has the wrong type.
	Index() int
}

type typeMismatchError struct {
	failure.NamedWithStackTrace
	message string
	index   int
}

func (e typeMismatchError) Error() string {
	return e.message
}

func (e typeMismatchError) Index() int {
	return e.index
}

func (e typeMismatchError) ToIPLD() (ipld.Node, error) {
	stack := e.Stack()
	mdl := xdm.HashFailureModel{Name: e.Name(), Message: e.message, Stack: &stack}
	if e.index >= 0 {
		idx := int64(e.index)
		mdl.Index = &idx
	}
	return ipld.WrapWithRecovery(&mdl, xdm.HashFailureType())
}

func newTypeMismatch(message string, index int) TypeMismatchError {
	return typeMismatchError{failure.NamedWithCurrentStackTrace(TypeMismatchName), message, index}
}

// NewNotAVectorError is the failure for a vector entry point called with a
// non-vector argument.
func NewNotAVectorError() TypeMismatchError {
	return newTypeMismatch("not a vector", -1)
}

// NewNotAStringError is the failure for a text entry point called with a
// non-text argument.
func NewNotAStringError() TypeMismatchError {
	return newTypeMismatch("not a string", -1)
}

// NewNotANumberError is the failure for a vector element that is not a number.
func NewNotANumberError(index int) TypeMismatchError {
	return newTypeMismatch("not a number", index)
}

// CapacityExceededError is returned when a text argument is longer than the
// configured limit.
type CapacityExceededError interface {
	failure.IPLDBuilderFailure
	Size() int
	Limit() int
}

type capacityExceededError struct {
	failure.NamedWithStackTrace
	size  int
	limit int
}

func (e capacityExceededError) Error() string {
	return "string too long"
}

func (e capacityExceededError) Size() int {
	return e.size
}

func (e capacityExceededError) Limit() int {
	return e.limit
}

func (e capacityExceededError) ToIPLD() (ipld.Node, error) {
	stack := e.Stack()
	size, limit := int64(e.size), int64(e.limit)
	mdl := xdm.HashFailureModel{
		Name:    e.Name(),
		Message: e.Error(),
		Size:    &size,
		Limit:   &limit,
		Stack:   &stack,
	}
	return ipld.WrapWithRecovery(&mdl, xdm.HashFailureType())
}

func NewCapacityExceededError(size, limit int) CapacityExceededError {
	return capacityExceededError{failure.NamedWithCurrentStackTrace(CapacityExceededName), size, limit}
}
