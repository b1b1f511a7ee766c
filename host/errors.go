package host

import (
	"fmt"

	"github.com/storacha/go-xxh/core/ipld"
	"github.com/storacha/go-xxh/core/result/failure"
	fdm "github.com/storacha/go-xxh/core/result/failure/datamodel"
)

type VoidFunctionError interface {
	failure.IPLDBuilderFailure
	Function() string
}

type voidFunctionError struct {
	failure.NamedWithStackTrace
	name string
}

func (v voidFunctionError) Function() string {
	return v.name
}

func (v voidFunctionError) Error() string {
	return fmt.Sprintf("function %q is not bound", v.name)
}

func (v voidFunctionError) ToIPLD() (ipld.Node, error) {
	return toIPLD(v)
}

func NewVoidFunctionError(name string) VoidFunctionError {
	return voidFunctionError{failure.NamedWithCurrentStackTrace("VoidFunction"), name}
}

type ArityMismatchError interface {
	failure.IPLDBuilderFailure
	Function() string
	Got() int
}

type arityMismatchError struct {
	failure.NamedWithStackTrace
	fn  *Function
	got int
}

func (a arityMismatchError) Function() string {
	return a.fn.Name
}

func (a arityMismatchError) Got() int {
	return a.got
}

func (a arityMismatchError) Error() string {
	want := fmt.Sprintf("%d", a.fn.MinArgs)
	if a.fn.MaxArgs != a.fn.MinArgs {
		want = fmt.Sprintf("%d to %d", a.fn.MinArgs, a.fn.MaxArgs)
	}
	return fmt.Sprintf("%s takes %s arguments, got %d", a.fn.Name, want, a.got)
}

func (a arityMismatchError) ToIPLD() (ipld.Node, error) {
	return toIPLD(a)
}

func NewArityMismatchError(fn *Function, got int) ArityMismatchError {
	return arityMismatchError{failure.NamedWithCurrentStackTrace("ArityMismatch"), fn, got}
}

func toIPLD(f interface {
	failure.Failure
	failure.WithStackTrace
}) (ipld.Node, error) {
	name := f.Name()
	stack := f.Stack()
	mdl := fdm.FailureModel{Name: &name, Message: f.Error(), Stack: &stack}
	return ipld.WrapWithRecovery(&mdl, fdm.FailureType())
}
