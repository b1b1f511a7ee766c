package host

import (
	"fmt"

	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

type env struct{}

// NewEnv returns an Env over IPLD data model values. Lists are vectors,
// strings are text and ints and floats are numbers.
func NewEnv() Env {
	return env{}
}

func (env) IsVector(v Value) bool {
	return v != nil && v.Kind() == datamodel.Kind_List
}

func (env) IsString(v Value) bool {
	return v != nil && v.Kind() == datamodel.Kind_String
}

func (env) IsNumberOrMarker(v Value) bool {
	if v == nil {
		return false
	}
	k := v.Kind()
	return k == datamodel.Kind_Int || k == datamodel.Kind_Float
}

func (env) VecSize(v Value) (int, error) {
	if v == nil || v.Kind() != datamodel.Kind_List {
		return 0, fmt.Errorf("vector size: value is not a list")
	}
	return int(v.Length()), nil
}

func (env) VecGet(v Value, i int) (Value, error) {
	el, err := v.LookupByIndex(int64(i))
	if err != nil {
		return nil, fmt.Errorf("vector element %d: %w", i, err)
	}
	return el, nil
}

// ExtractInteger only accepts ints. Floats are numbers but have no integer
// value, so they are an error.
func (env) ExtractInteger(v Value) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("extract integer: nil value")
	}
	switch v.Kind() {
	case datamodel.Kind_Int:
		return v.AsInt()
	case datamodel.Kind_Float:
		f, err := v.AsFloat()
		if err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("extract integer: float %v is not an integer", f)
	default:
		return 0, fmt.Errorf("extract integer: value of kind %s is not a number", v.Kind())
	}
}

func (env) StringSize(v Value) (int, error) {
	s, err := v.AsString()
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

func (env) CopyString(v Value, dst []byte) (int, error) {
	s, err := v.AsString()
	if err != nil {
		return 0, err
	}
	if len(s) > len(dst) {
		return 0, ErrBufferTooSmall
	}
	return copy(dst, s), nil
}

func (env) MakeString(s string) Value {
	return basicnode.NewString(s)
}
