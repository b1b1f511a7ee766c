package host

import (
	"sync"
	"testing"

	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/storacha/go-xxh/core/result"
	"github.com/storacha/go-xxh/core/result/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity() *Function {
	return &Function{
		Name:    "identity",
		Doc:     "Return the argument.",
		MinArgs: 1,
		MaxArgs: 1,
		Impl: func(env Env, args []Value) Result {
			return result.Ok[Value, failure.IPLDBuilderFailure](args[0])
		},
	}
}

func TestNamespaceBind(t *testing.T) {
	ns := NewNamespace()
	sym := ns.Intern("identity")
	require.Equal(t, sym, ns.Intern("identity"))

	fn := identity()
	ns.Bind(sym, fn)

	got, ok := ns.Lookup(sym)
	require.True(t, ok)
	require.Same(t, fn, got)
	require.Equal(t, []Symbol{"identity"}, ns.Functions())

	t.Run("unbind requires the same function", func(t *testing.T) {
		require.False(t, ns.Unbind(sym, identity()))
		_, ok := ns.Lookup(sym)
		require.True(t, ok)

		require.True(t, ns.Unbind(sym, fn))
		_, ok = ns.Lookup(sym)
		require.False(t, ok)
		require.False(t, ns.Unbind(sym, fn))
	})
}

func TestNamespaceFeatures(t *testing.T) {
	ns := NewNamespace()
	feature := ns.Intern("xxh")
	require.False(t, ns.Provided(feature))
	ns.Provide(feature)
	ns.Provide(feature)
	require.True(t, ns.Provided(feature))
	ns.Withdraw(feature)
	require.False(t, ns.Provided(feature))
}

func TestNamespaceCall(t *testing.T) {
	ns := NewNamespace()
	ns.Bind(ns.Intern("identity"), identity())
	e := NewEnv()

	t.Run("ok", func(t *testing.T) {
		res := ns.Call(e, "identity", basicnode.NewString("hi"))
		require.Nil(t, res.Error())
		s, err := res.Ok().AsString()
		require.NoError(t, err)
		require.Equal(t, "hi", s)
	})

	t.Run("void function", func(t *testing.T) {
		res := ns.Call(e, "missing", basicnode.NewString("hi"))
		require.NotNil(t, res.Error())
		require.Equal(t, "VoidFunction", res.Error().Name())

		vf, ok := res.Error().(VoidFunctionError)
		require.True(t, ok)
		require.Equal(t, "missing", vf.Function())
	})

	t.Run("arity mismatch", func(t *testing.T) {
		res := ns.Call(e, "identity")
		require.NotNil(t, res.Error())
		require.Equal(t, "ArityMismatch", res.Error().Name())
		require.Equal(t, "identity takes 1 arguments, got 0", res.Error().Error())

		res = ns.Call(e, "identity", basicnode.NewInt(1), basicnode.NewInt(2))
		am, ok := res.Error().(ArityMismatchError)
		require.True(t, ok)
		require.Equal(t, 2, am.Got())

		nd, err := res.Error().ToIPLD()
		require.NoError(t, err)
		name, err := nd.LookupByString("name")
		require.NoError(t, err)
		s, err := name.AsString()
		require.NoError(t, err)
		require.Equal(t, "ArityMismatch", s)
	})
}

func TestNamespaceConcurrentCall(t *testing.T) {
	ns := NewNamespace()
	sym := ns.Intern("identity")
	ns.Bind(sym, identity())
	e := NewEnv()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := ns.Call(e, sym, basicnode.NewInt(int64(i)))
			assert.Nil(t, res.Error())
			ns.Provided(sym)
			ns.Functions()
		}(i)
	}
	wg.Wait()
}
