package xxh

import (
	"testing"

	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/storacha/go-xxh/host"
	"github.com/storacha/go-xxh/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ns := host.NewNamespace()
	env := host.NewEnv()

	m, err := Load(ns)
	require.NoError(t, err)
	require.True(t, ns.Provided(DefaultFeature))
	require.Equal(t, host.Symbol(DefaultFeature), m.Feature())
	require.ElementsMatch(t, m.Functions(), ns.Functions())

	require.Len(t, ns.Functions(), 8)
	for _, name := range []string{
		HashVec64Name, HashStr64Name, HashVec32Name, HashStr32Name,
		Xxh64Name, Xxh64StrName, Xxh32Name, Xxh32StrName,
	} {
		fn, ok := ns.Lookup(host.Symbol(name))
		require.True(t, ok, name)
		require.Equal(t, name, fn.Name)
		require.NotEmpty(t, fn.Doc)
		require.Equal(t, 1, fn.MinArgs)
		require.Equal(t, 1, fn.MaxArgs)
	}

	t.Run("call", func(t *testing.T) {
		res := ns.Call(env, HashVec64Name, helpers.List())
		require.Nil(t, res.Error())
		require.Equal(t, "EF46DB3751D8E999", helpers.Must(res.Ok().AsString()))

		res = ns.Call(env, HashStr32Name, basicnode.NewString("abc"))
		require.Nil(t, res.Error())
		require.Equal(t, "32D153FF", helpers.Must(res.Ok().AsString()))

		res = ns.Call(env, HashStr64Name, basicnode.NewString("hi"))
		require.Nil(t, res.Error())
		str := helpers.Must(res.Ok().AsString())
		res = ns.Call(env, HashVec64Name, helpers.List(104, 105))
		require.Nil(t, res.Error())
		require.Equal(t, str, helpers.Must(res.Ok().AsString()))
	})

	t.Run("short names", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			arg  host.Value
			hex  string
		}{
			{Xxh64Name, helpers.List(104, 105), "EA8842E9EA2638FA"},
			{Xxh64StrName, basicnode.NewString("hi"), "EA8842E9EA2638FA"},
			{Xxh32Name, helpers.List(104, 105), "DAA7A564"},
			{Xxh32StrName, basicnode.NewString("hi"), "DAA7A564"},
		} {
			res := ns.Call(env, host.Symbol(tc.name), tc.arg)
			require.Nil(t, res.Error(), tc.name)
			require.Equal(t, tc.hex, helpers.Must(res.Ok().AsString()), tc.name)
		}

		res := ns.Call(env, Xxh32Name, basicnode.NewString("hi"))
		require.Equal(t, TypeMismatchName, res.Error().Name())
	})

	t.Run("failures", func(t *testing.T) {
		res := ns.Call(env, HashVec32Name, basicnode.NewString("hi"))
		require.NotNil(t, res.Error())
		require.Nil(t, res.Ok())
		require.Equal(t, TypeMismatchName, res.Error().Name())

		res = ns.Call(env, HashStr64Name)
		require.NotNil(t, res.Error())
		require.Equal(t, "ArityMismatch", res.Error().Name())
	})

	require.NoError(t, m.Close())
	require.False(t, ns.Provided(DefaultFeature))
	require.Empty(t, ns.Functions())

	res := ns.Call(env, HashVec64Name, helpers.List())
	require.Equal(t, "VoidFunction", res.Error().Name())

	require.NoError(t, m.Close())
}

func TestLoadIdempotent(t *testing.T) {
	ns := host.NewNamespace()

	first, err := Load(ns)
	require.NoError(t, err)
	second, err := Load(ns)
	require.NoError(t, err)
	require.Len(t, ns.Functions(), 8)
	require.True(t, ns.Provided(DefaultFeature))

	// the second load owns the bindings now
	require.NoError(t, first.Close())
	require.Len(t, ns.Functions(), 8)
	require.True(t, ns.Provided(DefaultFeature))

	require.NoError(t, second.Close())
	require.Empty(t, ns.Functions())
	require.False(t, ns.Provided(DefaultFeature))
}

func TestLoadOptions(t *testing.T) {
	ns := host.NewNamespace()
	env := host.NewEnv()

	m, err := Load(ns, WithFeature("xxhash"), WithTextLimit(2))
	require.NoError(t, err)
	defer m.Close()

	require.True(t, ns.Provided("xxhash"))
	require.False(t, ns.Provided(DefaultFeature))
	require.Equal(t, 2, m.Bridge().TextLimit())

	res := ns.Call(env, HashStr64Name, basicnode.NewString("abc"))
	require.Equal(t, CapacityExceededName, res.Error().Name())

	_, err = Load(ns, WithFeature(""))
	require.Error(t, err)
	_, err = Load(ns, WithAllocator(nil))
	require.Error(t, err)
}

func TestEntryPoint(t *testing.T) {
	shape, width, ok := EntryPoint(HashStr32Name)
	require.True(t, ok)
	require.Equal(t, Text, shape)
	require.Equal(t, Width32, width)

	shape, width, ok = EntryPoint(HashVec64Name)
	require.True(t, ok)
	require.Equal(t, Vector, shape)
	require.Equal(t, Width64, width)

	shape, width, ok = EntryPoint(Xxh64StrName)
	require.True(t, ok)
	require.Equal(t, Text, shape)
	require.Equal(t, Width64, width)

	_, _, ok = EntryPoint("xxh-128")
	require.False(t, ok)
}
