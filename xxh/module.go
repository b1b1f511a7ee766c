package xxh

import (
	"sync"

	"github.com/storacha/go-xxh/core/result"
	"github.com/storacha/go-xxh/host"
)

// Entry point names bound by [Load].
const (
	HashVec64Name = "hash-vec-64"
	HashStr64Name = "hash-str-64"
	HashVec32Name = "hash-vec-32"
	HashStr32Name = "hash-str-32"
)

// Short names bound alongside the entry points.
const (
	Xxh64Name    = "xxh-64"
	Xxh64StrName = "xxh-64-str"
	Xxh32Name    = "xxh-32"
	Xxh32StrName = "xxh-32-str"
)

type entryPoint struct {
	name  string
	shape Shape
	width Width
	doc   string
}

var entryPoints = []entryPoint{
	{HashVec64Name, Vector, Width64, "Return a hex string representing the 64-bit hash of a vector of byte values."},
	{HashStr64Name, Text, Width64, "Return a hex string representing the 64-bit hash of a string."},
	{HashVec32Name, Vector, Width32, "Return a hex string representing the 32-bit hash of a vector of byte values."},
	{HashStr32Name, Text, Width32, "Return a hex string representing the 32-bit hash of a string."},
	{Xxh64Name, Vector, Width64, "Same as hash-vec-64."},
	{Xxh64StrName, Text, Width64, "Same as hash-str-64."},
	{Xxh32Name, Vector, Width32, "Same as hash-vec-32."},
	{Xxh32StrName, Text, Width32, "Same as hash-str-32."},
}

// EntryPoint returns the shape and width served by a named entry point.
func EntryPoint(name string) (Shape, Width, bool) {
	for _, ep := range entryPoints {
		if ep.name == name {
			return ep.shape, ep.width, true
		}
	}
	return 0, 0, false
}

// Module is a handle to the functions bound into a namespace by [Load].
type Module struct {
	ns      host.Namespace
	bridge  *Bridge
	feature host.Symbol
	bound   map[host.Symbol]*host.Function
	once    sync.Once
}

// Load binds the hash entry points and their short names into ns and
// provides the module feature. Loading into a namespace that already provides the feature
// rebinds the entry points, so repeated loads leave the namespace in the
// same state.
func Load(ns host.Namespace, options ...Option) (*Module, error) {
	cfg, err := newConfig(options...)
	if err != nil {
		return nil, err
	}
	m := &Module{
		ns:      ns,
		bridge:  newBridge(cfg),
		feature: ns.Intern(cfg.feature),
		bound:   make(map[host.Symbol]*host.Function, len(entryPoints)),
	}
	for _, ep := range entryPoints {
		fn := m.function(ep)
		sym := ns.Intern(ep.name)
		ns.Bind(sym, fn)
		m.bound[sym] = fn
	}
	ns.Provide(m.feature)
	log.Infow("loaded module", "feature", m.feature, "functions", len(m.bound))
	return m, nil
}

func (m *Module) function(ep entryPoint) *host.Function {
	return &host.Function{
		Name:    ep.name,
		Doc:     ep.doc,
		MinArgs: 1,
		MaxArgs: 1,
		Impl: func(env host.Env, args []host.Value) host.Result {
			res := m.bridge.Hash(env, args[0], ep.shape, ep.width)
			return result.MapOk(res, func(hex string) host.Value {
				return env.MakeString(hex)
			})
		},
	}
}

// Bridge is the bridge serving the module's entry points.
func (m *Module) Bridge() *Bridge {
	return m.bridge
}

// Feature is the feature symbol the module provides.
func (m *Module) Feature() host.Symbol {
	return m.feature
}

// Functions lists the symbols bound by the module.
func (m *Module) Functions() []host.Symbol {
	syms := make([]host.Symbol, 0, len(entryPoints))
	for _, ep := range entryPoints {
		syms = append(syms, host.Symbol(ep.name))
	}
	return syms
}

// Close unbinds the entry points that are still bound to this module and
// withdraws the feature. When a later Load has replaced any of the bindings,
// those bindings and the feature are left in place. Close is safe to call
// more than once.
func (m *Module) Close() error {
	m.once.Do(func() {
		owned := true
		for sym, fn := range m.bound {
			if !m.ns.Unbind(sym, fn) {
				owned = false
			}
		}
		if owned {
			m.ns.Withdraw(m.feature)
		}
		log.Infow("closed module", "feature", m.feature)
	})
	return nil
}
