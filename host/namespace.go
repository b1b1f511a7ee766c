package host

import (
	"sort"
	"sync"

	logging "github.com/ipfs/go-log/v2"
	"github.com/storacha/go-xxh/core/result"
	"github.com/storacha/go-xxh/core/result/failure"
)

var log = logging.Logger("xxh/host")

// Symbol is an interned name.
type Symbol string

// Namespace binds symbols to functions and tracks provided features. A
// Namespace is safe for concurrent use.
type Namespace interface {
	// Intern returns the symbol for a name.
	Intern(name string) Symbol
	// Bind sets the function cell of sym, replacing any previous binding.
	Bind(sym Symbol, fn *Function)
	// Unbind clears the function cell of sym if it is still bound to fn and
	// reports whether it did.
	Unbind(sym Symbol, fn *Function) bool
	// Lookup returns the function bound to sym.
	Lookup(sym Symbol) (*Function, bool)
	// Functions lists the bound symbols in sorted order.
	Functions() []Symbol
	// Provide announces a loaded feature.
	Provide(feature Symbol)
	// Withdraw removes a feature announcement.
	Withdraw(feature Symbol)
	// Provided reports whether a feature has been announced.
	Provided(feature Symbol) bool
	// Call invokes the function bound to sym.
	Call(env Env, sym Symbol, args ...Value) Result
}

type namespace struct {
	mu        sync.RWMutex
	symbols   map[string]Symbol
	functions map[Symbol]*Function
	features  map[Symbol]struct{}
}

func NewNamespace() Namespace {
	return &namespace{
		symbols:   map[string]Symbol{},
		functions: map[Symbol]*Function{},
		features:  map[Symbol]struct{}{},
	}
}

func (ns *namespace) Intern(name string) Symbol {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if sym, ok := ns.symbols[name]; ok {
		return sym
	}
	sym := Symbol(name)
	ns.symbols[name] = sym
	return sym
}

func (ns *namespace) Bind(sym Symbol, fn *Function) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.functions[sym] = fn
	log.Debugw("bound function", "symbol", sym)
}

func (ns *namespace) Unbind(sym Symbol, fn *Function) bool {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if cur, ok := ns.functions[sym]; !ok || cur != fn {
		return false
	}
	delete(ns.functions, sym)
	log.Debugw("unbound function", "symbol", sym)
	return true
}

func (ns *namespace) Lookup(sym Symbol) (*Function, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	fn, ok := ns.functions[sym]
	return fn, ok
}

func (ns *namespace) Functions() []Symbol {
	ns.mu.RLock()
	syms := make([]Symbol, 0, len(ns.functions))
	for sym := range ns.functions {
		syms = append(syms, sym)
	}
	ns.mu.RUnlock()
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func (ns *namespace) Provide(feature Symbol) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.features[feature] = struct{}{}
}

func (ns *namespace) Withdraw(feature Symbol) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	delete(ns.features, feature)
}

func (ns *namespace) Provided(feature Symbol) bool {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	_, ok := ns.features[feature]
	return ok
}

func (ns *namespace) Call(env Env, sym Symbol, args ...Value) Result {
	fn, ok := ns.Lookup(sym)
	if !ok {
		return result.Error[Value, failure.IPLDBuilderFailure](NewVoidFunctionError(string(sym)))
	}
	if len(args) < fn.MinArgs || (fn.MaxArgs >= 0 && len(args) > fn.MaxArgs) {
		return result.Error[Value, failure.IPLDBuilderFailure](NewArityMismatchError(fn, len(args)))
	}
	return fn.Impl(env, args)
}
