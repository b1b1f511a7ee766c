package result

// Result is either a success value O or a failure value X. A result is a
// failure when its error value is non-nil.
type Result[O any, X any] interface {
	Ok() O
	Error() X
}

type result[O any, X any] struct {
	ok  O
	err X
}

func (r result[O, X]) Ok() O {
	return r.ok
}

func (r result[O, X]) Error() X {
	return r.err
}

// Ok returns a success result.
func Ok[O any, X any](value O) Result[O, X] {
	return result[O, X]{ok: value}
}

// Error returns a failure result.
func Error[O any, X any](err X) Result[O, X] {
	return result[O, X]{err: err}
}

func isErr[X any](x X) bool {
	return any(x) != nil
}

// MatchResultR0 calls onOk or onError depending on the state of the result.
func MatchResultR0[O any, X any](
	res Result[O, X],
	onOk func(ok O),
	onError func(err X),
) {
	if isErr(res.Error()) {
		onError(res.Error())
	} else {
		onOk(res.Ok())
	}
}

// MatchResultR1 is MatchResultR0 for handlers that return one value.
func MatchResultR1[O any, X any, R0 any](
	res Result[O, X],
	onOk func(ok O) R0,
	onError func(err X) R0,
) R0 {
	if isErr(res.Error()) {
		return onError(res.Error())
	}
	return onOk(res.Ok())
}

// MatchResultR2 is MatchResultR0 for handlers that return two values.
func MatchResultR2[O any, X any, R0, R1 any](
	res Result[O, X],
	onOk func(ok O) (R0, R1),
	onError func(err X) (R0, R1),
) (R0, R1) {
	if isErr(res.Error()) {
		return onError(res.Error())
	}
	return onOk(res.Ok())
}

// MapOk transforms a successful result while leaving a failure untouched.
func MapOk[O, O2, X any](res Result[O, X], mapFn func(O) O2) Result[O2, X] {
	return MapResultR0(res, mapFn, func(x X) X { return x })
}

// MapError transforms a failed result while leaving a success untouched.
func MapError[O, X, X2 any](res Result[O, X], mapFn func(X) X2) Result[O, X2] {
	return MapResultR0(res, func(o O) O { return o }, mapFn)
}

// MapResultR0 transforms either side of a result.
func MapResultR0[O, X, O2, X2 any](
	res Result[O, X],
	mapOk func(O) O2,
	mapErr func(X) X2,
) Result[O2, X2] {
	return MatchResultR1(res, func(o O) Result[O2, X2] {
		return Ok[O2, X2](mapOk(o))
	}, func(x X) Result[O2, X2] {
		return Error[O2](mapErr(x))
	})
}

// Wrap runs a function returning a Go style (value, error) pair and converts
// the outcome into a result.
func Wrap[O any](fn func() (O, error)) Result[O, error] {
	o, err := fn()
	if err != nil {
		return Error[O](err)
	}
	return Ok[O, error](o)
}

// Unwrap returns the success value and the failure value of a result.
func Unwrap[O any, X any](res Result[O, X]) (O, X) {
	return res.Ok(), res.Error()
}
