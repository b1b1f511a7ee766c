package xxh

import (
	"fmt"

	"github.com/storacha/go-xxh/core/result/failure"
	"github.com/storacha/go-xxh/host"
)

// validate checks the top level type of an argument against shape.
func validate(env host.Env, v host.Value, shape Shape) failure.IPLDBuilderFailure {
	switch shape {
	case Vector:
		if !env.IsVector(v) {
			return NewNotAVectorError()
		}
	case Text:
		if !env.IsString(v) {
			return NewNotAStringError()
		}
	default:
		return failure.FromError(fmt.Errorf("unsupported shape %s", shape))
	}
	return nil
}

// extract returns a buffer holding the bytes of a validated argument. On
// success the caller owns the buffer and must release it. On failure the
// buffer has already been released.
func (b *Bridge) extract(env host.Env, v host.Value, shape Shape) ([]byte, failure.IPLDBuilderFailure) {
	if shape == Vector {
		return b.extractVector(env, v)
	}
	return b.extractText(env, v)
}

// extractVector keeps the low 8 bits of every element, so 256+k contributes
// the same byte as k.
func (b *Bridge) extractVector(env host.Env, v host.Value) (buf []byte, fail failure.IPLDBuilderFailure) {
	n, err := env.VecSize(v)
	if err != nil {
		return nil, failure.FromError(err)
	}
	buf = b.alloc.Acquire(n)
	defer func() {
		if fail != nil {
			b.alloc.Release(buf)
			buf = nil
		}
	}()

	for i := 0; i < n; i++ {
		el, err := env.VecGet(v, i)
		if err != nil {
			return buf, failure.FromError(err)
		}
		if !env.IsNumberOrMarker(el) {
			return buf, NewNotANumberError(i)
		}
		num, err := env.ExtractInteger(el)
		if err != nil {
			return buf, NewNotANumberError(i)
		}
		buf[i] = byte(num & 0xFF)
	}
	return buf, nil
}

func (b *Bridge) extractText(env host.Env, v host.Value) (buf []byte, fail failure.IPLDBuilderFailure) {
	size, err := env.StringSize(v)
	if err != nil {
		return nil, failure.FromError(err)
	}
	if b.textLimit > 0 && size > b.textLimit {
		return nil, NewCapacityExceededError(size, b.textLimit)
	}
	buf = b.alloc.Acquire(size)
	n, err := env.CopyString(v, buf)
	if err != nil {
		b.alloc.Release(buf)
		return nil, failure.FromError(err)
	}
	return buf[:n], nil
}
