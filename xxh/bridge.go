// Package xxh hashes host values with xxHash and returns the digest as fixed
// width uppercase hex.
//
// Vector arguments contribute one byte per element (the element's integer
// value masked to its low 8 bits), text arguments contribute their encoded
// bytes. The seed is always zero. Every failure is returned as a named
// failure in the result, never as a value that could be mistaken for a
// digest.
package xxh

import (
	logging "github.com/ipfs/go-log/v2"
	"github.com/storacha/go-xxh/core/ipld/hash"
	"github.com/storacha/go-xxh/core/result"
	"github.com/storacha/go-xxh/core/result/failure"
	"github.com/storacha/go-xxh/host"
	"github.com/storacha/go-xxh/internal/bufpool"
)

var log = logging.Logger("xxh")

// HexResult is a hex digest or the failure that prevented computing it.
type HexResult = result.Result[string, failure.IPLDBuilderFailure]

// DigestResult is a multihash digest or the failure that prevented computing
// it.
type DigestResult = result.Result[hash.Digest, failure.IPLDBuilderFailure]

type Bridge struct {
	textLimit int
	alloc     bufpool.Allocator
}

func NewBridge(options ...Option) (*Bridge, error) {
	cfg, err := newConfig(options...)
	if err != nil {
		return nil, err
	}
	return newBridge(cfg), nil
}

func newBridge(cfg config) *Bridge {
	return &Bridge{textLimit: cfg.textLimit, alloc: cfg.allocator}
}

// TextLimit is the maximum encoded length of a text argument, zero or less
// when unlimited.
func (b *Bridge) TextLimit() int {
	return b.textLimit
}

// sum validates and extracts v then passes the buffer to fn. The buffer is
// released when fn returns.
func sum[T any](b *Bridge, env host.Env, v host.Value, shape Shape, width Width, fn func([]byte) (T, error)) result.Result[T, failure.IPLDBuilderFailure] {
	if fail := validate(env, v, shape); fail != nil {
		log.Debugw("argument rejected", "shape", shape, "width", width, "error", fail)
		return result.Error[T](fail)
	}
	buf, fail := b.extract(env, v, shape)
	if fail != nil {
		log.Debugw("extraction failed", "shape", shape, "width", width, "error", fail)
		return result.Error[T](fail)
	}
	defer b.alloc.Release(buf)

	out, err := fn(buf)
	if err != nil {
		return result.Error[T](failure.FromError(err))
	}
	return result.Ok[T, failure.IPLDBuilderFailure](out)
}

// Hash returns the uppercase hex digest of v hashed at the given width.
func (b *Bridge) Hash(env host.Env, v host.Value, shape Shape, width Width) HexResult {
	return sum(b, env, v, shape, width, func(buf []byte) (string, error) {
		return width.Format(width.Sum(buf)), nil
	})
}

// Digest returns the multihash digest of v hashed at the given width.
func (b *Bridge) Digest(env host.Env, v host.Value, shape Shape, width Width) DigestResult {
	return sum(b, env, v, shape, width, width.Hasher().Sum)
}

// HashVec64 hashes a vector of byte values to a 16 character hex digest.
func (b *Bridge) HashVec64(env host.Env, v host.Value) HexResult {
	return b.Hash(env, v, Vector, Width64)
}

// HashStr64 hashes a text value to a 16 character hex digest.
func (b *Bridge) HashStr64(env host.Env, v host.Value) HexResult {
	return b.Hash(env, v, Text, Width64)
}

// HashVec32 hashes a vector of byte values to an 8 character hex digest.
func (b *Bridge) HashVec32(env host.Env, v host.Value) HexResult {
	return b.Hash(env, v, Vector, Width32)
}

// HashStr32 hashes a text value to an 8 character hex digest.
func (b *Bridge) HashStr32(env host.Env, v host.Value) HexResult {
	return b.Hash(env, v, Text, Width32)
}
