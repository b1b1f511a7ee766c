// xxh hashes a value with the xxHash bridge from the command line.
//
// The value is read from the first argument, or from stdin when the argument
// is absent or "-". It is decoded with the selected codec (dag-json by
// default) unless --text is given, in which case the raw input is hashed as
// a string. The entry point is chosen with --fn:
//
//	xxh --fn hash-vec-64 '[104, 105]'
//	xxh --fn hash-str-32 --text hi
//	echo '"hi"' | xxh --format cid
//
// Failures are written to stderr as dag-json and exit with status 1.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/multiformats/go-multibase"
	"github.com/spf13/pflag"
	"github.com/storacha/go-xxh/core/ipld/codec"
	"github.com/storacha/go-xxh/core/ipld/codec/cbor"
	"github.com/storacha/go-xxh/core/ipld/codec/json"
	"github.com/storacha/go-xxh/core/ipld/hash"
	"github.com/storacha/go-xxh/core/result/failure"
	"github.com/storacha/go-xxh/host"
	"github.com/storacha/go-xxh/xxh"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	fn       string
	text     bool
	codec    string
	format   string
	limit    int
	logLevel string
	list     bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flagSet := pflag.NewFlagSet("xxh", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.fn, "fn", xxh.HashStr64Name, "entry point to call")
	flagSet.BoolVar(&opts.text, "text", false, "hash the raw input as a string instead of decoding it")
	flagSet.StringVar(&opts.codec, "codec", "json", "codec of the input value (json, cbor)")
	flagSet.StringVar(&opts.format, "format", "hex", "output format (hex, multibase, multihash, cid)")
	flagSet.IntVar(&opts.limit, "limit", xxh.DefaultTextLimit, "maximum string length in bytes, 0 for no limit")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flagSet.BoolVar(&opts.list, "list", false, "list entry points and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.logLevel != "" {
		if err := logging.SetLogLevelRegex("xxh.*", opts.logLevel); err != nil {
			fmt.Fprintf(stderr, "error: invalid log level: %v\n", err)
			return exitUsage
		}
	}

	ns := host.NewNamespace()
	mod, err := xxh.Load(ns, xxh.WithTextLimit(opts.limit))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	defer mod.Close()

	if opts.list {
		for _, sym := range ns.Functions() {
			fn, _ := ns.Lookup(sym)
			fmt.Fprintf(stdout, "%s\t%s\n", fn.Name, fn.Doc)
		}
		return exitOK
	}

	shape, width, ok := xxh.EntryPoint(opts.fn)
	if !ok {
		fmt.Fprintf(stderr, "error: unknown entry point %q\n", opts.fn)
		return exitUsage
	}
	if !validFormat(opts.format) {
		fmt.Fprintf(stderr, "error: unknown format %q\n", opts.format)
		return exitUsage
	}

	input, err := readInput(flagSet.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	env := host.NewEnv()
	var value host.Value
	if opts.text {
		value = basicnode.NewString(string(input))
	} else {
		dec, err := decoder(opts.codec)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		value, err = dec.Decode(input)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
	}

	var out string
	if opts.format == "hex" {
		res := ns.Call(env, ns.Intern(opts.fn), value)
		if res.Error() != nil {
			return printFailure(stderr, res.Error())
		}
		out, err = res.Ok().AsString()
	} else {
		res := mod.Bridge().Digest(env, value, shape, width)
		if res.Error() != nil {
			return printFailure(stderr, res.Error())
		}
		out, err = formatDigest(opts.format, res.Ok())
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	fmt.Fprintln(stdout, out)
	return exitOK
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	switch {
	case len(args) > 1:
		return nil, fmt.Errorf("unexpected argument: %s", args[1])
	case len(args) == 1 && args[0] != "-":
		return []byte(args[0]), nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
}

func decoder(name string) (codec.Decoder, error) {
	switch strings.ToLower(name) {
	case "json", "dag-json":
		return json.Codec, nil
	case "cbor", "dag-cbor":
		return cbor.Codec, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

func validFormat(format string) bool {
	switch format {
	case "hex", "multibase", "multihash", "cid":
		return true
	default:
		return false
	}
}

func formatDigest(format string, d hash.Digest) (string, error) {
	switch format {
	case "multibase":
		return multibase.Encode(multibase.Base58BTC, d.Bytes())
	case "multihash":
		return hex.EncodeToString(d.Bytes()), nil
	case "cid":
		return hash.Link(d).String(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func printFailure(w io.Writer, f failure.IPLDBuilderFailure) int {
	nd, err := f.ToIPLD()
	if err == nil {
		var b []byte
		if b, err = json.Encode(nd); err == nil {
			fmt.Fprintln(w, string(b))
			return exitFailure
		}
	}
	fmt.Fprintf(w, "%s: %s\n", f.Name(), f.Error())
	return exitFailure
}
