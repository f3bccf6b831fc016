// krpcdump inspects captured krpc call responses: it reads consecutive
// length-delimited Response frames from a file or stdin, classifies each
// into a top-level failure, per-procedure failures, or payloads, and renders
// the outcome as JSON or CBOR. With -type, payloads are decoded against a
// type expression such as tuple(bool,string) or dict(string,list(sint32)).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/henryrgithub/krpc-mars/pkg/codec"
	"github.com/henryrgithub/krpc-mars/pkg/config"
	"github.com/henryrgithub/krpc-mars/pkg/observability"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (optional)")
	input := flag.String("input", "-", "file holding length-delimited Response frames, or - for stdin")
	typeStr := flag.String("type", "", "result type expression, e.g. tuple(bool,string)")
	format := flag.String("format", "", "output format: json|cbor (overrides config)")
	maxFrames := flag.Int("max-frames", -1, "stop after N frames (0 = all, -1 = use config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		fatalf("setup logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *format == "" {
		*format = cfg.Dump.Format
	}
	if *maxFrames < 0 {
		*maxFrames = cfg.Dump.MaxFrames
	}

	reg := codec.NewRegistry()
	cb, err := codec.CBOR()
	if err != nil {
		fatalf("init cbor: %v", err)
	}
	reg.Register(cb)

	var out codec.Codec
	switch *format {
	case "json":
		out = reg.Get("application/json")
	case "cbor":
		out = reg.Get("application/cbor")
	default:
		fatalf("unknown format %q", *format)
	}

	var texpr *typeExpr
	if *typeStr != "" {
		if texpr, err = parseTypeExpr(*typeStr); err != nil {
			fatalf("bad -type: %v", err)
		}
	}

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	if err := dump(in, os.Stdout, texpr, out, *maxFrames, logger); err != nil {
		fatalf("dump: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "krpcdump: "+format+"\n", args...)
	os.Exit(1)
}
