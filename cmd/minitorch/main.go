// Package main provides the minitorch CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/minitorch/nn"
	"github.com/born-ml/minitorch/operators"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "minitorch %s\n", version)
		return 0
	case "demo":
		return runDemo(args[1:], stdout, stderr)
	case "ops":
		return runOps(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "minitorch %s - module trees and scalar operators\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Build a sample network and print its structure")
	fmt.Fprintln(w, "  ops        Evaluate every operator at a point")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runDemo(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dot := fs.Bool("dot", false, "print the network as a Graphviz digraph")
	eval := fs.Bool("eval", false, "switch the network to evaluation mode")
	input := fs.Float64("x", 1.0, "input fed through the network")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(stderr, *verbose)

	net := newNetwork()
	if *eval {
		net.Eval()
	}
	logger.Debug("network built", "modules", len(net.Modules()), "training", net.Training())

	fmt.Fprintln(stdout, net)
	fmt.Fprintln(stdout)
	for _, np := range net.NamedParameters() {
		fmt.Fprintf(stdout, "%-24s %v\n", np.Name, np.Parameter)
	}

	out, err := net.Call(*input)
	if err != nil {
		logger.Error("forward failed", "err", err)
		return 1
	}
	fmt.Fprintf(stdout, "\nforward(%v) = %v\n", *input, out)

	if *dot {
		g, err := nn.ToDot(net.Module, nn.DefaultDotConfig())
		if err != nil {
			logger.Error("dot rendering failed", "err", err)
			return 1
		}
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, g)
	}
	return 0
}

func runOps(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ops", flag.ContinueOnError)
	fs.SetOutput(stderr)
	x := fs.Float64("x", 0.5, "first argument")
	y := fs.Float64("y", 0.25, "second argument (upstream gradient for *_back)")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := newLogger(stderr, *verbose)

	for _, fn := range operators.UnaryFuncs[float64]() {
		if fn.Positive && *x <= 0 {
			logger.Warn("input outside domain", "op", fn.Name, "x", *x)
		}
		fmt.Fprintf(stdout, "%-10s (%v)       = %v\n", fn.Name, *x, fn.Fn(*x))
	}
	for _, fn := range operators.BinaryFuncs[float64]() {
		if fn.Positive && *x <= 0 {
			logger.Warn("input outside domain", "op", fn.Name, "x", *x)
		}
		fmt.Fprintf(stdout, "%-10s (%v, %v) = %v\n", fn.Name, *x, *y, fn.Fn(*x, *y))
	}
	return 0
}
