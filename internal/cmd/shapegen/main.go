// Command shapegen generates the statically shaped multivector types of
// package pga.
//
// For every named shape and every shape produced by an operator on two
// named shapes it emits a struct holding only the Real slots, together
// with negation, slot access, widening conversions and, for named shapes,
// Add/Sub/Mul against every other named shape. Terms that involve an
// Absent slot are dropped from the generated code.
//
// Usage:
//
//	go run ./internal/cmd/shapegen -o shapes_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	output = flag.String("o", "shapes_gen.go", "output file")
	pkg    = flag.String("pkg", "pga", "package name")
)

func main() {
	flag.Parse()

	src, err := generate(*pkg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shapegen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "shapegen: %v\n", err)
		os.Exit(1)
	}
}
