// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build ignore

// This program generates sintable.go. Invoke it as:
//
//	go run gen.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
)

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by go run gen.go; DO NOT EDIT.\n\n")
	buf.WriteString("package fixed\n\n")
	buf.WriteString("// sinTable holds sin(d) in Q16.16 for whole degrees d in [0, 360).\n")
	buf.WriteString("var sinTable = [360]Q16{\n")
	for d := 0; d < 360; d++ {
		if d%8 == 0 {
			buf.WriteString("\t")
		}
		v := int32(math.Round(math.Sin(float64(d)*math.Pi/180) * 65536))
		fmt.Fprintf(&buf, "%d,", v)
		if d%8 == 7 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("sintable.go", src, 0o600); err != nil {
		log.Fatal(err)
	}
}
