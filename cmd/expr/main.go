// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Command expr evaluates a single four-function arithmetic expression
// passed as its one command-line argument.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ezward/ExpressionParser/pkg/expression/eval"
	"github.com/Ezward/ExpressionParser/pkg/expression/parser"
	"github.com/Ezward/ExpressionParser/pkg/expression/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: expr <expression>")
		return 2
	}

	src := args[0]
	node, err := parser.Parse(src)
	if err != nil {
		printError(stderr, src, err)
		return 1
	}

	fmt.Fprintln(stdout, render.FormatValue(eval.Evaluate(node)))
	return 0
}

// printError writes the three-line caret-annotated error report: the
// offending input, a caret line aligned to the error span, and the error
// text with its position.
func printError(stderr io.Writer, src string, err *parser.Error) {
	fmt.Fprintln(stderr, src)
	fmt.Fprintln(stderr, caretLine(src, err))
	fmt.Fprintf(stderr, "%s\n", err)
}

// caretLine builds a line of spaces and carets under src aligned to err's
// span: a single '^' when the span covers one character, '^' at the start
// and '^' at the end joined by '…' when it covers more.
func caretLine(src string, err *parser.Error) string {
	start := err.Position.Start.CharIndex
	end := err.Position.End.CharIndex
	if end <= start {
		end = start + 1
	}
	var b strings.Builder
	for i := 0; i < start; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	width := end - start
	if width > 1 {
		for i := 0; i < width-2; i++ {
			b.WriteRune('…')
		}
		b.WriteByte('^')
	}
	return b.String()
}
