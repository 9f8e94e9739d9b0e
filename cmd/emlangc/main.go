// Command emlangc is the emlang compiler front-end: source text in,
// LLVM IR out (spec.md §1). This file is the process entry point only;
// the single cobra command lives in root.go/compile.go, and main.go just
// calls Execute.
package main

import (
	"fmt"
	"os"

	"github.com/byacherx/emlangc/cmd/emlangc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
