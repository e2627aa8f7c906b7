// SPDX-License-Identifier: MIT

// Command matrixdesk evaluates linear-algebra operations on matrices typed as
// plain text: one row per line, values separated by spaces, commas or ';'.
//
//	matrixdesk ops
//	matrixdesk eval mul --a "1 2" --a "3 4" --b "5" --b "6"
//	matrixdesk rref --a-file system.txt
//	matrixdesk repl
package main

import (
	"fmt"
	"os"

	"github.com/ETsETs777/Matrix-Desktop/evalerr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, evalerr.UserMessage(err))
		os.Exit(1)
	}
}
