// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ETsETs777/Matrix-Desktop/catalog"
)

// operandFlags collects operand text given either row by row (--a "1 2" --a "3 4")
// or as a file (--a-file m.txt, "-" for stdin).
type operandFlags struct {
	aRows, bRows []string
	aFile, bFile string
}

func (f *operandFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringArrayVar(&f.aRows, "a", nil, "row of A (repeat per row)")
	fl.StringArrayVar(&f.bRows, "b", nil, "row of B (repeat per row)")
	fl.StringVar(&f.aFile, "a-file", "", "read A from file (- for stdin)")
	fl.StringVar(&f.bFile, "b-file", "", "read B from file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("a", "a-file")
	cmd.MarkFlagsMutuallyExclusive("b", "b-file")
}

func (f *operandFlags) texts(stdin io.Reader) (a, b string, err error) {
	if f.aFile == "-" && f.bFile == "-" {
		return "", "", errors.New("only one operand can be read from stdin")
	}
	if a, err = operandText(f.aRows, f.aFile, stdin); err != nil {
		return "", "", err
	}
	if b, err = operandText(f.bRows, f.bFile, stdin); err != nil {
		return "", "", err
	}

	return a, b, nil
}

func operandText(rows []string, file string, stdin io.Reader) (string, error) {
	switch file {
	case "":
		return strings.Join(rows, "\n"), nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read operand: %w", err)
		}
		return string(data), nil
	}
}

// completeOps offers catalog ids for shell completion.
func completeOps(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var ids []string
	for _, s := range catalog.All() {
		if strings.HasPrefix(strings.ToLower(s.ID), strings.ToLower(toComplete)) {
			ids = append(ids, s.ID+"\t"+s.Label)
		}
	}

	return ids, cobra.ShellCompDirectiveNoFileComp
}
