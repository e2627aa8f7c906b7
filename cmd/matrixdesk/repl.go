// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ETsETs777/Matrix-Desktop/catalog"
	"github.com/ETsETs777/Matrix-Desktop/evalerr"
	"github.com/ETsETs777/Matrix-Desktop/interchange"
	"github.com/ETsETs777/Matrix-Desktop/session"
)

const replHelp = `commands:
  a | b         enter rows of A or B, finish with an empty line
  <op>          evaluate an operation, e.g. "detA" (see "ops")
  eval <op>     same as <op>
  show          print A, B and the last result
  undo | redo   step through history
  clear         blank A, B and the result
  ops           list operation ids
  json          print the state as a JSON document
  quit          leave`

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive session with undo/redo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), a.session())
		},
	}
}

// runREPL drives s from line-oriented input until EOF or "quit".
func runREPL(in io.Reader, out io.Writer, s *session.Session) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprintln(out, replHelp)
		case "a", "b":
			text := readBlock(sc)
			if strings.EqualFold(cmd, "a") {
				s.SetA(text)
			} else {
				s.SetB(text)
			}
		case "eval":
			fmt.Fprintln(out, s.EvaluateID(arg))
		case "show":
			st := s.State()
			fmt.Fprintf(out, "A:\n%s\n\nB:\n%s\n\nResult:\n%s\n", st.A, st.B, st.Result)
		case "undo":
			report(out, s.Undo(), "nothing to undo", s)
		case "redo":
			report(out, s.Redo(), "nothing to redo", s)
		case "clear":
			s.Clear()
		case "ops":
			for _, spec := range catalog.All() {
				fmt.Fprintf(out, "%-11s %s\n", spec.ID, spec.Label)
			}
		case "json":
			doc, err := interchange.DocumentFromSnapshot(s.State())
			if err == nil {
				err = interchange.EncodeJSON(out, doc)
			}
			if err != nil {
				fmt.Fprintln(out, evalerr.UserMessage(err))
			}
		default:
			fmt.Fprintln(out, s.EvaluateID(line))
		}
	}

	return sc.Err()
}

// readBlock collects lines up to the next empty line or EOF.
func readBlock(sc *bufio.Scanner) string {
	var rows []string
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		rows = append(rows, line)
	}

	return strings.Join(rows, "\n")
}

func report(out io.Writer, applied bool, noop string, s *session.Session) {
	if !applied {
		fmt.Fprintln(out, noop)
		return
	}
	fmt.Fprintln(out, s.State().Result)
}
