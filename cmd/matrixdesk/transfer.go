// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/history"
	"github.com/ETsETs777/Matrix-Desktop/interchange"
)

const (
	formatJSON  = "json"
	formatCSV   = "csv"
	formatLaTeX = "latex"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		in      operandFlags
		format  string
		operand string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write operands as JSON, CSV or LaTeX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ta, tb, err := in.texts(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			format = strings.ToLower(format)
			if format == formatJSON {
				doc, err := interchange.DocumentFromSnapshot(history.Snapshot{A: ta, B: tb})
				if err != nil {
					return err
				}
				return interchange.EncodeJSON(out, doc)
			}

			name, text := strings.ToUpper(operand), ta
			switch name {
			case "A":
			case "B":
				text = tb
			default:
				return fmt.Errorf("--operand must be A or B, got %q", operand)
			}
			m, err := codec.ParseOperand(name, text)
			if err != nil {
				return err
			}
			if m == nil {
				return fmt.Errorf("operand %s is empty", name)
			}

			switch format {
			case formatCSV:
				return interchange.WriteCSV(out, m)
			case formatLaTeX:
				_, err := fmt.Fprintln(out, interchange.LaTeX(m, a.cfg.Formatter()))
				return err
			default:
				return fmt.Errorf("unknown format %q (want json, csv or latex)", format)
			}
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "json, csv or latex")
	cmd.Flags().StringVar(&operand, "operand", "A", "operand for csv and latex")

	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Read a JSON document or CSV table and print it as operand text",
		Long: `Reads from the file argument, or stdin when it is omitted or "-".
JSON documents print every present field; CSV prints the single matrix.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}
			return runImport(r, cmd.OutOrStdout(), strings.ToLower(format), a.cfg.Formatter())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "json or csv")

	return cmd
}

func runImport(r io.Reader, out io.Writer, format string, f codec.Formatter) error {
	switch format {
	case formatCSV:
		text, err := interchange.ReadCSV(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	case formatJSON:
		doc, err := interchange.DecodeJSON(r)
		if err != nil {
			return err
		}
		snap, err := doc.Snapshot(f)
		if err != nil {
			return err
		}
		var blocks []string
		for _, b := range []struct{ name, text string }{{"A", snap.A}, {"B", snap.B}, {"R", snap.Result}} {
			if b.text != "" {
				blocks = append(blocks, b.name+":\n"+b.text)
			}
		}
		_, err = fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
		return err
	default:
		return fmt.Errorf("unknown format %q (want json or csv)", format)
	}
}
