// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ETsETs777/Matrix-Desktop/catalog"
	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/rref"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tOPERATION\tREADS\tREQUIRES")
			for _, s := range catalog.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Label, s.Operands, s.Shape)
			}
			return tw.Flush()
		},
	}
}

func newEvalCmd(a *app) *cobra.Command {
	var in operandFlags
	cmd := &cobra.Command{
		Use:   "eval <op>",
		Short: "Evaluate one operation and print the result",
		Example: `  matrixdesk eval detA --a "1 2" --a "3 4"
  matrixdesk eval solve --a-file A.txt --b "1; 2"`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := catalog.ParseOp(args[0])
			if err != nil {
				return err
			}
			ta, tb, err := in.texts(cmd.InOrStdin())
			if err != nil {
				return err
			}
			ma, err := codec.ParseOperand("A", ta)
			if err != nil {
				return err
			}
			mb, err := codec.ParseOperand("B", tb)
			if err != nil {
				return err
			}
			res, err := a.dispatcher().Evaluate(op, ma, mb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text())
			return nil
		},
	}
	in.register(cmd)

	return cmd
}

func newRREFCmd(a *app) *cobra.Command {
	var (
		in    operandFlags
		useB  bool
		quiet bool
	)
	cmd := &cobra.Command{
		Use:   "rref",
		Short: "Reduce A (or B) to row-echelon form, printing every row operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ta, tb, err := in.texts(cmd.InOrStdin())
			if err != nil {
				return err
			}
			name, text := "A", ta
			if useB {
				name, text = "B", tb
			}
			m, err := codec.ParseOperand(name, text)
			if err != nil {
				return err
			}
			if m == nil {
				return fmt.Errorf("operand %s is empty", name)
			}

			f := a.cfg.Formatter()
			tr, err := rref.Reduce(m, rref.WithEpsilon(a.cfg.PivotEpsilon), rref.WithFormatter(f))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, f.Matrix(tr.Final))
			} else {
				fmt.Fprintln(out, tr.String())
			}
			fmt.Fprintf(out, "\nrank = %d; pivot columns: %s\n", tr.Rank(), oneBased(tr.PivotColumns()))
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&useB, "use-b", false, "reduce B instead of A")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the final matrix")

	return cmd
}

func oneBased(cols []int) string {
	if len(cols) == 0 {
		return "none"
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = strconv.Itoa(c + 1)
	}

	return strings.Join(parts, ", ")
}
