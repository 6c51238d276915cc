package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/user/tautology/packages/logger"
	"github.com/user/tautology/packages/logic"
)

func fmtCmd() *cobra.Command {
	var showDiff bool
	cmd := &cobra.Command{
		Use:   "fmt <sentence>",
		Short: "Print the canonical form of a sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := logic.Normalize(args[0])
			h, err := logic.BuildHierarchy(tokens)
			if err != nil {
				return err
			}
			n, err := logic.Parse(h)
			if err != nil {
				return err
			}
			canonical := logic.Stringify(n)
			out := cmd.OutOrStdout()
			if !showDiff {
				fmt.Fprintln(out, canonical)
				return nil
			}
			logger.FromContext(cmd.Context()).Debug("diffing canonical form", "normalized", string(tokens), "canonical", canonical)
			fmt.Fprintln(out, renderDiff(string(tokens), canonical))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showDiff, "diff", false, "show how the canonical form differs from the normalized input")
	return cmd
}

// renderDiff marks deletions as [-text-] and insertions as {+text+}.
func renderDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	del := color.New(color.FgRed).SprintFunc()
	ins := color.New(color.FgGreen).SprintFunc()

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString(del("[-" + d.Text + "-]"))
		case diffpatch.DiffInsert:
			b.WriteString(ins("{+" + d.Text + "+}"))
		}
	}
	return b.String()
}
