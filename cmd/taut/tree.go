package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/tautology/packages/logger"
	"github.com/user/tautology/packages/logic"
)

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <sentence>",
		Short: "Print the bracket hierarchy and syntax tree of a sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := logic.BuildHierarchy(logic.Normalize(args[0]))
			if err != nil {
				return err
			}
			n, err := logic.Parse(h)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, h.String())
			fmt.Fprintln(out, logic.FormatTree(n))
			logger.FromContext(cmd.Context()).Debug("tree rendered", "sentence", logic.Stringify(n))
			return nil
		},
	}
}
