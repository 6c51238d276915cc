package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/tautology"
	"github.com/user/tautology/packages/logger"
)

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [sentence...]",
		Short: "Classify sentences given as arguments, or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentences := args
			if len(sentences) == 0 {
				var err error
				sentences, err = readSentences(cmd.InOrStdin(), false)
				if err != nil {
					return err
				}
			}
			if len(sentences) == 0 {
				return fmt.Errorf("no sentences to check")
			}
			return a.run(cmd, sentences)
		},
	}
}

func batchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>",
		Short: "Classify every sentence of a file in parallel",
		Long: "Classify every sentence of a file in parallel.\n" +
			"The file holds one sentence per line; blank lines and lines starting with # are ignored.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open batch file: %w", err)
			}
			defer f.Close()
			sentences, err := readSentences(f, true)
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Info("batch loaded", "file", args[0], "sentences", len(sentences))
			return a.run(cmd, sentences)
		},
	}
}

// run checks sentences, writes the report, and fails if any sentence did.
func (a *app) run(cmd *cobra.Command, sentences []string) error {
	items, err := a.checker.CheckAll(cmd.Context(), sentences)
	if err != nil {
		return err
	}
	report := tautology.NewReport(items)
	if err := tautology.EncodeReport(cmd.OutOrStdout(), report, a.format, a.palette); err != nil {
		return err
	}
	if report.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d sentences failed", report.Summary.Failed, report.Summary.Total)
	}
	return nil
}
