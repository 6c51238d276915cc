package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/user/tautology/packages/logger"
	"github.com/user/tautology/packages/logic"
)

// maxTableVariables keeps printed truth tables readable.
const maxTableVariables = 10

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <sentence>",
		Short: "Print the truth table of a sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := logic.ParseSentence(args[0])
			if err != nil {
				return err
			}
			if vars := logic.Variables(n); len(vars) > maxTableVariables {
				return fmt.Errorf("%w: truth tables are limited to %d, got %d",
					logic.ErrTooManyVariables, maxTableVariables, len(vars))
			}
			tbl, err := logic.TruthTable(n)
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Debug("truth table built", "sentence", logic.Stringify(n), "rows", len(tbl.Rows))
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(logic.Stringify(n), tbl))
			return nil
		},
	}
}

func renderTable(canonical string, tbl *logic.Table) string {
	headers := make([]string, 0, len(tbl.Variables)+1)
	for _, v := range tbl.Variables {
		headers = append(headers, string(v))
	}
	headers = append(headers, canonical)

	rows := make([][]string, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		row := make([]string, 0, len(headers))
		for _, v := range tbl.Variables {
			row = append(row, truthCell(r.Model[v]))
		}
		rows = append(rows, append(row, truthCell(r.Value)))
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	last := len(headers) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == last:
				return cell.Bold(true)
			default:
				return cell
			}
		})
	return t.String()
}

func truthCell(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
