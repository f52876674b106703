package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/cdl/cdl"
	"github.com/dhamidi/cdl/cdl/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate .cdl files and report diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 0 {
				source, err := readSource(nil)
				if err != nil {
					return err
				}
				if errs := reportDiagnostics("<stdin>", string(source)); errs > 0 {
					return fmt.Errorf("%d error(s)", errs)
				}
				return nil
			}

			total := 0
			for _, path := range args {
				source, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				total += reportDiagnostics(path, string(source))
			}
			if total > 0 {
				return fmt.Errorf("%d error(s)", total)
			}
			return nil
		},
	}
}

func reportDiagnostics(path, source string) int {
	analysis := cdl.Analyze(source)
	errors := 0
	for _, diag := range analysis.Diags {
		label := color.YellowString("warning")
		if diag.Severity == parser.SeverityError {
			label = color.RedString("error")
			errors++
		}
		fmt.Printf("%s:%d:%d: %s: %s [%s]\n",
			path, diag.Line+1, diag.Span.Start+1, label, diag.Message, diag.Code)
		if diag.Suggestion != "" {
			fmt.Printf("  did you mean %q?\n", diag.Suggestion)
		}
	}
	return errors
}
