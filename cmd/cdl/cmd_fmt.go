package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/cdl/cdl"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite a .cdl file in canonical form",
		Long: `Rewrite a .cdl file in canonical form to stdout.

If no file is provided, reads from stdin. Lines the parser cannot
understand are left untouched.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}
			source, err := readSource(args)
			if err != nil {
				return err
			}

			output := cdl.FormatDocument(string(source))

			if fmtOverwrite {
				return os.WriteFile(args[0], []byte(output), 0644)
			}
			_, err = os.Stdout.WriteString(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
