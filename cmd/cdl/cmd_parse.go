package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cdl/cdl"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a .cdl file and dump the analysis as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return err
			}

			analysis := cdl.Analyze(string(source))
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(analysis); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return source, nil
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return source, nil
}
