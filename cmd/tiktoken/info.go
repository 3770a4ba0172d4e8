package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the info subcommand.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Display information about an encoding",
		Example: `  tiktoken info --vocab-file cl100k_base.tiktoken --encoding cl100k_base`,
		RunE: runInfo,
	}

	addEncodingFlags(cmd)
	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	enc, err := resolveEncoding(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("name:             %s\n", enc.Name())
	fmt.Printf("vocab size:       %d\n", enc.VocabSize())
	fmt.Printf("max token value:  %d\n", enc.MaxTokenValue())
	fmt.Printf("special tokens:   %d\n", len(enc.SpecialTokens()))
	for _, name := range enc.SpecialTokens() {
		fmt.Printf("  %s\n", name)
	}

	return nil
}
