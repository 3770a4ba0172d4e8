package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	countAllowedSpecial    []string
	countDisallowedSpecial []string
)

// newCountCmd creates the count subcommand.
func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [text]",
		Short: "Count the tokens text would encode to",
		Long:  `Encode text and print only the resulting token count, without the tokens themselves.`,
		Example: `  tiktoken count --vocab-file cl100k_base.tiktoken --encoding cl100k_base "Hello, world!"`,
		RunE: runCount,
	}

	addEncodingFlags(cmd)
	cmd.Flags().StringSliceVar(&countAllowedSpecial, "allowed-special", nil, "special tokens allowed to appear literally (or \"all\")")
	cmd.Flags().StringSliceVar(&countDisallowedSpecial, "disallowed-special", nil, "special tokens forbidden from appearing (or \"all\")")

	return cmd
}

func runCount(cmd *cobra.Command, args []string) error {
	enc, err := resolveEncoding(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	count, err := enc.CountTokens(text, countAllowedSpecial, countDisallowedSpecial)
	if err != nil {
		return err
	}

	fmt.Println(count)
	return nil
}
