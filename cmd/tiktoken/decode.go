package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gotiktoken/tiktoken/bpe"
)

// newDecodeCmd creates the decode subcommand.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token...]",
		Short: "Decode token IDs to text",
		Long:  `Decode a sequence of token IDs, given as decimal arguments, back into text.`,
		Example: `  tiktoken decode --vocab-file cl100k_base.tiktoken --encoding cl100k_base 9906 11 1917 0`,
		RunE: runDecode,
	}

	addEncodingFlags(cmd)
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	enc, err := resolveEncoding(cmd)
	if err != nil {
		return err
	}

	tokens := make([]bpe.Token, len(args))
	for i, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid token %q: %w", arg, err)
		}
		tokens[i] = bpe.Token(n)
	}

	text, err := enc.Decode(tokens)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
