package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	encOutput            string
	encAllowedSpecial    []string
	encDisallowedSpecial []string
)

// newEncodeCmd creates the encode subcommand.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text to token IDs",
		Long: `Encode text into token IDs.

If no text is provided as an argument, reads from stdin. Special tokens
(such as <|endoftext|>) found in the text are rejected by default; use
--allowed-special to permit specific ones, or "all" to permit every
special token the encoding defines.`,
		Example: `  tiktoken encode --vocab-file cl100k_base.tiktoken --encoding cl100k_base "Hello, world!"
  echo "Hello" | tiktoken encode --vocab-file cl100k_base.tiktoken --encoding cl100k_base
  tiktoken encode --vocab-file cl100k_base.tiktoken --encoding cl100k_base --output json "Hello"`,
		RunE: runEncode,
	}

	addEncodingFlags(cmd)
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "output format: space, newline, json")
	cmd.Flags().StringSliceVar(&encAllowedSpecial, "allowed-special", nil, "special tokens allowed to appear literally (or \"all\")")
	cmd.Flags().StringSliceVar(&encDisallowedSpecial, "disallowed-special", []string{"all"}, "special tokens forbidden from appearing (or \"all\")")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	enc, err := resolveEncoding(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	tokens, err := enc.Encode(text, encAllowedSpecial, encDisallowedSpecial)
	if err != nil {
		return err
	}

	return printTokens(tokens, encOutput)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printTokens(tokens []uint32, format string) error {
	switch format {
	case "json":
		data, err := json.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("marshal tokens: %w", err)
		}
		fmt.Println(string(data))
	case "newline":
		for _, tok := range tokens {
			fmt.Println(tok)
		}
	case "space":
		for i, tok := range tokens {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(tok)
		}
		fmt.Println()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}
