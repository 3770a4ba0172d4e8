package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tiktoken",
	Short: "A byte pair encoding tokenizer CLI compatible with OpenAI's tiktoken vocabularies",
	Long: `tiktoken encodes and decodes text using the BPE vocabularies published
for OpenAI's models: r50k_base, p50k_base, p50k_edit, cl100k_base, o200k_base,
and gpt2.

This binary ships no vocabulary data itself — point it at a .tiktoken file
with --vocab-file, naming which encoding it contains with --encoding (or let
--model resolve the encoding for you).

Available operations:
  encode         Convert text to token IDs
  decode         Convert token IDs back to text
  count          Count the tokens text would encode to
  info           Display encoding information
  list encodings List known encoding names
  list models    List known model names`,
	Example: `  # Encode text with cl100k_base
  tiktoken encode --vocab-file cl100k_base.tiktoken --encoding cl100k_base "Hello, world!"

  # Decode tokens
  tiktoken decode --vocab-file cl100k_base.tiktoken --encoding cl100k_base 9906 11 1917 0

  # Resolve the encoding from a model name instead
  tiktoken encode --vocab-file cl100k_base.tiktoken --model gpt-4 "Hello"

  # Just count tokens
  tiktoken count --vocab-file cl100k_base.tiktoken --encoding cl100k_base "Hello, world!"`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tiktoken version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit: %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:  %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newListCmd())
}
