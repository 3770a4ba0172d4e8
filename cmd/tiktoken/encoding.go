package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gotiktoken/tiktoken/bpe"
	"github.com/gotiktoken/tiktoken/registry"
)

// addEncodingFlags registers the --encoding/--model/--vocab-file flags
// shared by every subcommand that needs to construct an *bpe.Encoding.
func addEncodingFlags(cmd *cobra.Command) {
	cmd.Flags().String("encoding", "", "encoding name, e.g. cl100k_base")
	cmd.Flags().String("model", "", "model name to resolve an encoding from, e.g. gpt-4")
	cmd.Flags().String("vocab-file", "", "path to the encoding's .tiktoken vocabulary file (required)")
}

// resolveEncoding builds the *bpe.Encoding named by --encoding or --model,
// loading its vocabulary from --vocab-file. Exactly one of --encoding or
// --model must be given.
func resolveEncoding(cmd *cobra.Command) (*bpe.Encoding, error) {
	encodingName, _ := cmd.Flags().GetString("encoding")
	model, _ := cmd.Flags().GetString("model")
	vocabFile, _ := cmd.Flags().GetString("vocab-file")

	if encodingName == "" && model == "" {
		return nil, fmt.Errorf("one of --encoding or --model is required")
	}
	if encodingName != "" && model != "" {
		return nil, fmt.Errorf("only one of --encoding or --model may be given")
	}
	if vocabFile == "" {
		return nil, fmt.Errorf("--vocab-file is required")
	}

	if model != "" {
		name, err := registry.EncodingNameForModel(model)
		if err != nil {
			return nil, err
		}
		encodingName = name
	}

	return registry.GetFile(encodingName, vocabFile)
}
