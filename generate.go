// Package tiktoken provides a byte pair encoding tokenizer compatible with
// OpenAI's published tiktoken vocabularies. The actual implementation
// lives in the bpe, registry, and internal/vocab packages; this root
// package exists only to anchor repository-wide documentation generation.
package tiktoken

// Generate documentation for the bpe package
//go:generate gomarkdoc -o ./bpe/README.md -e ./bpe --embed --repository.url https://github.com/gotiktoken/tiktoken --repository.default-branch main --repository.path /bpe

// Generate documentation for the registry package
//go:generate gomarkdoc -o ./registry/README.md -e ./registry --embed --repository.url https://github.com/gotiktoken/tiktoken --repository.default-branch main --repository.path /registry

// Generate documentation for the internal vocabulary loader
//go:generate gomarkdoc -o ./internal/vocab/README.md -e ./internal/vocab --embed --repository.url https://github.com/gotiktoken/tiktoken --repository.default-branch main --repository.path /internal/vocab

// Generate documentation for the CLI package
//go:generate gomarkdoc -o ./cmd/tiktoken/README.md -e ./cmd/tiktoken --embed --repository.url https://github.com/gotiktoken/tiktoken --repository.default-branch main --repository.path /cmd/tiktoken
