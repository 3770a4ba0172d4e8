package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gotiktoken/tiktoken/registry"
)

// newListCmd creates the list-encodings and list-models subcommands,
// grouped under a single parent the way the teacher's CLI groups related
// read-only operations.
func newListCmd() *cobra.Command {
	parent := &cobra.Command{
		Use:   "list",
		Short: "List known encodings or models",
	}

	parent.AddCommand(&cobra.Command{
		Use:   "encodings",
		Short: "List known encoding names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := registry.ListEncodings()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	})

	parent.AddCommand(&cobra.Command{
		Use:   "models",
		Short: "List known model names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := registry.ListSupportedModels()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	})

	return parent
}
