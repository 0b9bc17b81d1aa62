// cmd/creational/main.go
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. It exists separately from main to
// allow unit testing without os.Exit.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "creational",
		Short: "Run the creational design pattern demos",
		Long: `creational runs three classic creational pattern demos — Builder,
Factory Method and Abstract Factory — printing each demo's deterministic
transcript to standard output. With no arguments all three run sequentially.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAll(cmd.OutOrStdout())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "builder",
			Short: "Run the Builder demo (Cook directs pizza builders)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runBuilderDemo(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "factorymethod",
			Short: "Run the Factory Method demo (document registry with a creation hook)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runFactoryMethodDemo(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "abstractfactory",
			Short: "Run the Abstract Factory demo (shape families)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAbstractFactoryDemo(cmd.OutOrStdout())
			},
		},
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
