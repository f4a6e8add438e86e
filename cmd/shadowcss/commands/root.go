package commands

import (
	"github.com/spf13/cobra"
)

// Execute runs the shadowcss CLI.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shadowcss",
		Short:        "Serialize typed CSS rules and adopt them into shadow roots",
		SilenceUsage: true,
	}
	root.AddCommand(serializeCmd(), adoptCmd())
	return root
}
