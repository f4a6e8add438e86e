package commands

import (
	"fmt"

	"github.com/npillmayer/shadowcss/css"
	"github.com/npillmayer/shadowcss/internal/rulefile"
	"github.com/spf13/cobra"
)

func serializeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serialize [rules-file]",
		Short: "Print the CSS text for a rule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rulefile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), css.Serialize(rules...))
			return nil
		},
	}
	return cmd
}
