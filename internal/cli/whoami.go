package cli

import (
	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := apiClient.Me(cmd.Context())
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(rec)
			}
			useUTC, _ := cmd.Flags().GetBool("utc")
			names, values := recordFields(rec, client.DescriptorFor(client.User), useUTC)
			renderFields(names, values)
			return nil
		},
	}

	cmd.Flags().Bool("utc", false, "display timestamps in UTC (default: local time)")
	return cmd
}
