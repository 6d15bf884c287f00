package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newOrganizationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "organization",
		Aliases: []string{"org"},
		Short:   "Manage organizations",
	}

	cmd.AddCommand(newListCmd(client.Organization))
	cmd.AddCommand(newShowCmd(client.Organization))
	cmd.AddCommand(newCreateCmd(client.Organization, organizationFields))
	cmd.AddCommand(newSetCmd(client.Organization, organizationFields))
	cmd.AddCommand(newDeleteCmd(client.Organization))

	return cmd
}

func organizationFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "organization description")
	flags.Int("max-hosts", 0, "maximum number of hosts allowed in this organization")

	return func(ctx context.Context) (map[string]any, error) {
		fields := map[string]any{}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			fields["description"] = v
		}
		if flags.Changed("max-hosts") {
			v, _ := flags.GetInt("max-hosts")
			fields["max_hosts"] = v
		}
		return fields, nil
	}
}
