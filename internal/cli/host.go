package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

// Hosts are the one scoped resource type: their names are unique only
// within an inventory, so every host command accepts --inventory to
// disambiguate.
func newHostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Manage inventory hosts",
	}

	cmd.AddCommand(newListCmd(client.Host))
	cmd.AddCommand(newShowCmd(client.Host))
	cmd.AddCommand(newCreateCmd(client.Host, hostFields))
	cmd.AddCommand(newSetCmd(client.Host, hostFields))
	cmd.AddCommand(newDeleteCmd(client.Host))

	return cmd
}

func hostFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "host description")
	flags.String("variables", "", "host variables (JSON or YAML)")
	flags.Bool("enabled", true, "whether the host is available to run jobs on")

	return func(ctx context.Context) (map[string]any, error) {
		fields := map[string]any{}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			fields["description"] = v
		}
		if flags.Changed("variables") {
			v, _ := flags.GetString("variables")
			fields["variables"] = v
		}
		if flags.Changed("enabled") {
			v, _ := flags.GetBool("enabled")
			fields["enabled"] = v
		}
		return fields, nil
	}
}
