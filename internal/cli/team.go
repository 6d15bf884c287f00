package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}

	cmd.AddCommand(newListCmd(client.Team))
	cmd.AddCommand(newShowCmd(client.Team))
	cmd.AddCommand(newCreateCmd(client.Team, teamFields))
	cmd.AddCommand(newSetCmd(client.Team, teamFields))
	cmd.AddCommand(newDeleteCmd(client.Team))

	return cmd
}

func teamFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "team description")
	flags.String("organization", "", "organization the team belongs to")

	return func(ctx context.Context) (map[string]any, error) {
		fields := map[string]any{}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			fields["description"] = v
		}
		if flags.Changed("organization") {
			v, _ := flags.GetString("organization")
			id, err := resolveFK(ctx, client.Organization, v)
			if err != nil {
				return nil, err
			}
			fields["organization"] = id
		}
		return fields, nil
	}
}

// resolveFK resolves a foreign-key flag value (a name) to the related
// resource's ID.
func resolveFK(ctx context.Context, rt client.ResourceType, value string) (int64, error) {
	rec, err := client.Resolve(ctx, apiClient.Collection(rt), client.Identifier{Positional: value}, 0)
	if err != nil {
		return 0, err
	}
	return rec.ID(), nil
}
