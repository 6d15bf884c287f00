package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Manage inventories",
	}

	cmd.AddCommand(newListCmd(client.Inventory))
	cmd.AddCommand(newShowCmd(client.Inventory))
	cmd.AddCommand(newCreateCmd(client.Inventory, inventoryFields))
	cmd.AddCommand(newSetCmd(client.Inventory, inventoryFields))
	cmd.AddCommand(newDeleteCmd(client.Inventory))

	return cmd
}

func inventoryFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "inventory description")
	flags.String("organization", "", "organization the inventory belongs to")
	flags.String("variables", "", "inventory variables (JSON or YAML)")

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
		if flags.Changed("variables") {
			v, _ := flags.GetString("variables")
			fields["variables"] = v
		}
		return fields, nil
	}
}
