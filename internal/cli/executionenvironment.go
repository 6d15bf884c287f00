package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newExecutionEnvironmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "execution-environment",
		Aliases: []string{"ee"},
		Short:   "Manage execution environments",
	}

	cmd.AddCommand(newListCmd(client.ExecutionEnvironment))
	cmd.AddCommand(newShowCmd(client.ExecutionEnvironment))
	cmd.AddCommand(newCreateCmd(client.ExecutionEnvironment, executionEnvironmentFields))
	cmd.AddCommand(newSetCmd(client.ExecutionEnvironment, executionEnvironmentFields))
	cmd.AddCommand(newDeleteCmd(client.ExecutionEnvironment))

	return cmd
}

func executionEnvironmentFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "execution environment description")
	flags.String("image", "", "container image reference")
	flags.String("organization", "", "organization the execution environment belongs to")
	flags.String("pull", "", "image pull policy: always, missing, never")

	return func(ctx context.Context) (map[string]any, error) {
		fields := map[string]any{}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			fields["description"] = v
		}
		if flags.Changed("image") {
			v, _ := flags.GetString("image")
			fields["image"] = v
		}
		if flags.Changed("organization") {
			v, _ := flags.GetString("organization")
			id, err := resolveFK(ctx, client.Organization, v)
			if err != nil {
				return nil, err
			}
			fields["organization"] = id
		}
		if flags.Changed("pull") {
			v, _ := flags.GetString("pull")
			fields["pull"] = v
		}
		return fields, nil
	}
}
