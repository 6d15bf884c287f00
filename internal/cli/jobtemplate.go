package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newJobTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job-template",
		Aliases: []string{"jt"},
		Short:   "Manage job templates",
	}

	cmd.AddCommand(newListCmd(client.JobTemplate))
	cmd.AddCommand(newShowCmd(client.JobTemplate))
	cmd.AddCommand(newCreateCmd(client.JobTemplate, jobTemplateFields))
	cmd.AddCommand(newSetCmd(client.JobTemplate, jobTemplateFields))
	cmd.AddCommand(newDeleteCmd(client.JobTemplate))

	return cmd
}

func jobTemplateFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "job template description")
	flags.String("project", "", "project supplying the playbook")
	flags.String("inventory", "", "inventory to run against")
	flags.String("playbook", "", "playbook path within the project")
	flags.String("job-type", "", "job type: run or check")

	return func(ctx context.Context) (map[string]any, error) {
		fields := map[string]any{}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			fields["description"] = v
		}
		if flags.Changed("project") {
			v, _ := flags.GetString("project")
			id, err := resolveFK(ctx, client.Project, v)
			if err != nil {
				return nil, err
			}
			fields["project"] = id
		}
		if flags.Changed("inventory") {
			v, _ := flags.GetString("inventory")
			id, err := resolveFK(ctx, client.Inventory, v)
			if err != nil {
				return nil, err
			}
			fields["inventory"] = id
		}
		if flags.Changed("playbook") {
			v, _ := flags.GetString("playbook")
			fields["playbook"] = v
		}
		if flags.Changed("job-type") {
			v, _ := flags.GetString("job-type")
			fields["job_type"] = v
		}
		return fields, nil
	}
}
