package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(newListCmd(client.Project))
	cmd.AddCommand(newShowCmd(client.Project))
	cmd.AddCommand(newCreateCmd(client.Project, projectFields))
	cmd.AddCommand(newSetCmd(client.Project, projectFields))
	cmd.AddCommand(newDeleteCmd(client.Project))

	return cmd
}

func projectFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "project description")
	flags.String("organization", "", "organization the project belongs to")
	flags.String("scm-type", "", "source control type (git, svn, archive)")
	flags.String("scm-url", "", "source control URL")
	flags.String("scm-branch", "", "source control branch, tag or commit")

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
		if flags.Changed("scm-type") {
			v, _ := flags.GetString("scm-type")
			fields["scm_type"] = v
		}
		if flags.Changed("scm-url") {
			v, _ := flags.GetString("scm-url")
			fields["scm_url"] = v
		}
		if flags.Changed("scm-branch") {
			v, _ := flags.GetString("scm-branch")
			fields["scm_branch"] = v
		}
		return fields, nil
	}
}
