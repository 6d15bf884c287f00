package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newListCmd(client.User))
	cmd.AddCommand(newShowCmd(client.User))
	cmd.AddCommand(newCreateCmd(client.User, userFields))
	cmd.AddCommand(newSetCmd(client.User, userFields))
	cmd.AddCommand(newDeleteCmd(client.User))

	return cmd
}

func userFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("email", "", "user email address")
	flags.String("first-name", "", "user first name")
	flags.String("last-name", "", "user last name")
	flags.String("password", "", "user password")
	flags.Bool("superuser", false, "grant superuser privileges")

	return func(ctx context.Context) (map[string]any, error) {
		fields := map[string]any{}
		if flags.Changed("email") {
			v, _ := flags.GetString("email")
			fields["email"] = v
		}
		if flags.Changed("first-name") {
			v, _ := flags.GetString("first-name")
			fields["first_name"] = v
		}
		if flags.Changed("last-name") {
			v, _ := flags.GetString("last-name")
			fields["last_name"] = v
		}
		if flags.Changed("password") {
			v, _ := flags.GetString("password")
			fields["password"] = v
		}
		if flags.Changed("superuser") {
			v, _ := flags.GetBool("superuser")
			fields["is_superuser"] = v
		}
		return fields, nil
	}
}
