package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newCredentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage credentials",
	}

	cmd.AddCommand(newListCmd(client.Credential))
	cmd.AddCommand(newShowCmd(client.Credential))
	cmd.AddCommand(newCreateCmd(client.Credential, credentialFields))
	cmd.AddCommand(newSetCmd(client.Credential, credentialFields))
	cmd.AddCommand(newDeleteCmd(client.Credential))

	return cmd
}

func credentialFields(cmd *cobra.Command) func(context.Context) (map[string]any, error) {
	flags := cmd.Flags()
	flags.String("description", "", "credential description")
	flags.String("organization", "", "organization the credential belongs to")
	flags.String("credential-type", "", "credential type name (e.g. \"Machine\")")

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
		if flags.Changed("credential-type") {
			v, _ := flags.GetString("credential-type")
			id, err := resolveFK(ctx, client.CredentialType, v)
			if err != nil {
				return nil, err
			}
			fields["credential_type"] = id
		}
		return fields, nil
	}
}
