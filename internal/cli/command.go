package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

// fieldRegistrar registers a resource type's attribute flags on a command
// and returns a collector that yields only the flags the user actually set.
// The same registrar serves create and set, so attribute flags stay
// consistent between the two.
type fieldRegistrar func(cmd *cobra.Command) func(ctx context.Context) (map[string]any, error)

// scopeTypes maps a descriptor's scope field to the resource type that
// resolves it. Scope flag values are names, subject to the same resolution
// rules as any other identifier.
var scopeTypes = map[string]client.ResourceType{
	"inventory": client.Inventory,
}

// addIdentifierFlags wires the --id/--name pair used by show, set and
// delete. A bare positional is always a name; --id is the only ID path.
func addIdentifierFlags(cmd *cobra.Command, d client.Descriptor) {
	cmd.Flags().Int64("id", 0, d.Display+" ID")
	cmd.Flags().String(d.NameField, "", d.Display+" "+d.NameField)
}

func identifierFrom(cmd *cobra.Command, args []string, d client.Descriptor) client.Identifier {
	ident := client.Identifier{}
	if len(args) > 0 {
		ident.Positional = args[0]
	}
	ident.ID, _ = cmd.Flags().GetInt64("id")
	ident.Name, _ = cmd.Flags().GetString(d.NameField)
	return ident
}

// addScopeFlag registers the scope flag (e.g. --inventory for hosts).
func addScopeFlag(cmd *cobra.Command, d client.Descriptor) {
	if d.ScopeField == "" {
		return
	}
	scopeDisplay := client.DescriptorFor(scopeTypes[d.ScopeField]).Display
	cmd.Flags().String(d.ScopeField, "", scopeDisplay+" name the "+strings.ToLower(d.Display)+" belongs to")
}

// resolveScope turns the scope flag into a concrete ID, or 0 when unset.
func resolveScope(ctx context.Context, cmd *cobra.Command, d client.Descriptor, required bool) (int64, error) {
	if d.ScopeField == "" {
		return 0, nil
	}
	val, _ := cmd.Flags().GetString(d.ScopeField)
	if val == "" {
		if required {
			return 0, &client.Error{
				Kind:    client.KindInvalidArgument,
				Message: fmt.Sprintf("--%s is required for %s", d.ScopeField, strings.ToLower(d.Display)),
			}
		}
		return 0, nil
	}
	scopeCol := apiClient.Collection(scopeTypes[d.ScopeField])
	rec, err := client.Resolve(ctx, scopeCol, client.Identifier{Positional: val}, 0)
	if err != nil {
		return 0, err
	}
	return rec.ID(), nil
}

func newListCmd(rt client.ResourceType) *cobra.Command {
	d := client.DescriptorFor(rt)
	lower := strings.ToLower(d.Display)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + lower + "s",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, _ := cmd.Flags().GetInt("limit")
			pr, err := client.BuildPageRequest(limit, cmd.Flags().Changed("limit"))
			if err != nil {
				return err
			}

			filters := url.Values{}
			scopeID, err := resolveScope(ctx, cmd, d, false)
			if err != nil {
				return err
			}
			if scopeID != 0 {
				filters.Set(d.ScopeField, strconv.FormatInt(scopeID, 10))
			}

			lr, err := apiClient.Collection(rt).List(ctx, filters, pr)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				records, err := lr.All(ctx)
				if err != nil {
					return err
				}
				return printOutput(records)
			}

			headers := make([]string, len(d.Columns))
			for i, c := range d.Columns {
				headers[i] = strings.ToUpper(c.Header)
			}
			t := NewTable(headers...)

			shown := 0
			for shown < pr.PageSize {
				rec, ok, err := lr.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				row := make([]string, len(d.Columns))
				for i, c := range d.Columns {
					row[i] = truncate(c.Value(rec), 40)
				}
				t.AddRow(row...)
				shown++
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d %ss\n", shown, lr.Count(), lower)
			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "limit the number of results returned (default 20)")
	addScopeFlag(cmd, d)
	return cmd
}

func newShowCmd(rt client.ResourceType) *cobra.Command {
	d := client.DescriptorFor(rt)
	lower := strings.ToLower(d.Display)

	cmd := &cobra.Command{
		Use:   "show [<" + lower + ">]",
		Short: "Show " + lower + " details",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			scopeID, err := resolveScope(ctx, cmd, d, false)
			if err != nil {
				return err
			}

			rec, err := client.Resolve(ctx, apiClient.Collection(rt), identifierFrom(cmd, args, d), scopeID)
			if err != nil {
				return err
			}

			if getOutputFormat() != "table" {
				return printOutput(rec)
			}
			useUTC, _ := cmd.Flags().GetBool("utc")
			names, values := recordFields(rec, d, useUTC)
			renderFields(names, values)
			return nil
		},
	}

	addIdentifierFlags(cmd, d)
	addScopeFlag(cmd, d)
	cmd.Flags().Bool("utc", false, "display timestamps in UTC (default: local time)")
	return cmd
}

func newCreateCmd(rt client.ResourceType, fields fieldRegistrar) *cobra.Command {
	d := client.DescriptorFor(rt)
	lower := strings.ToLower(d.Display)

	cmd := &cobra.Command{
		Use:   "create <" + d.NameField + ">",
		Short: "Create a new " + lower,
		Args:  cobra.ExactArgs(1),
	}

	var collect func(ctx context.Context) (map[string]any, error)
	if fields != nil {
		collect = fields(cmd)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := args[0]

		scopeID, err := resolveScope(ctx, cmd, d, true)
		if err != nil {
			return err
		}

		payload := map[string]any{}
		if collect != nil {
			payload, err = collect(ctx)
			if err != nil {
				return err
			}
		}
		if scopeID != 0 {
			payload[d.ScopeField] = scopeID
		}

		rec, err := apiClient.Collection(rt).CreateNamed(ctx, name, payload, scopeID)
		if err != nil {
			return err
		}

		fmt.Printf("%s %q created successfully\n", d.Display, rec.Str(d.NameField))
		if getOutputFormat() != "table" {
			return printOutput(rec)
		}
		names, values := recordFields(rec, d, false)
		renderFields(names, values)
		return nil
	}

	addScopeFlag(cmd, d)
	return cmd
}

func newSetCmd(rt client.ResourceType, fields fieldRegistrar) *cobra.Command {
	d := client.DescriptorFor(rt)
	lower := strings.ToLower(d.Display)
	renameFlag := "set-" + d.NameField

	cmd := &cobra.Command{
		Use:   "set [<" + lower + ">]",
		Short: "Update an existing " + lower,
		Args:  cobra.MaximumNArgs(1),
	}

	var collect func(ctx context.Context) (map[string]any, error)
	if fields != nil {
		collect = fields(cmd)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		scopeID, err := resolveScope(ctx, cmd, d, false)
		if err != nil {
			return err
		}

		rec, err := client.Resolve(ctx, apiClient.Collection(rt), identifierFrom(cmd, args, d), scopeID)
		if err != nil {
			return err
		}

		payload := map[string]any{}
		if collect != nil {
			payload, err = collect(ctx)
			if err != nil {
				return err
			}
		}
		if newName, _ := cmd.Flags().GetString(renameFlag); cmd.Flags().Changed(renameFlag) {
			payload[d.NameField] = newName
		}
		if len(payload) == 0 {
			return fmt.Errorf("no update fields provided")
		}

		updated, err := apiClient.Collection(rt).Update(ctx, rec.ID(), payload)
		if err != nil {
			return err
		}

		// The success message references the post-update name, never the ID.
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q updated successfully\n", d.Display, updated.Str(d.NameField))
		return nil
	}

	addIdentifierFlags(cmd, d)
	addScopeFlag(cmd, d)
	cmd.Flags().String(renameFlag, "", "new "+d.NameField+" for the "+lower)
	return cmd
}

func newDeleteCmd(rt client.ResourceType) *cobra.Command {
	d := client.DescriptorFor(rt)
	lower := strings.ToLower(d.Display)

	cmd := &cobra.Command{
		Use:   "delete [<" + lower + "> ...]",
		Short: "Delete one or more " + lower + "s",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ids, _ := cmd.Flags().GetInt64Slice("id")
			idents := gatherIdentifiers(args, ids)
			if len(idents) == 0 {
				return fmt.Errorf("%s identifier is required", lower)
			}

			scopeID, err := resolveScope(ctx, cmd, d, false)
			if err != nil {
				return err
			}

			// Every identifier is attempted, in the order given; one
			// failure never aborts the rest.
			out := cmd.OutOrStdout()
			col := apiClient.Collection(rt)
			failed := 0
			for _, ident := range idents {
				label := identifierLabel(ident)
				rec, err := client.Resolve(ctx, col, ident, scopeID)
				if err == nil {
					err = col.Delete(ctx, rec.ID())
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "failed to delete %s %s: %v\n", lower, label, err)
					continue
				}
				fmt.Fprintf(out, "%s %q deleted successfully\n", d.Display, rec.Str(d.NameField))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d deletions failed", failed, len(idents))
			}
			return nil
		},
	}

	cmd.Flags().Int64Slice("id", nil, d.Display+" ID (repeatable)")
	addScopeFlag(cmd, d)
	return cmd
}

// gatherIdentifiers builds the ordered identifier list for a delete. Names
// come before IDs. The one special case: a single name plus a single --id is
// one identifier, cross-validated, matching show and set semantics.
func gatherIdentifiers(names []string, ids []int64) []client.Identifier {
	if len(names) == 1 && len(ids) == 1 {
		return []client.Identifier{{Positional: names[0], ID: ids[0]}}
	}
	idents := make([]client.Identifier, 0, len(names)+len(ids))
	for _, n := range names {
		idents = append(idents, client.Identifier{Positional: n})
	}
	for _, id := range ids {
		idents = append(idents, client.Identifier{ID: id})
	}
	return idents
}

func identifierLabel(ident client.Identifier) string {
	if ident.Positional != "" {
		return strconv.Quote(ident.Positional)
	}
	if ident.Name != "" {
		return strconv.Quote(ident.Name)
	}
	return "ID " + strconv.FormatInt(ident.ID, 10)
}
