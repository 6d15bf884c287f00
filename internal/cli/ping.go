package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/aapctl/pkg/client"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test connectivity to both platform APIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			gw, err := apiClient.Ping(ctx, client.Gateway)
			if err != nil {
				return fmt.Errorf("gateway ping: %w", err)
			}
			ctrl, err := apiClient.Ping(ctx, client.Controller)
			if err != nil {
				return fmt.Errorf("controller ping: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(map[string]any{
					"gateway":    gw,
					"controller": ctrl,
				})
			}

			names := []string{"Service Status", "AAP Version", "Gateway Response Time"}
			values := []string{gw.Status, gw.Version, gw.ResponseTime.Round(time.Millisecond).String()}
			names = append(names, "Database Connected", "Proxy Connected")
			values = append(values, yesNo(gw.DBConnected), yesNo(gw.ProxyConnected))

			names = append(names, "Controller Version", "Controller Response Time")
			values = append(values, ctrl.Version, ctrl.ResponseTime.Round(time.Millisecond).String())
			if ctrl.ActiveNode != "" {
				names = append(names, "Active Node", "High Availability")
				values = append(values, ctrl.ActiveNode, yesNo(ctrl.HA))
			}

			renderFields(names, values)
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
