package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pratik-mahalle/aapctl/internal/config"
	"github.com/pratik-mahalle/aapctl/pkg/client"
)

// newLoginCmd obtains a personal access token with basic credentials and
// stores it in the config file, so later invocations need no password.
func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain and store an access token",
		Args:  cobra.NoArgs,
		// Login builds its own client from prompted credentials.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := config.Load()
			if err != nil {
				return err
			}
			if hostFlag != "" {
				conn.Host = hostFlag
			}
			if conn.Host == "" {
				conn.Host = viper.GetString("host")
			}
			if username != "" {
				conn.Username = username
			}
			if conn.Username == "" {
				conn.Username = promptInput("Username: ")
			}
			if password != "" {
				conn.Password = password
			} else if conn.Password == "" {
				conn.Password = promptPassword("Password: ")
			}
			conn.Token = ""
			if insecureFlag {
				conn.VerifySSL = false
			}
			if err := conn.Validate(); err != nil {
				return err
			}

			c := client.NewClient(client.Config{
				BaseURL:            conn.Host,
				Username:           conn.Username,
				Password:           conn.Password,
				Timeout:            conn.Timeout,
				InsecureSkipVerify: !conn.VerifySSL,
			})

			token, err := c.CreateToken(cmd.Context(), "aapctl login")
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			viper.Set("auth.token", token)
			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s as %s\n", conn.Host, conn.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (overrides AAP_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func promptInput(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	data, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
