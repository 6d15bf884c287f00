package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pratik-mahalle/aapctl/internal/config"
	"github.com/pratik-mahalle/aapctl/internal/pkg/logger"
	"github.com/pratik-mahalle/aapctl/pkg/client"
)

var (
	cfgFile      string
	outputFormat string
	hostFlag     string
	insecureFlag bool
	logLevel     string
	apiClient    *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "aapctl",
	Short: "Command-line client for the Ansible Automation Platform",
	Long: `aapctl manages Ansible Automation Platform resources from the command
line: organizations, teams and users on the identity (gateway) API, and
projects, inventories, hosts, credentials, execution environments and job
templates on the automation (controller) API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config management needs no connection.
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}
		return initClient()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. The returned error has already been mapped
// into the client's error taxonomy.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.aapctl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "platform URL (overrides AAP_HOST)")
	rootCmd.PersistentFlags().BoolVarP(&insecureFlag, "insecure", "k", false, "skip TLS certificate verification")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error, quiet")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newPingCmd())
	rootCmd.AddCommand(newWhoamiCmd())

	rootCmd.AddCommand(newOrganizationCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newInventoryCmd())
	rootCmd.AddCommand(newHostCmd())
	rootCmd.AddCommand(newCredentialCmd())
	rootCmd.AddCommand(newExecutionEnvironmentCmd())
	rootCmd.AddCommand(newJobTemplateCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		viper.AddConfigPath(home + "/.aapctl")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("AAP")
	viper.AutomaticEnv()
	viper.SetDefault("output", "table")

	_ = viper.ReadInConfig()
}

func initClient() error {
	conn, err := config.Load()
	if err != nil {
		return err
	}

	// Config file and flags override the environment.
	if host := viper.GetString("host"); host != "" {
		conn.Host = host
	}
	if hostFlag != "" {
		conn.Host = hostFlag
	}
	if conn.Token == "" {
		conn.Token = viper.GetString("auth.token")
	}
	if insecureFlag {
		conn.VerifySSL = false
	}

	if err := conn.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: logLevel, Format: "console"}).GetZerolog()
	apiClient = client.NewClient(client.Config{
		BaseURL:            conn.Host,
		Username:           conn.Username,
		Password:           conn.Password,
		Token:              conn.Token,
		Timeout:            conn.Timeout,
		InsecureSkipVerify: !conn.VerifySSL,
		Logger:             &log,
	})
	return nil
}

func getOutputFormat() string {
	if outputFormat != "" && outputFormat != "table" {
		return outputFormat
	}
	return viper.GetString("output")
}
