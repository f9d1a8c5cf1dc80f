package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roey132/n8n-one-click-setup/internal/logger"
	"github.com/roey132/n8n-one-click-setup/internal/n8nctl"
	"github.com/roey132/n8n-one-click-setup/internal/tui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "n8nctl",
		Short:         "one-command n8n deployment behind nginx",
		Long:          "n8nctl converges a fresh Ubuntu/Debian host into a running n8n stack:\ndocker compose behind nginx, optional redis queue backend and Let's Encrypt TLS,\nand a systemd unit that brings everything back after reboot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newUpCmd(),
		newSetupCmd(),
		newDoctorCmd(),
		newStatusCmd(),
		newDownCmd(),
		newVersionCmd(),
	)
	return root
}

func newUpCmd() *cobra.Command {
	var withRedis bool

	cmd := &cobra.Command{
		Use:   "up [env-file]",
		Short: "provision the host and start the stack",
		Long: `Runs the full convergence pipeline: install packages, open firewall
ports (when ufw is active), stage the deployment directory, start the
compose stack, configure nginx (and TLS when enabled), and register the
boot unit. Safe to re-run; existing data is never touched.

The environment file is resolved in order: the given path, ./.env,
./.env.example.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envPath := ""
			if len(args) == 1 {
				envPath = args[0]
			}
			return n8nctl.RunUp(envPath, withRedis)
		},
	}
	cmd.Flags().BoolVar(&withRedis, "redis", false, "deploy the redis queue backend")
	return cmd
}

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "interactive setup wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := n8nctl.RequireRoot(); err != nil {
				return err
			}
			return tui.StartWizard()
		},
	}
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "check host readiness without changing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			return n8nctl.RunDoctor()
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show the deployed stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			return n8nctl.RunStatus()
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "stop the stack (data volumes are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return n8nctl.RunDown()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the n8nctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("n8nctl", version)
		},
	}
}
