package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"merchant-reporting-bff/config"
	"merchant-reporting-bff/internal/adapter/upstream"
	"merchant-reporting-bff/internal/core/ports"
	"merchant-reporting-bff/internal/service"
	"merchant-reporting-bff/pkg/apperror"
	"merchant-reporting-bff/pkg/logger"

	"github.com/spf13/cobra"
)

// app holds the services built from config before any subcommand runs.
type app struct {
	configPath string
	token      string

	users   ports.UserService
	reports ports.ReportService
	clients ports.ClientService
	out     io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "reportctl",
		Short:         "Query the merchant reporting API from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.token, "token", os.Getenv("BFF_TOKEN"), "upstream token (default $BFF_TOKEN)")

	root.AddCommand(loginCmd(a))
	root.AddCommand(userInfoCmd(a))
	root.AddCommand(refundsCmd(a))
	root.AddCommand(clientInfoCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.NewWithWriter(cfg.Log.Level, cmd.ErrOrStderr())
	up := upstream.NewClient(upstream.NewHTTPClient(cfg.Upstream.Timeout), cfg.Upstream.AuthScheme, log)

	a.users = service.NewUserService(up, cfg.Upstream.Login.URL, cfg.Upstream.Info.URL, log)
	a.reports = service.NewReportService(up, cfg.Upstream.Report.URL, log)
	a.clients = service.NewClientService(up, cfg.Upstream.Client.URL, log)
	a.out = cmd.OutOrStdout()
	return nil
}

// requireToken is the local guard for commands that act on a user's behalf.
func (a *app) requireToken() (string, error) {
	if a.token == "" {
		return "", apperror.ErrMissingToken()
	}
	return a.token, nil
}

// print writes v as indented JSON. A nil result prints nothing.
func (a *app) print(v any) error {
	if v == nil {
		return nil
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
