package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stackwatch/checkstack/internal/app"
	appconfig "github.com/stackwatch/checkstack/internal/application/config"
	"github.com/stackwatch/checkstack/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// Execute runs the CLI and returns the process exit code. Exit codes follow
// the Nagios convention: 0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN. Usage and
// wiring errors also exit 3 so the scheduler always receives a valid code.
func Execute(ctx context.Context, opts Options, args []string) int {
	exitCode := domain.StatusUnknown.ExitCode()

	root, cleanup, err := NewRootCmd(ctx, opts, &exitCode)
	if err != nil {
		fmt.Fprintf(os.Stdout, "CHECK %s - %v\n", domain.StatusUnknown, err)
		return domain.StatusUnknown.ExitCode()
	}
	defer cleanup()

	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stdout, "CHECK %s - %v\n", domain.StatusUnknown, err)
		return domain.StatusUnknown.ExitCode()
	}
	return exitCode
}

// NewRootCmd wires the cobra root command. The exit code of the performed
// check is written through exitCode.
func NewRootCmd(ctx context.Context, opts Options, exitCode *int) (*cobra.Command, func(), error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if container.CloseLogger != nil {
			_ = container.CloseLogger()
		}
	}

	var (
		service  string
		endpoint string
		user     string
		password string
		timeout  time.Duration
		insecure bool
	)

	root := &cobra.Command{
		Use:   "checkstack",
		Short: "Health-check probe for Elasticsearch, Kibana and Logstash",
		Long: "checkstack performs a single health check against one Elastic stack service\n" +
			"and reports a Nagios-compatible status line and exit code.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.Config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := appconfig.Validate(cfg); err != nil {
				return err
			}

			if endpoint == "" {
				if kind, ok := domain.ParseServiceKind(service); ok {
					endpoint = cfg.EndpointFor(kind)
				}
			}
			if endpoint == "" {
				return fmt.Errorf("--endpoint is required (no default configured for %q)", service)
			}
			if timeout <= 0 {
				timeout = cfg.Timeout()
			}
			if !cmd.Flags().Changed("insecure") {
				insecure = cfg.Defaults.Insecure
			}

			req := domain.CheckRequest{
				Service: service,
				Endpoint: domain.EndpointConfig{
					BaseURL:  endpoint,
					User:     user,
					Password: password,
					Timeout:  timeout,
					Insecure: insecure,
				},
			}

			result := container.CheckService.Run(cmd.Context(), req)
			fmt.Fprintln(cmd.OutOrStdout(), RenderResult(service, result))
			*exitCode = result.Level.ExitCode()
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&service, "check", "", "Service to check (elasticsearch|kibana|logstash)")
	root.Flags().StringVar(&endpoint, "endpoint", "", "Service base URL (default from config)")
	root.Flags().StringVar(&user, "user", "", "Username for basic authentication")
	root.Flags().StringVar(&password, "password", "", "Password for basic authentication")
	root.Flags().DurationVar(&timeout, "timeout", 0, "Request timeout override (default from config)")
	root.Flags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	_ = root.MarkFlagRequired("check")
	_ = root.MarkFlagRequired("user")
	_ = root.MarkFlagRequired("password")

	root.AddCommand(newVersionCommand(exitCode))
	return root, cleanup, nil
}
