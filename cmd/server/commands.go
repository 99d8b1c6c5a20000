package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redhat-appstudio/appconfig/internal/config"
	"github.com/redhat-appstudio/appconfig/internal/server"
	"github.com/redhat-appstudio/appconfig/internal/version"
	"github.com/redhat-appstudio/appconfig/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/toon-format/toon-go"
	"gopkg.in/yaml.v3"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	flags := &ServerFlags{}

	cmd := &cobra.Command{
		Use:   "appconfig",
		Short: "Serve the source log-level table and environment mode",
		Long: `appconfig exposes the application's log-level severity table
(DEBUG=10 .. CRITICAL=50) and its deployment mode over a read-only HTTP API.

Configuration precedence: flags, environment variables, configs/config.yaml, defaults.`,
		Version:       version.GetBuildInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			return runServer(cmd.Context(), flags)
		},
	}
	flags.bind(cmd)

	cmd.AddCommand(newLevelsCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runServer(ctx context.Context, flags *ServerFlags) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadWithFlags(flags)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	logger.Infof("Starting on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Env())
	logger.Infof("Log level: %s (%d)", cfg.Severity(), cfg.Severity())
	if cfg.Storage.Redis.Enabled {
		logger.Infof("Snapshot publishing: enabled (key prefix: %s)", cfg.Storage.Redis.KeyPrefix)
	} else {
		logger.Infof("Snapshot publishing: disabled")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newLevelsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the log-level severity table",
		Long: `Print the log-level severity table. The entry matching the configured
threshold (LOG_LEVEL or configs/config.yaml) is marked active.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLevels(cmd.OutOrStdout(), output, config.LoadCached().Severity())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, yaml, toon")
	return cmd
}

type levelRow struct {
	Name     string `json:"name" yaml:"name" toon:"name"`
	Severity int    `json:"severity" yaml:"severity" toon:"severity"`
	Active   bool   `json:"active" yaml:"active" toon:"active"`
}

func levelRows(active config.Severity) []levelRow {
	names := config.LevelNames()
	rows := make([]levelRow, 0, len(names))
	for _, name := range names {
		sev, _ := config.LookupLevel(name)
		rows = append(rows, levelRow{Name: name, Severity: int(sev), Active: sev == active})
	}
	return rows
}

func printLevels(w io.Writer, output string, active config.Severity) error {
	rows := levelRows(active)

	var (
		out []byte
		err error
	)
	switch output {
	case "table":
		data := pterm.TableData{{"LEVEL", "SEVERITY", "ACTIVE"}}
		for _, r := range rows {
			marker := ""
			if r.Active {
				marker = "*"
			}
			data = append(data, []string{r.Name, strconv.Itoa(r.Severity), marker})
		}
		var rendered string
		rendered, err = pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		out = []byte(rendered + "\n")
	case "json":
		out, err = json.MarshalIndent(rows, "", "  ")
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(rows)
	case "toon":
		out, err = toon.Marshal(map[string]any{"levels": rows})
		out = append(out, '\n')
	default:
		return errors.New("unknown output format " + strconv.Quote(output) + " (must be one of: table, json, yaml, toon)")
	}
	if err != nil {
		return fmt.Errorf("failed to render levels: %w", err)
	}

	_, err = w.Write(out)
	return err
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(version.GetInfo())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}
			_, err := fmt.Fprintf(w, "appconfig %s\n", version.GetBuildInfo())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	return cmd
}
