package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"check_hddtemp/internal/config"
	"check_hddtemp/internal/logger"
	"check_hddtemp/internal/metrics"
	"check_hddtemp/internal/repository"
	"check_hddtemp/internal/service"

	nagios "github.com/atc0005/go-nagios"
	"github.com/spf13/cobra"
)

const version = "1.2.3"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one check and returns the process exit code. Stdout gets
// only the status line (or a single ERROR line); logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	exitCode := nagios.StateUNKNOWNExitCode

	cmd := &cobra.Command{
		Use:           "check_hddtemp",
		Short:         "Check HDD temperature via the hddtemp daemon",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			exitCode = check(cmd.Context(), cfg, stdout, stderr)
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.RegisterFlags(cmd.Flags())

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stdout, "ERROR: %v\n", err)
		return nagios.StateUNKNOWNExitCode
	}
	if cmd.Flags().Changed("version") || cmd.Flags().Changed("help") {
		return nagios.StateOKExitCode
	}
	return exitCode
}

// loadConfig merges flags, HDDTEMP_* environment and the optional config file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ReadFile(v); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// check runs the pipeline and prints its result. Communication and parsing
// failures print a diagnostic unless quiet is set; both exit UNKNOWN.
func check(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) int {
	level := cfg.LogLevel
	if cfg.Quiet {
		level = logger.OffLevel
	}
	log := logger.New(level, stderr)
	defer func() { _ = log.Sync() }()

	repos := repository.NewRepository(cfg.Address(), cfg.Timeout)
	services := service.NewService(repos, service.CheckParams{
		Devices:     cfg.Devices,
		Separator:   cfg.Separator,
		Thresholds:  cfg.Thresholds(),
		Performance: cfg.Performance,
	}, log)

	report, err := services.Check(ctx)
	if err != nil {
		if !cfg.Quiet {
			fmt.Fprintf(stdout, "ERROR: %s\n", diagnostic(err))
		}
		return nagios.StateUNKNOWNExitCode
	}

	fmt.Fprint(stdout, report.Output)

	if cfg.MetricsFile != "" {
		m := metrics.NewCheckMetrics()
		m.Observe(report.Devices, report.Overall)
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warnw("metrics export failed", "err", err)
		}
	}
	return report.ExitCode
}

// diagnostic turns a pipeline error into the operator-facing message.
func diagnostic(err error) string {
	var perr *service.ParseError
	switch {
	case errors.Is(err, repository.ErrTransport):
		return "Server communication problem. " + strings.TrimPrefix(err.Error(), repository.ErrTransport.Error()+": ")
	case errors.Is(err, service.ErrResponseTooShort):
		return "Server response too short"
	case errors.As(err, &perr):
		return fmt.Sprintf("Server response parsing error. Record %q has %d fields", perr.Chunk, perr.Fields)
	default:
		return err.Error()
	}
}
