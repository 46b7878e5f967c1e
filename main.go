package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Printf("Err: program failed to run: %v\n", err)
		os.Exit(1)
	}
	stop()
}

func newRootCommand() *cobra.Command {
	cfg := defaultHostConfig()

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Show CPU and memory usage in a terminal status bar",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	bindFlags(cmd.Flags(), &cfg)
	return cmd
}

func run(ctx context.Context, cfg HostConfig) error {
	logFile, err := openLogFile(cfg.logPath())
	if err != nil {
		return err
	}
	defer logFile.Close()

	log, err := newLogger(logFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	app := NewApp(cfg, log, opts...)
	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("program exited")
		return err
	}
	return nil
}
