package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

const appName = "nerd-stats"

// HostConfig configures the process hosting the status bar. User-facing
// display settings live in Settings.
type HostConfig struct {
	DataDir     string
	LogFile     string
	LogLevel    string
	AltScreen   bool
	CPUInterval time.Duration
}

func defaultHostConfig() HostConfig {
	return HostConfig{
		DataDir:  filepath.Join(os.Getenv("HOME"), ".config", appName),
		LogLevel: "info",
	}
}

func (c HostConfig) logPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, appName+".log")
}

func bindFlags(fs *pflag.FlagSet, cfg *HostConfig) {
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the persisted settings")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file (default <data-dir>/"+appName+".log)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "render in the alternate screen buffer")
	fs.DurationVar(&cfg.CPUInterval, "cpu-interval", cfg.CPUInterval, "CPU sampling window; 0 measures since the previous sample")
}
