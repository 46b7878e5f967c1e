package main

//go:generate mockgen -source=sysinfo.go -destination=mock_sysinfo_test.go -package=main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	units "github.com/docker/go-units"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	errNoCPUSample = errors.New("no cpu sample")
	errNoMemTotal  = errors.New("total memory reported as zero")
)

type MemInfo struct {
	FreePercent float64
	FreeMb      float64
}

// MetricsSource reads OS-level CPU and memory figures on demand.
type MetricsSource interface {
	CPUUsage(ctx context.Context) (float64, error)
	MemInfo(ctx context.Context) (MemInfo, error)
}

type systemSource struct {
	cpuInterval time.Duration
	log         zerolog.Logger
}

// newSystemSource samples via gopsutil. A zero cpuInterval reports usage since
// the previous call.
func newSystemSource(cpuInterval time.Duration, log zerolog.Logger) *systemSource {
	return &systemSource{cpuInterval: cpuInterval, log: log}
}

func (s *systemSource) CPUUsage(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, s.cpuInterval, false)
	if err != nil {
		return 0, fmt.Errorf("cpu percent: %w", err)
	}
	if len(percents) == 0 {
		return 0, errNoCPUSample
	}
	return round2(percents[0]), nil
}

func (s *systemSource) MemInfo(ctx context.Context) (MemInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemInfo{}, fmt.Errorf("virtual memory: %w", err)
	}
	if vm.Total == 0 {
		return MemInfo{}, errNoMemTotal
	}

	s.log.Debug().
		Str("available", units.BytesSize(float64(vm.Available))).
		Str("total", units.BytesSize(float64(vm.Total))).
		Msg("memory sampled")

	return MemInfo{
		FreePercent: round2(float64(vm.Available) / float64(vm.Total) * 100),
		FreeMb:      round2(float64(vm.Available) / units.MiB),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
