package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one metric in the status bar text.
type Segment interface {
	Name() string
	Enabled(s Settings) bool
	Render(ctx context.Context, s Settings, src MetricsSource) (string, error)
}

type CPUSegment struct{}

func (CPUSegment) Name() string { return "cpu" }

func (CPUSegment) Enabled(s Settings) bool { return s.CPUView }

func (CPUSegment) Render(ctx context.Context, _ Settings, src MetricsSource) (string, error) {
	usage, err := src.CPUUsage(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CPU: %s%%", formatNumber(usage)), nil
}

type MemUsedSegment struct{}

func (MemUsedSegment) Name() string { return "memory used" }

func (MemUsedSegment) Enabled(s Settings) bool { return s.MemUsedView }

func (MemUsedSegment) Render(ctx context.Context, _ Settings, src MetricsSource) (string, error) {
	info, err := src.MemInfo(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(" Memory: %s%% used", formatNumber(round2(100-info.FreePercent))), nil
}

type MemFreeSegment struct{}

func (MemFreeSegment) Name() string { return "memory free" }

func (MemFreeSegment) Enabled(s Settings) bool { return s.MemfreeView }

// Render appends to the used segment in parentheses when that one is shown.
func (MemFreeSegment) Render(ctx context.Context, s Settings, src MetricsSource) (string, error) {
	info, err := src.MemInfo(ctx)
	if err != nil {
		return "", err
	}
	free := formatNumber(info.FreeMb) + "Mb free"
	if s.MemUsedView {
		return " (" + free + ")", nil
	}
	return " Memory: " + free, nil
}

// DisplayFormatter builds the status bar text. Every enabled segment reads
// the source on its own; nothing is cached between segments.
type DisplayFormatter struct {
	src      MetricsSource
	segments []Segment
}

func NewDisplayFormatter(src MetricsSource) *DisplayFormatter {
	return &DisplayFormatter{
		src:      src,
		segments: []Segment{CPUSegment{}, MemUsedSegment{}, MemFreeSegment{}},
	}
}

// Format aborts on the first failed read.
func (f *DisplayFormatter) Format(ctx context.Context, s Settings) (string, error) {
	var b strings.Builder
	for _, seg := range f.segments {
		if !seg.Enabled(s) {
			continue
		}
		text, err := seg.Render(ctx, s, f.src)
		if err != nil {
			return "", fmt.Errorf("%s: %w", seg.Name(), err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// formatNumber prints the shortest representation: 42, 69.88.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
