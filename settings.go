package main

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

const (
	minRefreshRate = 250 * time.Millisecond
	maxRefreshRate = 24 * time.Hour
)

// Settings is the persisted display configuration. JSON keys match the field
// names so existing data files load unchanged.
type Settings struct {
	CPUView     bool `json:"CPUView"`
	MemUsedView bool `json:"MemUsedView"`
	MemfreeView bool `json:"MemfreeView"`
	RefreshRate int  `json:"RefreshRate"`
}

func DefaultSettings() Settings {
	return Settings{
		CPUView:     true,
		MemUsedView: true,
		MemfreeView: false,
		RefreshRate: 1000,
	}
}

// EnabledCount returns how many metrics are shown. RefreshRate is not counted.
func (s Settings) EnabledCount() int {
	n := 0
	for _, on := range []bool{s.CPUView, s.MemUsedView, s.MemfreeView} {
		if on {
			n++
		}
	}
	return n
}

// Interval is the poll cadence, clamped to [minRefreshRate, maxRefreshRate].
// The bounds are checked in milliseconds so a huge stored value cannot
// overflow the Duration.
func (s Settings) Interval() time.Duration {
	switch ms := int64(s.RefreshRate); {
	case ms < minRefreshRate.Milliseconds():
		return minRefreshRate
	case ms > maxRefreshRate.Milliseconds():
		return maxRefreshRate
	default:
		return time.Duration(ms) * time.Millisecond
	}
}

type SettingsStore struct {
	data DataStore
	log  zerolog.Logger
}

func NewSettingsStore(data DataStore, log zerolog.Logger) *SettingsStore {
	return &SettingsStore{data: data, log: log}
}

// Load never fails. Keys missing from the stored blob keep their defaults.
func (s *SettingsStore) Load() Settings {
	settings := DefaultSettings()

	data, err := s.data.LoadData()
	if err != nil {
		s.log.Warn().Err(err).Msg("could not read settings, using defaults")
		return settings
	}
	if len(data) == 0 {
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// the remaining keys were still decoded
			s.log.Warn().Err(err).Str("field", typeErr.Field).Msg("ignoring invalid setting")
			return settings
		}
		s.log.Warn().Err(err).Msg("malformed settings, using defaults")
		return DefaultSettings()
	}
	return settings
}

func (s *SettingsStore) Save(settings Settings) error {
	return s.data.SaveData(settings)
}
