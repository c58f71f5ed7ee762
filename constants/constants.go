package constants

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`

	DynamoEndpoint string `toml:"dynamo_endpoint"`
	DynamoRegion   string `toml:"dynamo_region"`
	SongTable      string `toml:"song_table"`

	MidiInPort          int    `toml:"midi_in_port"`
	DebounceMillis      int    `toml:"debounce_millis"`
	MidiTicksPerQuarter uint16 `toml:"midi_ticks_per_quarter"`
}

func Default() Config {
	return Config{
		Addr:                ":8080",
		AllowedOrigins:      []string{"*"},
		DynamoEndpoint:      "http://localhost:8000",
		DynamoRegion:        "localhost",
		SongTable:           "capofinder-songs",
		MidiInPort:          0,
		DebounceMillis:      150,
		MidiTicksPerQuarter: 960,
	}
}

// Load layers defaults, the TOML file named by CAPO_CONFIG (if any), and
// CAPO_* environment variables, in that order.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CAPO_CONFIG"); path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MidiTicksPerQuarter == 0 {
		return errors.New("midi_ticks_per_quarter must be positive")
	}
	if c.DebounceMillis < 0 {
		return fmt.Errorf("debounce_millis must not be negative, got %v", c.DebounceMillis)
	}
	return nil
}

func LoadFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("could not read config %v: %w", path, err)
	}
	return nil
}

func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("CAPO_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CAPO_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("CAPO_DYNAMO_ENDPOINT"); v != "" {
		cfg.DynamoEndpoint = v
	}
	if v := os.Getenv("CAPO_DYNAMO_REGION"); v != "" {
		cfg.DynamoRegion = v
	}
	if v := os.Getenv("CAPO_SONG_TABLE"); v != "" {
		cfg.SongTable = v
	}
	if v := os.Getenv("CAPO_MIDI_IN_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CAPO_MIDI_IN_PORT: %w", err)
		}
		cfg.MidiInPort = port
	}
	if v := os.Getenv("CAPO_DEBOUNCE_MILLIS"); v != "" {
		millis, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CAPO_DEBOUNCE_MILLIS: %w", err)
		}
		cfg.DebounceMillis = millis
	}
	if v := os.Getenv("CAPO_MIDI_TICKS_PER_QUARTER"); v != "" {
		ticks, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("CAPO_MIDI_TICKS_PER_QUARTER: %w", err)
		}
		cfg.MidiTicksPerQuarter = uint16(ticks)
	}
	return nil
}
