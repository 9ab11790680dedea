// Package config handles animtool configuration loading and management.
package config

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// Config holds all tool settings.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling"`
	Playback PlaybackConfig `yaml:"playback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SamplingConfig controls how timelines are sampled into tables.
type SamplingConfig struct {
	Start     time.Duration `yaml:"start"`
	End       time.Duration `yaml:"end"` // 0 samples up to the total duration
	Step      time.Duration `yaml:"step"`
	Precision int           `yaml:"precision"` // Decimal places of printed values
}

// PlaybackConfig controls the simulated frame loop of the player.
type PlaybackConfig struct {
	FrameRate    int           `yaml:"frame_rate"`
	MaxFrameTime time.Duration `yaml:"max_frame_time"` // Clamp for a single frame delta
	PruneStopped bool          `yaml:"prune_stopped"`
	Limit        time.Duration `yaml:"limit"` // Stop simulating after this much time
}

// FrameTime returns the duration of one frame at the configured rate.
func (p PlaybackConfig) FrameTime() time.Duration {
	if p.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(p.FrameRate)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sampling: SamplingConfig{
			Start:     0,
			End:       0,
			Step:      100 * time.Millisecond,
			Precision: 4,
		},
		Playback: PlaybackConfig{
			FrameRate:    60,
			MaxFrameTime: 250 * time.Millisecond,
			PruneStopped: false,
			Limit:        time.Minute,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	var errs error
	if c.Sampling.Step <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("sampling.step must be positive, got %v", c.Sampling.Step))
	}
	if c.Sampling.End != 0 && c.Sampling.End < c.Sampling.Start {
		errs = multierr.Append(errs, fmt.Errorf("sampling.end %v is before sampling.start %v", c.Sampling.End, c.Sampling.Start))
	}
	if c.Sampling.Precision < 0 {
		errs = multierr.Append(errs, fmt.Errorf("sampling.precision must not be negative, got %d", c.Sampling.Precision))
	}
	if c.Playback.FrameRate <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("playback.frame_rate must be positive, got %d", c.Playback.FrameRate))
	}
	if c.Playback.MaxFrameTime < 0 {
		errs = multierr.Append(errs, fmt.Errorf("playback.max_frame_time must not be negative, got %v", c.Playback.MaxFrameTime))
	}
	if c.Playback.Limit <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("playback.limit must be positive, got %v", c.Playback.Limit))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("logging.level: %w", err))
	}
	return errs
}
