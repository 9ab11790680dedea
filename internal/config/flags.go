package config

import (
	"flag"
	"time"
)

// Flags holds command-line overrides. Register binds them to a flag set;
// only flags that were given on the command line override the config.
type Flags struct {
	ConfigPath string
	Debug      bool
	Start      time.Duration
	End        time.Duration
	Step       time.Duration
	FrameRate  int
	LogFile    string

	set *flag.FlagSet
}

// Register defines the flags on fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.DurationVar(&f.Start, "start", 0, "First sample time")
	fs.DurationVar(&f.End, "end", 0, "Last sample time (default: total duration)")
	fs.DurationVar(&f.Step, "step", 0, "Time between samples")
	fs.IntVar(&f.FrameRate, "fps", 0, "Simulated frames per second")
	fs.StringVar(&f.LogFile, "log", "", "Write logs to this file as well")
	f.set = fs
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.set == nil {
		return
	}
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if f.Debug {
				cfg.Logging.Level = "debug"
			}
		case "start":
			cfg.Sampling.Start = f.Start
		case "end":
			cfg.Sampling.End = f.End
		case "step":
			cfg.Sampling.Step = f.Step
		case "fps":
			cfg.Playback.FrameRate = f.FrameRate
		case "log":
			cfg.Logging.LogFile = f.LogFile
		}
	})
}
