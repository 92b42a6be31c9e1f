package config

import "github.com/spf13/pflag"

// Flags holds the launch options. Only flags the user actually set
// override the config file, hence the retained flag set.
type Flags struct {
	OffsetSeconds int64
	OffsetHours   float64
	Compact       bool
	NoAccentPulse bool
	NoSound       bool
	ConfigPath    string

	fs *pflag.FlagSet
}

func ParseFlags(name string, args []string) (*Flags, error) {
	f := &Flags{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.Int64Var(&f.OffsetSeconds, "offset-seconds", 0, "pretend the timer already ran this many seconds")
	fs.Float64Var(&f.OffsetHours, "offset-hours", 0.0, "pretend the timer already ran this many hours (adds to --offset-seconds)")
	fs.BoolVar(&f.Compact, "compact", false, "use a more compact window size")
	fs.BoolVar(&f.NoAccentPulse, "no-accent-pulse", false, "disable the subtle accent color pulsing animation")
	fs.BoolVar(&f.NoSound, "no-sound", false, "disable the reset chime")
	fs.StringVar(&f.ConfigPath, "config", "", "path to the config file (default ~/.steamtimer/config.yaml)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.fs = fs
	return f, nil
}

// Changed reports whether the named flag was set on the command line.
func (f *Flags) Changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// ApplyFlags merges command-line options over file-sourced values.
func (c *Config) ApplyFlags(f *Flags) {
	if f.Changed("offset-seconds") {
		c.Timer.OffsetSeconds = f.OffsetSeconds
	}
	if f.Changed("offset-hours") {
		c.Timer.OffsetHours = f.OffsetHours
	}
	if f.Compact {
		c.Timer.Compact = true
	}
	if f.NoAccentPulse {
		c.Theme.AccentPulse = false
	}
	if f.NoSound {
		c.Theme.Sound = false
	}
}
