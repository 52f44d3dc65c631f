package cli

import "utest/internal/config"

// Flags holds command-line flags before they are merged into the
// config.
type Flags struct {
	Quiet    bool
	Verbose  bool
	Explain  bool
	Progress bool
	Cases    bool
}

// ToConfigFlags converts CLI flags plus positional names to config
// flags.
func (f *Flags) ToConfigFlags(names []string) config.Flags {
	return config.Flags{
		Quiet:    f.Quiet,
		Verbose:  f.Verbose,
		Explain:  f.Explain,
		Progress: f.Progress,
		Cases:    f.Cases,
		Names:    names,
	}
}
