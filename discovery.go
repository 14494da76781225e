// FILE: lixenwraith/dotenv/discovery.go
package dotenv

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures the search for an env file
type FileDiscoveryOptions struct {
	// AppName selects the XDG subdirectory and the default env var
	AppName string

	// Name is the file looked up in each directory, DefaultFile if empty
	Name string

	// Paths are directories searched before the working directory
	Paths []string

	// EnvVar names an environment variable holding an explicit path
	EnvVar string

	// CLIFlag names a flag holding an explicit path, e.g. "--env-file"
	CLIFlag string

	UseXDG        bool
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns options for appName. The env var is
// <APP>_ENV_FILE, or DOTENV_FILE without an app name; XDG directories are
// only searched for a named app.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	envVar := "DOTENV_FILE"
	if appName != "" {
		envVar = strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_ENV_FILE"
	}
	return FileDiscoveryOptions{
		AppName:       appName,
		Name:          DefaultFile,
		EnvVar:        envVar,
		CLIFlag:       "--env-file",
		UseXDG:        appName != "",
		UseCurrentDir: true,
	}
}

// DiscoverFile returns the env file selected by opts, or "" if none exists.
//
// An explicit path from args, then from the environment, wins and is returned
// without checking that it exists; a missing file then yields an empty store.
// Otherwise the first regular file named opts.Name in the custom paths, the
// working directory and the XDG config directories is returned.
func DiscoverFile(opts FileDiscoveryOptions, args []string) string {
	if path, ok := explicitPath(opts, args); ok {
		return path
	}

	name := opts.Name
	if name == "" {
		name = DefaultFile
	}

	for _, dir := range searchDirs(opts) {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

// WithFileDiscovery selects the env file through DiscoverFile using the
// builder's args. When nothing is found no file is read.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	b.file = DiscoverFile(opts, b.args)
	return b
}

func explicitPath(opts FileDiscoveryOptions, args []string) (string, bool) {
	if flag := opts.CLIFlag; flag != "" {
		for i := 0; i < len(args); i++ {
			switch {
			case args[i] == flag && i+1 < len(args):
				return args[i+1], true
			case strings.HasPrefix(args[i], flag+"="):
				return args[i][len(flag)+1:], true
			}
		}
	}

	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, true
		}
	}
	return "", false
}

func searchDirs(opts FileDiscoveryOptions) []string {
	dirs := append([]string(nil), opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	if opts.UseXDG && opts.AppName != "" {
		dirs = append(dirs, xdgConfigDirs(opts.AppName)...)
	}
	return dirs
}

// xdgConfigDirs lists the app's config directories, user directory first
func xdgConfigDirs(appName string) []string {
	var bases []string

	switch home := os.Getenv("XDG_CONFIG_HOME"); {
	case home != "":
		bases = append(bases, home)
	case os.Getenv("HOME") != "":
		bases = append(bases, filepath.Join(os.Getenv("HOME"), ".config"))
	}

	if system := os.Getenv("XDG_CONFIG_DIRS"); system != "" {
		bases = append(bases, filepath.SplitList(system)...)
	} else {
		bases = append(bases, "/etc/xdg")
	}

	dirs := make([]string, 0, len(bases))
	for _, base := range bases {
		dirs = append(dirs, filepath.Join(base, appName))
	}
	return dirs
}
