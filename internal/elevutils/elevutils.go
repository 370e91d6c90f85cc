package elevutils

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heislab/elevcomedi/internal/config"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return strings.TrimSpace(gitHash)
}

type CmdArgs struct {
	ConfigPath string
	EnvPath    string
}

// ProcessCmdArgs parses os.Args and exits for -help and -version.
func ProcessCmdArgs(name, description string) CmdArgs {
	args, exit := parseArgs(flag.CommandLine, os.Args[1:], os.Stdout, name, description)
	if exit {
		os.Exit(0)
	}
	return args
}

func parseArgs(fs *flag.FlagSet, arguments []string, out io.Writer, name, description string) (CmdArgs, bool) {
	help := fs.Bool("help", false, "Show Help Window")
	version := fs.Bool("version", false, "Show Version")
	configPath := fs.String("config", config.DefaultPath, "Path to the YAML config file")
	envPath := fs.String("env", config.DefaultEnvPath, "Path to an env file overriding the config file")

	fs.SetOutput(out)
	// flag.CommandLine exits with status 2 by itself
	if err := fs.Parse(arguments); err != nil {
		return CmdArgs{}, true
	}

	if *version {
		fmt.Fprintln(out, "Version:", GetGitHash())
		return CmdArgs{}, true
	}

	if *help {
		fmt.Fprintf(out, "Usage: ./%s [OPTIONS]\n", name)
		fmt.Fprintln(out, description)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		return CmdArgs{}, true
	}

	return CmdArgs{ConfigPath: *configPath, EnvPath: *envPath}, false
}
