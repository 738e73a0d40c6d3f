package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/config"
	"github.com/ZebulonRouseFrantzich/loadenv/internal/keyword"
	"github.com/ZebulonRouseFrantzich/loadenv/internal/report"
	"github.com/ZebulonRouseFrantzich/loadenv/internal/system"
)

// Version will be set at build time via -ldflags
var Version = "v0.0.1-alpha"

var opts struct {
	force            bool
	listEnvs         bool
	output           string
	supportedSystems string
	supportedEnvs    string
	configFile       string
	verbose          bool
}

var rootCmd = &cobra.Command{
	Version: Version,
	Use:     "loadenv <build-name>",
	Short:   "Resolve a build name into a fully qualified environment name",
	Long: `loadenv takes a short keyword string (a "build name") such as
intel-hsw-openmp and resolves it to the fully qualified environment
name supported on the current machine, validating any compiler, MPI,
and node-type components embedded in the keyword against the
supported-envs configuration.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(opts.verbose)
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&opts.force, "force", "f", false,
		"force the use of a system name specified in the build name, even if the hostname matches a different system")
	rootCmd.Flags().BoolVar(&opts.listEnvs, "list-envs", false,
		"list the environments supported for the detected system and exit")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"also write the resolved environment name to this file")
	rootCmd.Flags().StringVar(&opts.supportedSystems, "supported-systems", "",
		"path to the supported-systems.ini file")
	rootCmd.Flags().StringVar(&opts.supportedEnvs, "supported-envs", "",
		"path to the supported-envs.ini file")
	rootCmd.Flags().StringVar(&opts.configFile, "config", "load-env.ini",
		"path to the top-level configuration file holding default paths")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	buildName := args[0]

	systemsPath, err := configFilePath(opts.supportedSystems, "supported-systems")
	if err != nil {
		return err
	}
	envsPath, err := configFilePath(opts.supportedEnvs, "supported-envs")
	if err != nil {
		return err
	}

	systems, err := config.Load(systemsPath)
	if err != nil {
		return err
	}
	sysName, err := system.Determine(cmd.Context(), system.NewDetector(),
		systems, buildName, opts.force)
	if err != nil {
		return err
	}

	resolver, err := keyword.NewResolverFromFile(buildName, sysName, envsPath)
	if err != nil {
		return err
	}

	if opts.listEnvs {
		msg := report.Message{
			Kind:   report.KindInfo,
			Text:   fmt.Sprintf("Environments supported for system '%s':", sysName),
			Extras: resolver.SupportedEnvsListing(),
		}
		fmt.Fprint(cmd.OutOrStdout(), msg.String())
		return nil
	}

	qualified, err := resolver.QualifiedEnvName()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), qualified)

	if opts.output != "" {
		if err := writeOutput(opts.output, qualified); err != nil {
			return err
		}
	}
	return nil
}

// configFilePath resolves the path to one of the .ini configuration
// files: the CLI flag wins, otherwise the path comes from the
// [load-env] section of the top-level configuration file.
func configFilePath(flagValue, flag string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	store, err := config.Load(opts.configFile)
	if err != nil {
		return "", err
	}
	sec, err := store.Section("load-env")
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(sec.Value(flag))
	if path == "" {
		return "", &missingPathError{flag: flag}
	}
	return path, nil
}

func writeOutput(path, qualified string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(qualified+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// missingPathError indicates a configuration file path was given
// neither on the command line nor in the top-level configuration file.
type missingPathError struct {
	flag string
}

func (e *missingPathError) Error() string {
	return fmt.Sprintf("no path configured for %s.ini", e.flag)
}

func (e *missingPathError) Diagnostic() report.Message {
	return report.Message{
		Kind: report.KindError,
		Text: fmt.Sprintf(
			"You must specify a path to the `%s.ini` file either in the `load-env.ini` file or via `--%s` on the command line.",
			e.flag, e.flag),
	}
}

// fatal renders err to stderr and terminates. Errors carrying a
// bordered diagnostic render the full block; anything else gets a
// plain one-liner.
func fatal(err error) {
	var diag report.Diagnostic
	if errors.As(err, &diag) {
		fmt.Fprint(os.Stderr, diag.Diagnostic().String())
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
