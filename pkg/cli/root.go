// Package cli has the rna3d command tree. Each subcommand is a thin
// layer over one of the library packages. Flags may also come from the
// environment (RNA3D_MSA_DIR, ...) or a config file.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/rna3d/pkg/common"
)

// ErrUsage marks errors which are the user's fault: wrong arguments,
// missing flags.
var ErrUsage = errors.New("usage")

// app is what the subcommands share once flags are parsed.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func usageErr(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}

// exactArgs is cobra.ExactArgs, but the error can be told apart.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErr("%s wants %d argument(s), got %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// required fetches a string setting which must be there.
func (a *app) required(key string) (string, error) {
	s := a.v.GetString(key)
	if s == "" {
		return "", usageErr("--%s must be given", key)
	}
	return s, nil
}

// RootCommand creates and returns the root command.
func RootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("RNA3D")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "rna3d",
		Short:         "Data handling for RNA 3D structure prediction",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.BoolP("debug", "d", false, "Enable debug output")
	pf.Bool("log-json", false, "Log as json, one object per line")
	pf.String("config", "", "Config file (yaml, toml or json)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}
	rootCmd.AddCommand(
		msaCommand(a),
		coordsCommand(a),
		submitCommand(a),
		randmsaCommand(a),
	)
	return rootCmd
}

// setup binds the running command's flags, reads any config file and
// makes the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	if err := a.v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfg, err)
		}
	}
	a.log = common.NewLogger(cmd.ErrOrStderr(), a.v.GetBool("debug"), a.v.GetBool("log-json"))
	return nil
}

// ExitCode maps an error from the command tree to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return common.ExitSuccess
	case errors.Is(err, ErrUsage):
		return common.ExitUsageError
	}
	return common.ExitFailure
}
