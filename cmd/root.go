/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vipcxj/interval/internal/calc"
	"github.com/vipcxj/interval/interval"
)

const envPrefix = "INTERVAL"

// errFalse ends a command whose negative answer was already reported.
var errFalse = errors.New("false")

// app is the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *logrus.Logger
	engine  *calc.Engine
	color   bool
}

// NewRootCmd builds a fresh command tree. Every invocation gets its own flags
// and configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "interval",
		Short: "Relate and combine intervals of ordered values",
		Long: `interval evaluates relations and operations between intervals such as
[0, 10], (2, +∞), <5 or ∅ from the command line.

Bounds are read as ints by default; pass --type to work with floats, strings
or durations. Every flag can also come from the environment (INTERVAL_TYPE,
INTERVAL_DEBUG, ...) or from a config file given with --config.

Values starting with '-' are taken for flags: put them after "--".`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.StringP("type", "t", calc.ValueTypeInt.String(), "value type of the bounds: "+strings.Join(calc.ValueTypeStrings(), ", "))
	pf.String("shell", calc.ShellTypeAuto.String(), "shell for --export: "+strings.Join(calc.ShellTypeStrings(), ", "))
	pf.Bool("color", isatty.IsTerminal(os.Stdout.Fd()), "colorize the output")
	pf.Bool("debug", false, "log every evaluation to stderr")
	bindFlags(a.v, pf, "type", "shell", "color", "debug")
	registerChoices(rootCmd, "type", calc.ValueTypeStrings())
	registerChoices(rootCmd, "shell", calc.ShellTypeStrings())

	rootCmd.AddCommand(
		newCheckCmd(a),
		newCalcCmd(a),
		newRelateCmd(a),
		newSetCmd(a),
	)
	return rootCmd
}

// Execute runs the command line in os.Args and returns the process exit code:
// 0 on success, 1 for a false answer or a result that is not a single
// interval, 2 for anything else.
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFalse):
		return 1
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "interval: %v\n", err)
	if errors.Is(err, interval.ErrUnrepresentable) {
		return 1
	}
	return 2
}

func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", a.cfgFile)
		}
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.log.SetLevel(logrus.WarnLevel)
	if a.v.GetBool("debug") {
		a.log.SetLevel(logrus.DebugLevel)
	}
	a.color = a.v.GetBool("color")

	vt, err := calc.ValueTypeString(a.v.GetString("type"))
	if err != nil {
		return errors.Wrap(err, "invalid --type")
	}
	if a.engine, err = calc.New(vt, a.log); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  a.v.ConfigFileUsed(),
		"type":    vt.String(),
	}).Debug("configured")
	return nil
}

func (a *app) shellType() (calc.ShellType, error) {
	st, err := calc.ShellTypeString(a.v.GetString("shell"))
	if err != nil {
		return calc.ShellTypeAuto, errors.Wrap(err, "invalid --shell")
	}
	return st, nil
}

func (a *app) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if a.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (a *app) paintBool(ok bool) string {
	if ok {
		return a.paint("true", color.FgGreen)
	}
	return a.paint("false", color.FgRed)
}

func (a *app) paintInterval(s string) string {
	if s == "∅" {
		return a.paint(s, color.FgYellow)
	}
	return a.paint(s, color.FgCyan, color.Bold)
}

// bindFlags makes the named flags of fs the top layer of v, above the
// environment and the config file.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
}

func matching(choices []string, toComplete string) []cobra.Completion {
	var completions []cobra.Completion
	for _, choice := range choices {
		if strings.HasPrefix(choice, toComplete) {
			completions = append(completions, choice)
		}
	}
	return completions
}

func registerChoices(cmd *cobra.Command, flag string, choices []string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		return matching(choices, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// completeArg completes the positional argument at pos with choices.
func completeArg(pos int, choices []string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) != pos {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return matching(choices, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}
