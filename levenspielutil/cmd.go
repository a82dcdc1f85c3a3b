/*
Copyright © 2026 the Levenspiel authors.
This file is part of Levenspiel.

Levenspiel is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Levenspiel is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Levenspiel.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package levenspielutil wires the levenspiel package to its command-line
// and web interfaces.
package levenspielutil

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/reactormodel/levenspiel"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Levenspiel.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "RateLaw",
			usage: `
              RateLaw selects the reaction kinetics to size the train
              against. Use the 'ratelaws' command to list the valid
              options.`,
			defaultVal: levenspiel.LangmuirHinshelwood,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "RateConstant",
			usage: `
              RateConstant is the rate constant of the reaction. It must
              be positive and finite.`,
			shorthand:  "k",
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "FeedConcentration",
			usage: `
              FeedConcentration is the concentration of the limiting
              reactant in the feed [mol/L]. It must be positive and
              finite.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "X1",
			usage: `
              X1 is the exit conversion of the first reactor. The three
              conversions must be strictly increasing within (0, 1).`,
			defaultVal: 0.4,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "X2",
			usage: `
              X2 is the exit conversion of the second reactor.`,
			defaultVal: 0.8,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "X3",
			usage: `
              X3 is the exit conversion of the third reactor.`,
			defaultVal: 0.9,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "Reactor1",
			usage: `
              Reactor1 is the type of the first reactor: CSTR or PFR.`,
			defaultVal: "CSTR",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "Reactor2",
			usage: `
              Reactor2 is the type of the second reactor: CSTR or PFR.`,
			defaultVal: "CSTR",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "Reactor3",
			usage: `
              Reactor3 is the type of the third reactor: CSTR or PFR.`,
			defaultVal: "CSTR",
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), serveCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the Levenspiel diagram to be
              drawn. Set it to the empty string to skip the drawing.`,
			shorthand:  "o",
			defaultVal: "levenspiel.png",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "addr",
			usage: `
              addr specifies the host and port the web interface listens
              on.`,
			defaultVal: "localhost:7171",
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
		{
			name: "open",
			usage: `
              open specifies whether to open the web interface in a
              browser after it starts.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{serveCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("LEVENSPIEL")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(rateLawsCmd)
	Root.AddCommand(serveCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("levenspiel: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "levenspiel",
	Short: "Size a train of series reactors from a Levenspiel plot.",
	Long: `Levenspiel sizes a train of three series reactors, each a continuous
stirred-tank (CSTR) or plug-flow (PFR) reactor, for a single reaction with
configurable kinetics. Reactor volumes are areas under the inverse-rate
curve: a rectangle for a CSTR and the integral of the curve for a PFR.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'LEVENSPIEL_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Levenspiel.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Levenspiel v%s\n", levenspiel.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Size the reactor train.",
	Long: `run sizes each reactor in the train, reports the volumes and the train
total, and draws the Levenspiel diagram to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(
			cmd,
			Cfg.GetString("RateLaw"),
			Cfg.GetFloat64("RateConstant"),
			Cfg.GetFloat64("FeedConcentration"),
			Cfg.GetFloat64("X1"),
			Cfg.GetFloat64("X2"),
			Cfg.GetFloat64("X3"),
			Cfg.GetString("Reactor1"),
			Cfg.GetString("Reactor2"),
			Cfg.GetString("Reactor3"),
			os.ExpandEnv(Cfg.GetString("OutputFile")),
		)
	},
	DisableAutoGenTag: true,
}

var rateLawsCmd = &cobra.Command{
	Use:   "ratelaws",
	Short: "List the available rate laws.",
	Long: `ratelaws prints the identifiers that the RateLaw option
accepts, one per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range levenspiel.NewKinetics().Names() {
			cmd.Println(name)
		}
	},
	DisableAutoGenTag: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive Levenspiel diagram.",
	Long: `serve starts a web interface that displays the Levenspiel diagram and
sizing report and has a form for adjusting the rate law, the kinetic
parameters, the conversion checkpoints, and the reactor types.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return StartWebServer()
	},
	DisableAutoGenTag: true,
}
