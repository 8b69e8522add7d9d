/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notargets/gocalix/units"
)

var (
	cfgFile  string
	logger   = zap.NewNop()
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gocalix",
	Short: "Writes CalculiX input decks from YAML analysis models",
	Long: `
Reads analysis models (mesh sets, materials, sections, contact, steps with
boundary conditions, loads and outputs) from YAML files and writes the
CalculiX input deck (.inp) for each of them.

gocalix write -I model.yaml -o model.inp`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := zap.NewProductionConfig()
		level := viper.GetString("log-level")
		if viper.GetBool("verbose") {
			level = "debug"
		}
		var l zapcore.Level
		if err = l.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
		config.Level = zap.NewAtomicLevelAt(l)
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		switch mode := viper.GetString("profile"); mode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("unknown profile mode %q, expected cpu or mem", mode)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gocalix.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every keyword block as it is built")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("units", "u", "",
		"unit system for model files that name none: "+strings.Join(systemNames(), ", "))
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the working directory")
	_ = rootCmd.PersistentFlags().MarkHidden("profile")
	for _, name := range []string{"verbose", "log-level", "units", "profile"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gocalix")
	}
	viper.SetEnvPrefix("GOCALIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func systemNames() (names []string) {
	for s := units.Unitless; s <= units.IN_LB_S_F; s++ {
		names = append(names, s.String())
	}
	return
}

// unitSystem is the configured default unit system
func unitSystem() (units.System, error) {
	return units.ParseSystem(viper.GetString("units"))
}
