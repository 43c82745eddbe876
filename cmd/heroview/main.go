// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heroview runs a hero section in a window, or renders
// snapshots of it without one.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/hero/base/logx"
	"cogentcore.org/hero/config"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	configFile string
	verbose    bool
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "heroview",
		Short:         "heroview runs an animated 3D hero section kept in sync with its page",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logx.UserLevel = slog.LevelDebug
			}
			logx.UseColor = !opts.noColor
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "config file (.toml or .yaml); defaults are used if empty")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "show debug messages")
	pf.BoolVar(&opts.noColor, "no-color", false, "do not color log levels")
	root.AddCommand(newRunCmd(opts), newSnapshotCmd(opts))
	return root
}

// loadConfig returns the config of the given options.
func (o *options) loadConfig() (*config.Config, error) {
	if o.configFile == "" {
		return config.New(), nil
	}
	return config.Load(o.configFile)
}
