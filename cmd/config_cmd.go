/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/promptwing/internal/config"
	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configInitGlobal bool
	configInitForce  bool
	configInitData   bool
)

// configCmd is the parent config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage PromptWing configuration",
	Long: `View and create PromptWing configuration files.

Settings are read, in order of precedence, from PROMPTWING_* environment
variables, --config, ./.promptwing/.promptwing.yaml, $HOME/.promptwing.yaml
and ./.promptwing.yaml.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	Long: `Write a configuration file with the default settings.

With --data, write the built-in guardrails, clarifying questions and gates
(in the configured output language) as editable guardrails.json,
questions.json and gates.json in the override directory instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write $HOME/.promptwing.yaml instead of the project file")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configInitCmd.Flags().BoolVar(&configInitData, "data", false, "write the prompt override files instead of the config")
	configInitCmd.MarkFlagsMutuallyExclusive("global", "data")
}

func runConfigInit(cmd *cobra.Command) error {
	if configInitData {
		return runConfigInitData(cmd)
	}

	var path string
	if configInitGlobal {
		p, err := config.GlobalConfigPath()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		path = p
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get current directory: %w", err)
		}
		path = config.ProjectConfigPath(cwd)
	}

	err := config.WriteConfig(appFs, path, config.DefaultAppConfig(), configInitForce)
	if errors.Is(err, config.ErrConfigExists) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]string{"path": path})
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return err
}

// runConfigInitData seeds the override directory from the built-in catalog.
func runConfigInitData(cmd *cobra.Command) error {
	cat, err := locale.Builtin(locale.Language(optimizeDefaults().OutputLanguage))
	if err != nil {
		return types.NewArgumentError("output.language", err.Error())
	}

	paths, err := config.WriteOverrideSeeds(appFs, dataDir(), cat.Overrides(), configInitForce)
	if errors.Is(err, config.ErrConfigExists) {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string][]string{"paths": paths})
	}
	for _, p := range paths {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", p); err != nil {
			return err
		}
	}
	return nil
}

func runConfigShow(cmd *cobra.Command) error {
	cfg := *GetConfig()

	if isJSON() {
		type configStatus struct {
			ConfigFile string               `json:"configFile,omitempty"`
			Output     types.OutputConfig   `json:"output"`
			Optimize   types.OptimizeConfig `json:"optimize"`
			Scan       types.ScanConfig     `json:"scan"`
			Data       types.DataConfig     `json:"data"`
		}
		return printJSON(cmd.OutOrStdout(), configStatus{
			ConfigFile: viper.ConfigFileUsed(),
			Output:     cfg.Output,
			Optimize:   cfg.Optimize,
			Scan:       cfg.Scan,
			Data:       cfg.Data,
		})
	}

	data, err := config.MarshalConfig(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# loaded from %s\n", used)
	} else {
		fmt.Fprintln(out, "# no config file found, showing defaults and environment")
	}
	_, err = out.Write(data)
	return err
}
