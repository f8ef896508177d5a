/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"os"

	"github.com/josephgoksu/promptwing/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// jsonOutput forces JSON output on a terminal.
	jsonOutput bool
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promptwing",
	Short: "PromptWing - structured prompts for frontend coding agents",
	Long: `PromptWing turns a raw frontend request into a structured prompt package
for a coding agent: a task-type workflow with approval gates, guardrails,
clarifying questions and a checklist.

It can also score a prompt, scan a project tree, detect a project's stack,
and serve all of this to AI tools over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(isVerbose())
		logger.SetVersion(version)
		logger.SetCommand(cmd.CommandPath())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if msg := describeError(err); msg != "" {
			PrintError(msg, err)
		}
		os.Exit(exitCode(err))
	}
}

// GetVersion returns the CLI version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.promptwing/.promptwing.yaml or $HOME/.promptwing.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON even on a terminal")

	bindPersistentFlags()
}

// bindPersistentFlags binds the global flags to Viper keys of the same name.
func bindPersistentFlags() {
	for _, name := range []string{"config", "verbose", "json"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}
