package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/promptwing/internal/config"
	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/logger"
	"github.com/josephgoksu/promptwing/internal/optimize"
	"github.com/josephgoksu/promptwing/types"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Translate, it caches struct info
var validate = validator.New()

// appFs backs every file the commands read or write.
var appFs = afero.NewOsFs()

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// It's okay if .env doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., PROMPTWING_OUTPUT_LANGUAGE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names

	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		for _, p := range config.SearchPaths() {
			viper.AddConfigPath(p)
		}
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType(config.ConfigType)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && cfgFileFlag == "":
			if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		case cfgFileFlag != "" && errors.Is(err, os.ErrNotExist):
			fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
		default:
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		HandleFatalError("Error: could not read the configuration.", err)
	}

	if err := validate.Struct(&GlobalAppConfig); err != nil {
		HandleFatalError("Configuration validation error: "+err.Error(), err)
	}

	if cwd, err := os.Getwd(); err == nil {
		logger.SetBasePath(config.CrashLogBase(cwd))
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// optimizeDefaults maps the loaded configuration onto request defaults.
func optimizeDefaults() optimize.Defaults {
	cfg := GetConfig()
	d := optimize.DefaultDefaults()
	if cfg.Output.Language != "" {
		d.OutputLanguage = cfg.Output.Language
	}
	if cfg.Output.Format != "" {
		d.OutputFormat = cfg.Output.Format
	}
	if cfg.Output.CodeStyle != "" {
		d.CodeStyle = cfg.Output.CodeStyle
	}
	d.MustAskClarifyingQuestions = cfg.Optimize.MustAskClarifyingQuestions
	d.RequireApprovalGates = cfg.Optimize.RequireApprovalGates
	return d
}

// dataDir returns the configured override directory.
func dataDir() string {
	if dir := GetConfig().Data.Dir; dir != "" {
		return dir
	}
	return config.DefaultDataDir
}

// loadCatalogs returns the built-in catalogs with the project's overrides
// applied. Skipped override files are logged, never fatal.
func loadCatalogs() *locale.Set {
	set, err := locale.Load(appFs, dataDir())
	if err != nil {
		slog.Warn("some prompt overrides were skipped", "dir", dataDir(), "error", err)
	}
	return set
}

// catalogFor returns the catalog for lang, or for the configured output
// language when lang is blank.
func catalogFor(lang string) (*locale.Catalog, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = optimizeDefaults().OutputLanguage
	}
	if !locale.Language(lang).IsValid() {
		return nil, types.NewArgumentError("output-language", fmt.Sprintf("must be one of zh, en (got %q)", lang))
	}
	return loadCatalogs().Catalog(locale.Language(lang))
}
