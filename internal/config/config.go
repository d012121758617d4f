package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mgpai22/srtool/internal/charset"
)

const (
	EnvPrefix = "SRTOOL"

	KeyVerbose    = "verbose"
	KeyDecodeMode = "decode-mode"
	KeyOutput     = "output"
	KeyConfig     = "config"
)

// resolved settings shared by every command
type Config struct {
	Verbose    bool
	DecodeMode charset.Mode
	Output     string
}

// Load resolves settings from, highest first: flags set on the command line,
// SRTOOL_* environment variables, the config file, and flag defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyVerbose, KeyDecodeMode, KeyOutput} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	configFile := ""
	if f := flags.Lookup(KeyConfig); f != nil {
		configFile = f.Value.String()
	}
	if err := readConfigFile(v, configFile); err != nil {
		return Config{}, err
	}

	mode, err := charset.ParseMode(v.GetString(KeyDecodeMode))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Verbose:    v.GetBool(KeyVerbose),
		DecodeMode: mode,
		Output:     v.GetString(KeyOutput),
	}, nil
}

// an explicit path must exist; $HOME/.srtool.yaml is optional
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.SetConfigName(".srtool")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
