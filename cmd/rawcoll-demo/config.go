package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "RAWCOLL"

	flagPush        = "push"
	flagInsertAt    = "insert-at"
	flagInsert      = "insert"
	flagRemoveFront = "remove-front"
	flagOutput      = "output"
	flagChunkSize   = "chunk-size"
	flagVerbose     = "verbose"

	outputText = "text"
	outputYAML = "yaml"
)

var defaultPush = []int{5, 6, 7, 8}

// demoConfig is the resolved configuration for one run.
type demoConfig struct {
	Push        []int
	InsertAt    int
	Insert      int
	RemoveFront bool
	Output      string
	ChunkSize   int
	Verbose     bool
}

// configKey maps a flag name to its config file key and env suffix.
func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// loadConfig resolves the configuration with precedence
// flag > RAWCOLL_* env > config file > flag default.
func loadConfig(cmd *cobra.Command, configFile string) (demoConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, name := range []string{flagPush, flagInsertAt, flagInsert, flagRemoveFront, flagOutput, flagChunkSize, flagVerbose} {
		if err := v.BindPFlag(configKey(name), cmd.Flags().Lookup(name)); err != nil {
			return demoConfig{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return demoConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	push, err := intList(v, configKey(flagPush))
	if err != nil {
		return demoConfig{}, err
	}

	cfg := demoConfig{
		Push:        push,
		InsertAt:    v.GetInt(configKey(flagInsertAt)),
		Insert:      v.GetInt(configKey(flagInsert)),
		RemoveFront: v.GetBool(configKey(flagRemoveFront)),
		Output:      v.GetString(configKey(flagOutput)),
		ChunkSize:   v.GetInt(configKey(flagChunkSize)),
		Verbose:     v.GetBool(configKey(flagVerbose)),
	}
	if cfg.Output != outputText && cfg.Output != outputYAML {
		return demoConfig{}, fmt.Errorf("unknown output format %q", cfg.Output)
	}
	return cfg, nil
}

// intList reads key as a list of ints. Environment variables arrive as a
// single comma separated string, optionally bracketed.
func intList(v *viper.Viper, key string) ([]int, error) {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetIntSlice(key), nil
	}
	var out []int
	for _, field := range strings.Split(strings.Trim(raw, "[]"), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, n)
	}
	return out, nil
}
