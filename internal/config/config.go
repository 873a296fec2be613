package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"github.com/limaJavier/coursetable/internal/locale"
	"github.com/limaJavier/coursetable/pkg/model"
)

const (
	FileName  = "config.toml"
	EnvPrefix = "COURSETABLE_"
)

type Config struct {
	Locale      string `mapstructure:"locale"`
	Strategy    string `mapstructure:"strategy"`
	LogLevel    string `mapstructure:"log_level"`
	LogEncoding string `mapstructure:"log_encoding"`
	BlankLines  int    `mapstructure:"blank_lines"` // Consecutive blank lines that end pasted input
}

func Default() Config {
	return Config{
		Locale:      locale.Turkish,
		Strategy:    model.PrunedStrategy,
		LogLevel:    "warn",
		LogEncoding: "console",
		BlankLines:  3,
	}
}

// Load layers the defaults, the TOML file at filePath, a .env file in the working directory and COURSETABLE_* variables.
// An empty filePath looks for config.toml next to the executable and tolerates its absence.
// The result is not validated: callers apply their own overrides first and then call Validate
func Load(filePath string) (Config, error) {
	config := Default()

	explicit := filePath != ""
	if !explicit {
		filePath = DefaultPath()
	}

	if filePath != "" {
		values, err := readFile(filePath)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return Config{}, err
		}
		if err := decode(values, &config); err != nil {
			return Config{}, fmt.Errorf("cannot decode %v: %w", filePath, err)
		}
	}

	// A missing .env file is not an error
	_ = godotenv.Load()
	if err := decode(environment(), &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode environment: %w", err)
	}

	return config, nil
}

// Path of config.toml in the executable's directory, empty if it cannot be determined
func DefaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	return path.Join(path.Dir(execPath), FileName)
}

func (config Config) Validate() error {
	if _, err := locale.Get(config.Locale); err != nil {
		return err
	}
	if _, ok := model.Strategies[config.Strategy]; !ok {
		strategies := lo.Keys(model.Strategies)
		slices.Sort(strategies)
		return fmt.Errorf("%v is not a valid strategy, expected one of %v", config.Strategy, strategies)
	}
	if config.BlankLines < 1 {
		return fmt.Errorf("blank_lines must be greater than 0: %v", config.BlankLines)
	}
	return nil
}

func readFile(filePath string) (map[string]any, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var values map[string]any
	if err := toml.Unmarshal(bytes, &values); err != nil {
		return nil, fmt.Errorf("cannot parse config file %v: %w", filePath, err)
	}
	return values, nil
}

// COURSETABLE_LOG_LEVEL=debug becomes {"log_level": "debug"}
func environment() map[string]any {
	values := make(map[string]any)
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		values[strings.ToLower(strings.TrimPrefix(key, EnvPrefix))] = value
	}
	return values
}

func decode(values map[string]any, config *Config) error {
	if len(values) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}
