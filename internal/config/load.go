package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envNames lists, per setting key, the environment variables that may carry
// it. The unprefixed vendor names are what the vendors' own tooling reads.
var envNames = map[string][]string{
	"openai_api_key":  {"YTALI_OPENAI_API_KEY", "OPENAI_API_KEY"},
	"gemini_api_key":  {"YTALI_GEMINI_API_KEY", "GEMINI_API_KEY"},
	"mode":            {"YTALI_MODE"},
	"openai_model":    {"YTALI_OPENAI_MODEL"},
	"gemini_model":    {"YTALI_GEMINI_MODEL"},
	"openai_base_url": {"YTALI_OPENAI_BASE_URL"},
	"gemini_base_url": {"YTALI_GEMINI_BASE_URL"},
	"chunk_chars":     {"YTALI_CHUNK_CHARS"},
	"max_chunks":      {"YTALI_MAX_CHUNKS"},
	"no_edit":         {"YTALI_NO_EDIT"},
	"debug":           {"YTALI_DEBUG"},
}

// LoadOptions locates the optional files read by Load.
type LoadOptions struct {
	// ConfigFile is a YAML/TOML/JSON file understood by viper.
	ConfigFile string
	// EnvFile is a dotenv file. A missing file is ignored unless
	// EnvFileRequired is set.
	EnvFile         string
	EnvFileRequired bool
}

// NewViper returns a viper instance with defaults and environment bindings.
// Precedence is flags > environment > config file > .env > defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("mode", string(ModeCompare))
	v.SetDefault("openai_api_key", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("openai_model", DefaultOpenAIModel)
	v.SetDefault("gemini_model", DefaultGeminiModel)
	v.SetDefault("openai_base_url", "")
	v.SetDefault("gemini_base_url", "")
	v.SetDefault("chunk_chars", 0)
	v.SetDefault("max_chunks", 0)
	v.SetDefault("no_edit", false)
	v.SetDefault("debug", false)

	for key, names := range envNames {
		_ = v.BindEnv(append([]string{key}, names...)...)
	}
	return v
}

// Load resolves RunSettings from v. It does not validate them; validation
// belongs to the run.
func Load(v *viper.Viper, opts LoadOptions) (RunSettings, error) {
	if opts.EnvFile != "" {
		if err := applyDotEnv(v, opts.EnvFile, opts.EnvFileRequired); err != nil {
			return RunSettings{}, err
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return RunSettings{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s RunSettings
	if err := v.Unmarshal(&s); err != nil {
		return RunSettings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	mode, err := ParseRunMode(v.GetString("mode"))
	if err != nil {
		return RunSettings{}, err
	}
	s.Mode = mode
	s.OpenAIAPIKey = strings.TrimSpace(s.OpenAIAPIKey)
	s.GeminiAPIKey = strings.TrimSpace(s.GeminiAPIKey)
	return s, nil
}

// applyDotEnv reads the dotenv file without touching the process
// environment and installs its values as defaults.
func applyDotEnv(v *viper.Viper, path string, required bool) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file: %w", err)
	}

	for key, names := range envNames {
		for _, name := range names {
			if val, ok := values[name]; ok && val != "" {
				v.SetDefault(key, val)
				break
			}
		}
	}
	return nil
}
