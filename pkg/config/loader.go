package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/pyboot/pkg/errors"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PYBOOT_"

// envKeySeparator separates key segments in environment variable names,
// so single underscores inside keys survive
const envKeySeparator = "__"

// Options controls which layers Load reads.
type Options struct {
	// ConfigFile is the user file and must exist; empty means
	// paths.ConfigFilePath(), which may be absent
	ConfigFile string

	// SkipUserFile loads no user file at all
	SkipUserFile bool

	// SkipEnv ignores PYBOOT_ environment variables
	SkipEnv bool

	// Overrides are applied last, keyed by dotted path
	Overrides map[string]interface{}
}

// Load layers the embedded defaults, the user file, the environment and
// the overrides, then decodes the result.
func Load(opts Options) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User file; only the default location may be absent
	if !opts.SkipUserFile {
		path, required := opts.ConfigFile, true
		if path == "" {
			path, required = paths.ConfigFilePath(), false
		}
		if err := loadUserFile(k, path, required); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("author", cfg.Author).
		Dur("authorLookupTimeout", cfg.AuthorLookupTimeout).
		Bool("strictPaths", cfg.Paths.Strict).
		Strs("templates", cfg.TemplateIDs()).
		Msg("Configuration loaded")

	return cfg, nil
}

// LoadDefaults decodes the embedded defaults alone.
func LoadDefaults() (*Config, error) {
	return Load(Options{SkipUserFile: true, SkipEnv: true})
}

func loadUserFile(k *koanf.Koanf, path string, required bool) error {
	log := logging.GetLogger("config")

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if required {
			return errors.Newf(errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("No user config file")
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config file %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrConfigLoad, "config path %s is a directory", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config file %s", path).
			WithDetail("path", path)
	}

	log.Debug().Str("path", path).Msg("Loaded user config file")
	return nil
}

// envKey maps PYBOOT_TEMPLATES__RUFF__FORCE to templates.ruff.force.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, envKeySeparator, ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AuthorLookupTimeout < 0 {
		return errors.Newf(errors.ErrConfigParse, "author_lookup_timeout must not be negative, got %s", cfg.AuthorLookupTimeout)
	}
	if strings.TrimSpace(cfg.Interpreter) == "" {
		return errors.New(errors.ErrConfigParse, "interpreter must not be empty")
	}
	return nil
}
