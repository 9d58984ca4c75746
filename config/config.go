package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/DanWlker/dart-json-serializable-helper/generator"
)

// FileName is the name of the config file looked up in the working
// directory and in $HOME.
const FileName = ".dartdata.yaml"

const (
	configName      = ".dartdata"
	configType      = "yaml"
	envPrefix       = "DARTDATA"
	envKeySeparator = "_"
)

var ErrUnknownPart = generator.ErrUnknownPart

// Load reads generator options from defaults, the config file and
// DARTDATA_* environment variables, in increasing precedence. If path is
// empty the file is searched in the working directory and $HOME. A missing
// file is not an error.
func Load(path string) (*generator.Options, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var opts generator.Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&opts); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &opts, nil
}

func applyDefaults(v *viper.Viper) {
	d := generator.DefaultOptions()

	v.SetDefault("constructor.enabled", d.Constructor.Enabled)
	v.SetDefault("constructor.default_values", d.Constructor.DefaultValues)
	v.SetDefault("copyWith.enabled", d.CopyWith.Enabled)
	v.SetDefault("toMap.enabled", d.ToMap.Enabled)
	v.SetDefault("fromMap.enabled", d.FromMap.Enabled)
	v.SetDefault("fromMap.default_values", d.FromMap.DefaultValues)
	v.SetDefault("fromMap.coerce_numbers", d.FromMap.CoerceNumbers)
	v.SetDefault("toJson.enabled", d.ToJson.Enabled)
	v.SetDefault("fromJson.enabled", d.FromJson.Enabled)
	v.SetDefault("toString.enabled", d.ToString.Enabled)
	v.SetDefault("equality.enabled", d.Equality.Enabled)
	v.SetDefault("hashCode.enabled", d.HashCode.Enabled)
	v.SetDefault("hashCode.use_jenkins", d.HashCode.UseJenkins)
	v.SetDefault("useEquatable", d.UseEquatable)
	v.SetDefault("useEquatableMixin", d.UseEquatableMixin)
	v.SetDefault("part", string(d.Part))
	v.SetDefault("project.name", d.Project.Name)
	v.SetDefault("project.flutter", d.Project.Flutter)
}

func Validate(opts *generator.Options) error {
	if !opts.Part.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownPart, opts.Part)
	}
	return nil
}

// Write encodes opts as YAML.
func Write(w io.Writer, opts *generator.Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// WriteDefault creates a config file holding the default options. An
// existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	opts := generator.DefaultOptions()
	return Write(f, &opts)
}
