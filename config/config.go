package config

import (
	"errors"
	"reflect"
	"runtime"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/leakhound/leakhound/scanners"
)

const (
	DefaultScanTimeout = 10 * time.Minute
	DefaultGitTimeout  = 5 * time.Minute
	DefaultWorkers     = 1
	DefaultEnvironment = "development"
	DefaultGitleaksBin = "gitleaks"
)

// Config is the full audit configuration. Flags and the yaml file populate
// the same struct; Merge overlays one onto the other, ApplyDefaults fills
// what neither set, and Validate rejects what must not stay empty.
type Config struct {
	RepositoriesFile string `long:"repositories-file" description:"path to the repository list" value-name:"PATH" yaml:"repositories_file"`
	ReposDir         string `long:"repos-dir" description:"directory working copies are cloned into" value-name:"PATH" yaml:"repos_dir"`
	ResultsDir       string `long:"results-dir" description:"directory scan artifacts are written to" value-name:"PATH" yaml:"results_dir"`
	LogsDir          string `long:"logs-dir" description:"directory run logs are written to" value-name:"PATH" yaml:"logs_dir"`

	// Workers distinguishes "not configured" (nil, defaults to one) from an
	// explicit zero, which resolves to one worker per CPU.
	Workers *int `long:"workers" description:"repositories to audit in parallel; 0 means one per CPU" value-name:"N" yaml:"workers"`

	ScanTimeout time.Duration `long:"scan-timeout" description:"how long one scanner invocation may run" value-name:"DURATION" yaml:"scan_timeout"`
	GitTimeout  time.Duration `long:"git-timeout" description:"how long one git operation may run" value-name:"DURATION" yaml:"git_timeout"`

	TruffleHog struct {
		Image string `long:"trufflehog-image" description:"trufflehog container image" value-name:"IMAGE" yaml:"image"`
	} `group:"TruffleHog Options" yaml:"trufflehog"`

	Gitleaks struct {
		Binary string `long:"gitleaks-binary" description:"gitleaks executable to probe for" value-name:"NAME" yaml:"binary"`
	} `group:"Gitleaks Options" yaml:"gitleaks"`

	Metrics struct {
		DatadogAPIKey string `long:"datadog-api-key" description:"key to emit to datadog" env:"DATADOG_API_KEY" value-name:"KEY" yaml:"datadog_api_key"`
		Environment   string `long:"environment" description:"environment tag for metrics" env:"ENVIRONMENT" value-name:"NAME" yaml:"environment"`
	} `group:"Metrics Options" yaml:"metrics"`

	Debug bool `long:"debug" description:"log at debug level to stdout" yaml:"debug"`
}

func LoadConfig(bs []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Merge overwrites c's fields with other's wherever other holds a non-zero
// value. Overlay flag-parsed values onto file-parsed values so the command
// line wins.
func (c *Config) Merge(other *Config) error {
	src := reflect.ValueOf(other).Elem()
	dst := reflect.ValueOf(c).Elem()

	return merge(dst, src)
}

func (c *Config) ApplyDefaults() {
	if c.Workers == nil {
		workers := DefaultWorkers
		c.Workers = &workers
	}
	if c.ScanTimeout == 0 {
		c.ScanTimeout = DefaultScanTimeout
	}
	if c.GitTimeout == 0 {
		c.GitTimeout = DefaultGitTimeout
	}
	if c.TruffleHog.Image == "" {
		c.TruffleHog.Image = scanners.DefaultTruffleHogImage
	}
	if c.Gitleaks.Binary == "" {
		c.Gitleaks.Binary = DefaultGitleaksBin
	}
	if c.Metrics.Environment == "" {
		c.Metrics.Environment = DefaultEnvironment
	}
}

// EffectiveWorkers resolves the configured worker count: nil and negatives
// collapse to one, zero means one per CPU.
func (c *Config) EffectiveWorkers() int {
	if c.Workers == nil || *c.Workers < 0 {
		return DefaultWorkers
	}
	if *c.Workers == 0 {
		return runtime.NumCPU()
	}
	return *c.Workers
}

func (c *Config) Validate() []error {
	var errs []error

	if c.RepositoriesFile == "" {
		errs = append(errs, errors.New("no repositories file specified"))
	}

	if c.ReposDir == "" {
		errs = append(errs, errors.New("no repos directory specified"))
	}

	if c.ResultsDir == "" {
		errs = append(errs, errors.New("no results directory specified"))
	}

	if c.LogsDir == "" {
		errs = append(errs, errors.New("no logs directory specified"))
	}

	if c.ScanTimeout < 0 {
		errs = append(errs, errors.New("scan timeout must not be negative"))
	}

	if c.GitTimeout < 0 {
		errs = append(errs, errors.New("git timeout must not be negative"))
	}

	return errs
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func merge(dst, src reflect.Value) error {
	if !src.IsValid() {
		return nil
	}

	switch src.Kind() {
	case reflect.Struct:
		for i, n := 0, dst.NumField(); i < n; i++ {
			err := merge(dst.Field(i), src.Field(i))
			if err != nil {
				return err
			}
		}
	default:
		if dst.CanSet() && !isEmptyValue(src) {
			dst.Set(src)
		}
	}

	return nil
}
