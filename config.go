package devlist

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/troian/toml"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	BackendSetupAPI    = "setupapi"
	BackendWMI         = "wmi"
	BackendLinuxHW     = "linuxhw"
	BackendSysProfiler = "sysprofiler"
)

var DefaultCfgPath string

type Config struct {
	LogLevel  LogLevel `toml:"log_level"`
	LogFile   string   `toml:"log"`
	LogSyslog string   `toml:"log_syslog"`

	Format string `toml:"format"` // "text" or "json"

	// Backend selects the device enumeration backend. Empty picks the
	// platform default.
	Backend string `toml:"backend"`

	// Interval in seconds between listing passes. 0 lists once and exits.
	Interval float64 `toml:"interval"`

	WMIQueryTimeout float64 `toml:"wmi_query_timeout"` // seconds, wmi backend only

	Sources []string `toml:"sources"` // linuxhw backend only
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:        LogLevelError,
		Format:          FormatText,
		WMIQueryTimeout: 10,
	}
}

// TryUpdateConfigFromFile applies the settings of the TOML file at
// configFilePath on top of cfg.
func TryUpdateConfigFromFile(cfg *Config, configFilePath string) error {
	if _, err := os.Stat(configFilePath); err != nil {
		return err
	}

	_, err := toml.DecodeFile(configFilePath, cfg)
	if err != nil {
		return errors.Wrapf(err, "cannot parse config file %s", configFilePath)
	}
	return nil
}

// HandleAllConfigSetup returns the default config updated from
// configFilePath. A missing file is not an error, the defaults are used.
func HandleAllConfigSetup(configFilePath string) (*Config, error) {
	cfg := NewDefaultConfig()

	if configFilePath != "" {
		err := TryUpdateConfigFromFile(cfg, configFilePath)
		if os.IsNotExist(errors.Cause(err)) {
			log.Debugf("Config file %s not found, using defaults", configFilePath)
		} else if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		return fmt.Errorf("log_level: unsupported value %q", cfg.LogLevel)
	}

	switch cfg.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("format: unsupported value %q", cfg.Format)
	}

	if cfg.Backend != "" && !isSupportedBackend(cfg.Backend) {
		return fmt.Errorf("backend: %q is not available on this platform, use one of %v", cfg.Backend, supportedBackends)
	}

	if cfg.Interval < 0 {
		return fmt.Errorf("interval: must be 0 or positive, got %v", cfg.Interval)
	}

	if cfg.WMIQueryTimeout < 0 {
		return fmt.Errorf("wmi_query_timeout: must be 0 or positive, got %v", cfg.WMIQueryTimeout)
	}

	return nil
}

func isSupportedBackend(name string) bool {
	for _, b := range supportedBackends {
		if b == name {
			return true
		}
	}
	return false
}

func (cfg *Config) DumpToml() string {
	buff := &bytes.Buffer{}
	enc := toml.NewEncoder(buff)
	if err := enc.Encode(cfg); err != nil {
		log.WithError(err).Errorln("DumpToml error")
		return ""
	}
	return buff.String()
}

func secToDuration(secs float64) time.Duration {
	return time.Duration(int64(float64(time.Second) * secs))
}
