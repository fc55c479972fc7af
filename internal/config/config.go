package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"check_hddtemp/internal/logger"
	"check_hddtemp/internal/models"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyServer      = "server"
	KeyPort        = "port"
	KeyDevices     = "devices"
	KeySeparator   = "separator"
	KeyWarning     = "warning"
	KeyCritical    = "critical"
	KeyTimeout     = "timeout"
	KeyPerformance = "performance"
	KeyQuiet       = "quiet"
	KeyLogLevel    = "log-level"
	KeyMetricsFile = "metrics-file"
	KeyConfig      = "config"
)

// Defaults match the hddtemp daemon and the historical plugin.
const (
	DefaultPort      = 7634
	DefaultSeparator = "|"
	DefaultWarning   = 40
	DefaultCritical  = 65
	DefaultTimeout   = 1
	DefaultLogLevel  = logger.WarnLevel

	envPrefix = "HDDTEMP"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is everything a single check needs.
type Config struct {
	Server      string
	Port        int
	Devices     []string // empty means every device in the response
	Separator   string
	Warning     int
	Critical    int
	Timeout     time.Duration
	Performance bool
	Quiet       bool
	LogLevel    string
	MetricsFile string
}

// Address returns host:port of the hddtemp daemon.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server, c.Port)
}

// Thresholds returns the warning/critical pair used by the classifier.
func (c Config) Thresholds() models.Thresholds {
	return models.Thresholds{Warning: c.Warning, Critical: c.Critical}
}

// RegisterFlags declares the plugin flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyServer, "s", "", "hddtemp server address")
	fs.IntP(KeyPort, "p", DefaultPort, "hddtemp server port")
	fs.StringP(KeyDevices, "d", "", "comma separated device list (empty: all devices)")
	fs.StringP(KeySeparator, "S", DefaultSeparator, "hddtemp response separator")
	fs.IntP(KeyWarning, "w", DefaultWarning, "warning temperature")
	fs.IntP(KeyCritical, "c", DefaultCritical, "critical temperature")
	fs.IntP(KeyTimeout, "t", DefaultTimeout, "server connection timeout in seconds")
	fs.BoolP(KeyPerformance, "P", false, "append performance data")
	fs.BoolP(KeyQuiet, "q", false, "suppress diagnostics on communication and parsing errors")
	fs.String(KeyLogLevel, DefaultLogLevel, "stderr log level: debug, info, warn, error, off")
	fs.String(KeyMetricsFile, "", "write Prometheus textfile metrics to this path")
	fs.String(KeyConfig, "", "path to a config file")
}

// NewViper returns a viper instance with defaults, environment binding and
// the flags of fs bound to it.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeySeparator, DefaultSeparator)
	v.SetDefault(KeyWarning, DefaultWarning)
	v.SetDefault(KeyCritical, DefaultCritical)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return v, nil
}

// ReadFile loads the config file named by the "config" key, or looks for
// config.yml in ./configs and the working directory. A missing default
// file is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper) error {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", path, err)
		}
		return nil
	}

	v.AddConfigPath("configs") // configs/config.yml
	v.AddConfigPath(".")
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load builds a validated Config out of v.
func Load(v *viper.Viper) (Config, error) {
	devices, err := parseDevices(v.GetString(KeyDevices))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Server:      strings.TrimSpace(v.GetString(KeyServer)),
		Port:        v.GetInt(KeyPort),
		Devices:     devices,
		Separator:   v.GetString(KeySeparator),
		Warning:     v.GetInt(KeyWarning),
		Critical:    v.GetInt(KeyCritical),
		Timeout:     time.Duration(v.GetInt(KeyTimeout)) * time.Second,
		Performance: v.GetBool(KeyPerformance),
		Quiet:       v.GetBool(KeyQuiet),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		MetricsFile: v.GetString(KeyMetricsFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the constraints that must hold before any network activity.
func (c Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("%w: separator must be a single character, got %q", ErrInvalidConfig, c.Separator)
	}
	if c.Warning >= c.Critical {
		return fmt.Errorf("%w: warning temperature (%d) must be lower than critical (%d)", ErrInvalidConfig, c.Warning, c.Critical)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// parseDevices splits the comma separated list, dropping blank entries.
// A list made only of blanks is rejected, otherwise it would silently mean "all".
func parseDevices(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var devices []string
	for _, d := range strings.Split(raw, ",") {
		if d = strings.TrimSpace(d); d != "" {
			devices = append(devices, d)
		}
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: device list %q names no devices", ErrInvalidConfig, raw)
	}
	return devices, nil
}
