// Package config loads daemon configuration from an optional YAML file
// (streetlight.yaml), STREETLIGHT_* environment variables, and built-in
// defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aymanmw1/streetlight/internal/clock"
	"github.com/aymanmw1/streetlight/internal/gpio"
)

// Pins holds the BCM pin assignments.
type Pins struct {
	LDR  int `mapstructure:"ldr"`
	PIR  int `mapstructure:"pir"`
	Lamp int `mapstructure:"lamp"`
}

// Display backends.
const (
	DisplayConsole = "console"
	DisplayLCD     = "lcd"
)

// Display selects and addresses the status panel.
type Display struct {
	// Backend is "console" (render to stdout) or "lcd" (HD44780 panel
	// behind an I2C backpack).
	Backend string `mapstructure:"backend"`

	// I2CBus is the Linux I2C bus number (/dev/i2c-N), lcd backend only.
	I2CBus int `mapstructure:"i2c_bus"`

	// I2CAddr is the backpack's 7-bit I2C address, lcd backend only.
	I2CAddr int `mapstructure:"i2c_addr"`
}

// Config is the daemon configuration.
type Config struct {
	// Poll is the control loop's sampling period.
	Poll time.Duration `mapstructure:"poll"`

	// Tick is the software clock's tick period. One tick advances the
	// clock by one second regardless of the period, so values other than
	// 1s run the clock fast or slow (useful in simulation).
	Tick time.Duration `mapstructure:"tick"`

	// Seed is the clock reading at startup, HH:MM:SS.
	Seed string `mapstructure:"seed"`

	// LogTransitions enables the sunrise/sunset transition logger.
	LogTransitions bool `mapstructure:"log_transitions"`

	// Dwell is how long the transition screen is held, blocking the loop.
	Dwell time.Duration `mapstructure:"dwell"`

	// BannerDwell is how long the startup banner is shown.
	BannerDwell time.Duration `mapstructure:"banner_dwell"`

	// Heartbeat is the system heartbeat interval (0 disables).
	Heartbeat time.Duration `mapstructure:"heartbeat"`

	Pins Pins `mapstructure:"pins"`

	Display Display `mapstructure:"display"`

	// Broker is the MQTT broker address (empty disables MQTT).
	Broker string `mapstructure:"broker"`

	// HTTPAddr is the status server address (empty disables HTTP).
	HTTPAddr string `mapstructure:"http_addr"`
}

// SeedTime parses the configured seed into a clock time.
func (c Config) SeedTime() (clock.Time, error) {
	return clock.Parse(c.Seed)
}

// Load reads the configuration, looking for streetlight.yaml in path.
// A missing file is not an error; everything has defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigName("streetlight")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetEnvPrefix("STREETLIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("poll", "150ms")
	v.SetDefault("tick", "1s")
	v.SetDefault("seed", "22:00:00")
	v.SetDefault("log_transitions", true)
	v.SetDefault("dwell", "5s")
	v.SetDefault("banner_dwell", "2s")
	v.SetDefault("heartbeat", "15m")
	v.SetDefault("pins.ldr", gpio.DefaultPinLDR)
	v.SetDefault("pins.pir", gpio.DefaultPinPIR)
	v.SetDefault("pins.lamp", gpio.DefaultPinLamp)
	v.SetDefault("display.backend", DisplayConsole)
	v.SetDefault("display.i2c_bus", 1)
	v.SetDefault("display.i2c_addr", 0x27)
	v.SetDefault("broker", "tcp://192.168.1.200:1883")
	v.SetDefault("http_addr", ":8080")
}

func (c Config) validate() error {
	if c.Poll <= 0 {
		return fmt.Errorf("config: poll must be positive, got %v", c.Poll)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("config: tick must be positive, got %v", c.Tick)
	}
	if c.Dwell < 0 {
		return fmt.Errorf("config: dwell must not be negative, got %v", c.Dwell)
	}
	if c.BannerDwell < 0 {
		return fmt.Errorf("config: banner_dwell must not be negative, got %v", c.BannerDwell)
	}
	if c.Heartbeat < 0 {
		return fmt.Errorf("config: heartbeat must not be negative, got %v", c.Heartbeat)
	}
	if _, err := clock.Parse(c.Seed); err != nil {
		return fmt.Errorf("config: seed: %w", err)
	}
	switch c.Display.Backend {
	case DisplayConsole, DisplayLCD:
	default:
		return fmt.Errorf("config: display.backend must be %q or %q, got %q",
			DisplayConsole, DisplayLCD, c.Display.Backend)
	}
	// 7-bit address space, reserved ranges excluded.
	if c.Display.I2CAddr < 0x03 || c.Display.I2CAddr > 0x77 {
		return fmt.Errorf("config: display.i2c_addr out of range: %#x", c.Display.I2CAddr)
	}
	return nil
}
