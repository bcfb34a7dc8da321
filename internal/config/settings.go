package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Settings are the display/billing defaults the dashboard reads on every
// request. They live in settings.yml so an operator can tune them without
// a restart.
type Settings struct {
	CurrencySymbol  string  `mapstructure:"currencySymbol"`
	RentPageSize    int     `mapstructure:"rentPageSize"`
	DefaultUnitRate float64 `mapstructure:"defaultUnitRate"`
}

func DefaultSettings() Settings {
	return Settings{
		CurrencySymbol:  "₹",
		RentPageSize:    5,
		DefaultUnitRate: 5,
	}
}

type SettingsHolder struct {
	current atomic.Value // holds Settings
}

func NewSettingsHolder() (*SettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("settings")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/rentdesk/config") // Volume-mounted config
	v.AddConfigPath("/etc/rentdesk")            // System config
	v.AddConfigPath(".")                        // Current directory (dev mode)

	v.SetEnvPrefix("RENTDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultSettings()
		v.SetDefault("rentdesk.currencySymbol", defaults.CurrencySymbol)
		v.SetDefault("rentdesk.rentPageSize", defaults.RentPageSize)
		v.SetDefault("rentdesk.defaultUnitRate", defaults.DefaultUnitRate)
	}

	var cfg Settings
	if err := v.UnmarshalKey("rentdesk", &cfg); err != nil {
		return nil, err
	}
	if err := validateSettings(cfg); err != nil {
		return nil, err
	}

	holder := &SettingsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Settings
		if err := v.UnmarshalKey("rentdesk", &updated); err != nil {
			log.Printf("[settings] reload failed: %v", err)
			return
		}
		if err := validateSettings(updated); err != nil {
			log.Printf("[settings] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[settings] reloaded from %s", e.Name)
	})

	return holder, nil
}

// StaticSettings returns a holder pinned to the given settings, with no
// file watching. Tests use this to avoid touching the filesystem.
func StaticSettings(cfg Settings) *SettingsHolder {
	holder := &SettingsHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *SettingsHolder) Get() Settings {
	return h.current.Load().(Settings)
}

func validateSettings(cfg Settings) error {
	if strings.TrimSpace(cfg.CurrencySymbol) == "" {
		return errors.New("rentdesk.currencySymbol cannot be empty")
	}
	if cfg.RentPageSize <= 0 {
		return errors.New("rentdesk.rentPageSize must be positive")
	}
	if cfg.DefaultUnitRate < 0 {
		return errors.New("rentdesk.defaultUnitRate cannot be negative")
	}
	return nil
}
