package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// StoreDefaults seeds the settings store on first boot and acts as the
// fallback while rates have not been loaded yet.
type StoreDefaults struct {
	GoldRates          map[string]float64 `mapstructure:"gold_rates"`
	SilverRate         float64            `mapstructure:"silver_rate"`
	HeroImage          string             `mapstructure:"hero_image"`
	Categories         []string           `mapstructure:"categories"`
	Purities           []string           `mapstructure:"purities"`
	ShowcaseCategories []ShowcaseCategory `mapstructure:"showcase_categories"`
}

type ShowcaseCategory struct {
	Name  string `mapstructure:"name"`
	Image string `mapstructure:"image"`
}

func DefaultStoreDefaults() StoreDefaults {
	return StoreDefaults{
		GoldRates:  map[string]float64{"22K": 6650, "24K": 7255},
		SilverRate: 95,
		HeroImage:  "https://picsum.photos/id/1071/1600/900",
		Categories: []string{"Gold", "Silver", "Covering"},
		Purities:   []string{"24K", "22K", "92.5 Sterling"},
		ShowcaseCategories: []ShowcaseCategory{
			{Name: "Gold", Image: "https://picsum.photos/id/1071/500/500"},
			{Name: "Silver", Image: "https://picsum.photos/id/435/500/500"},
			{Name: "Covering", Image: "https://picsum.photos/id/659/500/500"},
		},
	}
}

// DefaultsHolder serves the current store defaults, hot-reloading the
// optional defaults file when it changes on disk.
type DefaultsHolder struct {
	current atomic.Value // holds StoreDefaults
}

func NewDefaultsHolder(cfg Config) (*DefaultsHolder, error) {
	holder := &DefaultsHolder{}
	holder.current.Store(DefaultStoreDefaults())

	v := viper.New()
	v.SetConfigName("storefront")
	v.SetConfigType("yml")
	if path := strings.TrimSpace(cfg.DefaultsPath); path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("/etc/aurum")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return holder, nil
		}
		return nil, err
	}

	if err := holder.reload(v); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		if err := holder.reload(v); err != nil {
			log.Printf("storefront defaults reload failed: %v", err)
		}
	})
	v.WatchConfig()

	return holder, nil
}

func (h *DefaultsHolder) Current() StoreDefaults {
	return h.current.Load().(StoreDefaults)
}

func (h *DefaultsHolder) reload(v *viper.Viper) error {
	defaults := DefaultStoreDefaults()
	if err := v.Unmarshal(&defaults); err != nil {
		return err
	}
	if len(defaults.GoldRates) == 0 {
		return errors.New("storefront defaults: gold_rates must not be empty")
	}
	h.current.Store(defaults)
	return nil
}
