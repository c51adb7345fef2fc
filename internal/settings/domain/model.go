package domain

import (
	"time"

	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
	"gorm.io/datatypes"
)

// Settings is the in-process shape of the storefront configuration.
type Settings struct {
	GoldRates          map[catalogdomain.Purity]float64
	SilverRate         float64
	HeroImage          string
	Categories         []catalogdomain.Category
	Purities           []catalogdomain.Purity
	ShowcaseCategories []ShowcaseCategory
}

type ShowcaseCategory struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// External is the store/wire representation: snake_case field names,
// distinct from the in-process shape. Translation happens at the boundary.
type External struct {
	GoldRates          map[string]float64 `json:"gold_rates"`
	SilverRate         float64            `json:"silver_rate"`
	HeroImage          string             `json:"hero_image"`
	Categories         []string           `json:"categories"`
	Purities           []string           `json:"purities"`
	ShowcaseCategories []ShowcaseCategory `json:"showcase_categories"`
}

func (s Settings) ToExternal() External {
	rates := make(map[string]float64, len(s.GoldRates))
	for purity, rate := range s.GoldRates {
		rates[string(purity)] = rate
	}
	categories := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, string(c))
	}
	purities := make([]string, 0, len(s.Purities))
	for _, p := range s.Purities {
		purities = append(purities, string(p))
	}
	return External{
		GoldRates:          rates,
		SilverRate:         s.SilverRate,
		HeroImage:          s.HeroImage,
		Categories:         categories,
		Purities:           purities,
		ShowcaseCategories: s.ShowcaseCategories,
	}
}

func FromExternal(ext External) Settings {
	rates := make(map[catalogdomain.Purity]float64, len(ext.GoldRates))
	for purity, rate := range ext.GoldRates {
		rates[catalogdomain.Purity(purity)] = rate
	}
	categories := make([]catalogdomain.Category, 0, len(ext.Categories))
	for _, c := range ext.Categories {
		categories = append(categories, catalogdomain.Category(c))
	}
	purities := make([]catalogdomain.Purity, 0, len(ext.Purities))
	for _, p := range ext.Purities {
		purities = append(purities, catalogdomain.Purity(p))
	}
	return Settings{
		GoldRates:          rates,
		SilverRate:         ext.SilverRate,
		HeroImage:          ext.HeroImage,
		Categories:         categories,
		Purities:           purities,
		ShowcaseCategories: ext.ShowcaseCategories,
	}
}

// Record is the persisted row. A single row holds the whole configuration.
type Record struct {
	ID                 int64                                  `gorm:"primaryKey"`
	GoldRates          datatypes.JSONType[map[string]float64] `gorm:"column:gold_rates"`
	SilverRate         float64                                `gorm:"column:silver_rate;not null"`
	HeroImage          string                                 `gorm:"column:hero_image;type:text"`
	Categories         datatypes.JSONSlice[string]            `gorm:"column:categories"`
	Purities           datatypes.JSONSlice[string]            `gorm:"column:purities"`
	ShowcaseCategories datatypes.JSONSlice[ShowcaseCategory]  `gorm:"column:showcase_categories"`
	UpdatedAt          time.Time                              `gorm:"not null"`
}

func (Record) TableName() string { return "settings" }
