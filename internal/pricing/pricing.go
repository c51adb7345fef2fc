package pricing

import (
	"math"

	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
)

const (
	// DefaultMakingChargesPercent applies when a product carries no making
	// charge of its own.
	DefaultMakingChargesPercent = 15

	// taxRate is the flat GST applied to gold pricing.
	taxRate = 0.03
)

// RateTable holds the current per-gram metal rates. A zero or missing rate
// means "not yet loaded" and must never be priced against.
type RateTable struct {
	Gold   map[catalogdomain.Purity]float64
	Silver float64
}

// Quote is the full pricing breakdown for a product. When Derived is false
// the stored base price is authoritative and the component fields are zero.
type Quote struct {
	MetalValue   float64 `json:"metal_value"`
	MakingCharge float64 `json:"making_charge"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	Total        int64   `json:"total"`
	Derived      bool    `json:"derived"`
}

// Compute returns the sellable price for a product in whole currency units.
// Gold products with a known purity, a weight and a loaded rate are priced
// from the rate table; everything else falls back to the stored base price.
// The function is pure and never fails: missing data degrades to the base
// price, never to zero or an error.
func Compute(p catalogdomain.Product, rates RateTable) int64 {
	return Breakdown(p, rates).Total
}

// Breakdown computes the quote the admin product form uses to pre-fill the
// price field. The administrator may override the result; the override
// becomes the stored base price.
func Breakdown(p catalogdomain.Product, rates RateTable) Quote {
	fallback := Quote{Total: int64(math.Round(p.Price))}

	if p.Category != catalogdomain.CategoryGold || p.Weight == nil || p.Purity == nil {
		return fallback
	}
	purity := *p.Purity
	if purity != catalogdomain.Purity22K && purity != catalogdomain.Purity24K {
		return fallback
	}

	rate, ok := rates.Gold[purity]
	if !ok || rate == 0 {
		// Rates not loaded yet; never price against a zero rate.
		return fallback
	}

	pct := float64(DefaultMakingChargesPercent)
	if p.MakingCharges != nil {
		pct = *p.MakingCharges
	}

	metalValue := *p.Weight * rate
	makingCharge := metalValue * (pct / 100)
	subtotal := metalValue + makingCharge
	tax := subtotal * taxRate

	return Quote{
		MetalValue:   metalValue,
		MakingCharge: makingCharge,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        int64(math.Round(subtotal + tax)),
		Derived:      true,
	}
}
