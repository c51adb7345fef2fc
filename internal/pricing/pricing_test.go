package pricing

import (
	"testing"

	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/stretchr/testify/assert"
)

func loadedRates() RateTable {
	return RateTable{
		Gold: map[catalogdomain.Purity]float64{
			catalogdomain.Purity22K: 6650,
			catalogdomain.Purity24K: 7255,
		},
		Silver: 95,
	}
}

func goldProduct(weight float64, purity catalogdomain.Purity, makingCharges *float64) catalogdomain.Product {
	return catalogdomain.Product{
		ID:            "g1",
		Name:          "Gold Bar",
		Category:      catalogdomain.CategoryGold,
		Price:         60000,
		Weight:        &weight,
		Purity:        &purity,
		MakingCharges: makingCharges,
	}
}

func TestComputeGoldFormula(t *testing.T) {
	making := 5.0
	p := goldProduct(10, catalogdomain.Purity24K, &making)

	// 10g * 7255 = 72550; +5% making = 76177.50; +3% tax = 78462.825
	assert.Equal(t, int64(78463), Compute(p, loadedRates()))
}

func TestComputeDefaultMakingCharges(t *testing.T) {
	p := goldProduct(10, catalogdomain.Purity22K, nil)

	// 66500 metal, 15% default making, 3% tax.
	assert.Equal(t, int64(78769), Compute(p, loadedRates()))
}

func TestComputeNonGoldUsesBasePrice(t *testing.T) {
	weight := 25.0
	purity := catalogdomain.PuritySterling
	p := catalogdomain.Product{
		ID:       "s1",
		Category: catalogdomain.CategorySilver,
		Price:    2500,
		Weight:   &weight,
		Purity:   &purity,
	}

	assert.Equal(t, int64(2500), Compute(p, loadedRates()))
}

func TestComputeMissingWeightUsesBasePrice(t *testing.T) {
	purity := catalogdomain.Purity22K
	p := catalogdomain.Product{
		ID:       "g9",
		Category: catalogdomain.CategoryGold,
		Price:    59139,
		Purity:   &purity,
	}

	assert.Equal(t, int64(59139), Compute(p, loadedRates()))
}

func TestComputeMissingPurityUsesBasePrice(t *testing.T) {
	weight := 8.5
	p := catalogdomain.Product{
		ID:       "g9",
		Category: catalogdomain.CategoryGold,
		Price:    59139,
		Weight:   &weight,
	}

	assert.Equal(t, int64(59139), Compute(p, loadedRates()))
}

func TestComputeZeroRateUsesBasePrice(t *testing.T) {
	p := goldProduct(10, catalogdomain.Purity24K, nil)

	// Rates not loaded yet: never derive from a zero rate.
	empty := RateTable{Gold: map[catalogdomain.Purity]float64{catalogdomain.Purity24K: 0}}
	assert.Equal(t, int64(60000), Compute(p, empty))
	assert.Equal(t, int64(60000), Compute(p, RateTable{}))
}

func TestBreakdownDerivedQuote(t *testing.T) {
	making := 5.0
	p := goldProduct(10, catalogdomain.Purity24K, &making)

	quote := Breakdown(p, loadedRates())
	assert.True(t, quote.Derived)
	assert.InDelta(t, 72550, quote.MetalValue, 0.001)
	assert.InDelta(t, 3627.5, quote.MakingCharge, 0.001)
	assert.InDelta(t, 76177.5, quote.Subtotal, 0.001)
	assert.InDelta(t, 2285.325, quote.Tax, 0.001)
	assert.Equal(t, int64(78463), quote.Total)
}

func TestBreakdownFallbackQuote(t *testing.T) {
	p := catalogdomain.Product{Category: catalogdomain.CategoryCovering, Price: 5500}

	quote := Breakdown(p, loadedRates())
	assert.False(t, quote.Derived)
	assert.Equal(t, int64(5500), quote.Total)
	assert.Zero(t, quote.MetalValue)
}
