package service

import (
	"math"

	"restaurant-pricing-service/internal/entity"
)

// Pure pricing logic (no I/O, no state). Everything network-facing
// lives in the providers and in AnalysisService.

// adverseConditions are the weather provider's condition names that
// count as bad weather. Exact, case-sensitive match.
var adverseConditions = map[string]bool{
	"Rain":         true,
	"Snow":         true,
	"Thunderstorm": true,
}

// ToFahrenheit converts a temperature from Kelvin to Fahrenheit.
func ToFahrenheit(kelvin float64) float64 {
	return (kelvin-273.15)*9/5 + 32
}

// CalculatePrice returns the recommended price for one menu item.
//
// With no competitor data the base price stands. Otherwise the price
// is the lowest competitor price, except under high demand (cold or
// adverse weather while busier than usual) where a markup of 1.1-1.3
// on the lowest competitor price applies, floor-clamped so the result
// never undercuts the base price.
//
// busyLevel is an integer percentage; values outside [0, 100] are not
// clamped and flow into the markup formula as-is.
func CalculatePrice(basePrice float64, weather entity.WeatherSnapshot, busyLevel int, competitorPrices []float64) float64 {
	if len(competitorPrices) == 0 {
		return basePrice
	}

	lowest := competitorPrices[0]
	for _, p := range competitorPrices[1:] {
		if p < lowest {
			lowest = p
		}
	}

	tempF := ToFahrenheit(weather.TemperatureKelvin)
	badWeather := adverseConditions[weather.Condition]
	busierThanUsual := busyLevel > 70

	if (tempF < 45 || badWeather) && busierThanUsual {
		// 10-20% markup depending on how busy: 1.1 at level 70 up to
		// 1.3 at level 100.
		markup := 1.1 + float64(busyLevel-70)/100
		return math.Max(lowest*markup, basePrice)
	}

	return lowest
}

// PriceMenu applies CalculatePrice across a menu. Items with no
// competitor data are left out of the result entirely, not zero-priced.
// Input order is preserved for the items that remain.
func PriceMenu(items []entity.MenuItem, weather entity.WeatherSnapshot, busyLevel int, competitorPrices func(entity.MenuItem) []float64) []entity.PriceQuote {
	var quotes []entity.PriceQuote
	for _, item := range items {
		prices := competitorPrices(item)
		if len(prices) == 0 {
			continue
		}

		recommended := CalculatePrice(item.BasePrice, weather, busyLevel, prices)
		quotes = append(quotes, entity.PriceQuote{
			ItemName:         item.Name,
			BasePrice:        item.BasePrice,
			RecommendedPrice: recommended,
			PercentChange:    (recommended - item.BasePrice) / item.BasePrice * 100,
		})
	}
	return quotes
}

// CompetitorPricesForItem derives per-item competitor prices from
// nearby venues: each venue with a known price level contributes
// basePrice scaled by priceLevel/2. Only the first maxCompetitors
// venues are considered.
func CompetitorPricesForItem(item entity.MenuItem, competitors []entity.Competitor, maxCompetitors int) []float64 {
	var prices []float64
	for i, c := range competitors {
		if i >= maxCompetitors {
			break
		}
		if c.PriceLevel <= 0 {
			continue
		}
		prices = append(prices, item.BasePrice*float64(c.PriceLevel)/2)
	}
	return prices
}
