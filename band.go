package tarifs

// Band is one of the three fixed capacity-range categories the output always
// reports. The fallback price covers the common case where the source page's
// layout has drifted and no scraped row matches the band.
type Band struct {
	// Label is the expected capacity range, verbatim from the source page
	// (kWc is kilowatt-peak).
	Label string

	// Fallback is the hardcoded price in €/kWh used when no candidate
	// row matches.
	Fallback float64

	// Segment names the customer segment the band applies to.
	Segment string

	// ExampleSurplusKWh is an example yearly surplus production used by
	// downstream consumers to illustrate the band.
	ExampleSurplusKWh int
}

// DefaultBands returns the EDF OA surplus bands, in output order.
// This is static reference data; callers get a fresh slice on every call.
func DefaultBands() []Band {
	return []Band{
		{Label: "≤ 9 kWc", Fallback: 0.040, Segment: "particuliers", ExampleSurplusKWh: 1000},
		{Label: "9–36 kWc", Fallback: 0.040, Segment: "petites pros", ExampleSurplusKWh: 5000},
		{Label: "36–100 kWc", Fallback: 0.0886, Segment: "PME/PMI", ExampleSurplusKWh: 20000},
	}
}

// CandidateRow is a capacity-range/price pair heuristically extracted from
// table text. Rows compare by exact (label, price) equality, which is what
// deduplication relies on.
type CandidateRow struct {
	// Label is the matched capacity range with internal whitespace
	// normalized, e.g. "≤ 9 kWc" or "9–36 kWc".
	Label string

	// EurPerKWh is the matched price. Always finite and positive; rows
	// whose price token fails numeric conversion are dropped at match time.
	EurPerKWh float64
}

// ResolvedBand is the output record for one Band: either a matched candidate
// row's price or the band's fallback.
type ResolvedBand struct {
	Range             string  `json:"range"`
	Segment           string  `json:"segment"`
	EurPerKWh         float64 `json:"eur_per_kwh"`
	ExampleSurplusKWh int     `json:"example_surplus_kwh"`
}
