package tarifs

// Constants carried into every generated payload.
const (
	// Version tags automatically generated payloads so downstream
	// consumers can tell them from hand-edited data.
	Version = "auto"

	// SourceURL is the public tariff page the data is scraped from.
	SourceURL = "https://www.photovoltaique.info/fr/tarifs-dachat-et-autoconsommation/"

	// UserAgent identifies the scraper to the source site.
	UserAgent = "Mozilla/5.0 (compatible; EchomeTarifsBot/1.0; +https://github.com/)"

	// AvgAutoconsommationValue is the average self-consumption value,
	// TTC, in €/kWh.
	AvgAutoconsommationValue = 0.25
)

// Notes returns the advisory strings included verbatim in every payload.
func Notes() []string {
	return []string{
		"Données extraites automatiquement de photovoltaique.info (heuristique).",
		"Vérifier l'arrêté et les barèmes trimestriels (CRE) avant signature.",
	}
}

// Payload is the complete record produced by a scrape run. It is assembled
// once, never mutated afterwards, and replaces the stored file wholesale.
type Payload struct {
	Version                     string         `json:"version"`
	Source                      string         `json:"source"`
	LastUpdated                 string         `json:"last_updated"`
	EDFOASurplus                []ResolvedBand `json:"edf_oa_surplus"`
	Notes                       []string       `json:"notes"`
	AvgAutoconsommationValueTTC float64        `json:"avg_autoconsommation_value_ttc_eur_per_kwh"`
}

// Validate returns an error if the payload would break downstream consumers.
func (p *Payload) Validate() error {
	if want := len(DefaultBands()); len(p.EDFOASurplus) != want {
		return Errorf(EINVALID, "payload requires exactly %d band entries, got %d", want, len(p.EDFOASurplus))
	}
	if p.Source == "" {
		return Errorf(EINVALID, "payload source URL required")
	}
	if p.LastUpdated == "" {
		return Errorf(EINVALID, "payload date required")
	}
	return nil
}
