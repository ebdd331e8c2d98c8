package scrape

import (
	"math"
	"regexp"
	"time"

	"github.com/jomaia7338/tarifs"
)

var digitRun = regexp.MustCompile(`\d+`)

// matchBand returns the index of the first unconsumed candidate row whose
// label contains the band's leading digit run as a standalone token. The word
// boundaries keep "9" from matching inside "19" or "90".
func matchBand(band tarifs.Band, rows []tarifs.CandidateRow, taken []bool) (int, bool) {
	run := digitRun.FindString(band.Label)
	if run == "" {
		return 0, false
	}
	token := regexp.MustCompile(`\b` + regexp.QuoteMeta(run) + `\b`)
	for i, row := range rows {
		if taken[i] {
			continue
		}
		if token.MatchString(row.Label) {
			return i, true
		}
	}
	return 0, false
}

// round4 rounds to 4 decimal places, the precision of published tariffs.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// BuildPayload reconciles candidate rows against the fixed band table and
// assembles the complete output record. The result always carries exactly one
// entry per band, in band order: a band with no matching candidate uses its
// hardcoded fallback price. Page drift is expected, so falling back is common
// control flow, not an error.
//
// Bands resolve in order and each consumes the row it matches, so a row
// satisfies at most one band. First-matching-band-wins: in pathological
// inputs an earlier band's digit run can claim a row that reads as a later
// band's range, leaving the later band on its fallback.
func BuildPayload(rows []tarifs.CandidateRow, sourceURL string, now time.Time) *tarifs.Payload {
	bands := tarifs.DefaultBands()
	taken := make([]bool, len(rows))
	resolved := make([]tarifs.ResolvedBand, 0, len(bands))
	for _, band := range bands {
		price := band.Fallback
		if i, ok := matchBand(band, rows, taken); ok {
			price = rows[i].EurPerKWh
			taken[i] = true
		}
		resolved = append(resolved, tarifs.ResolvedBand{
			Range:             band.Label,
			Segment:           band.Segment,
			EurPerKWh:         round4(price),
			ExampleSurplusKWh: band.ExampleSurplusKWh,
		})
	}

	return &tarifs.Payload{
		Version:                     tarifs.Version,
		Source:                      sourceURL,
		LastUpdated:                 now.Format("2006-01-02"),
		EDFOASurplus:                resolved,
		Notes:                       tarifs.Notes(),
		AvgAutoconsommationValueTTC: tarifs.AvgAutoconsommationValue,
	}
}
