package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jomaia7338/tarifs"
)

// rowPattern recognizes a capacity-range token followed, within a short gap
// of arbitrary characters, by a price in euros per kilowatt-hour. Ranges come
// in three shapes on the source page: bounded "9–36 kWc" (also "-" or "à" as
// separator, optionally prefixed with ≤ or <), prefix "≤ 9 kWc" / "< 9 kWc",
// and bare "100 kWc". Prices use a decimal comma or point with 3–4 fractional
// digits and a €/kWh marker that tolerates a slash and a little punctuation,
// e.g. "0,0886 €/kWh" or "0.0756 € / kWh".
var rowPattern = regexp.MustCompile(
	`(?i)((?:≤|<)?\s*\d+\s*(?:–|-|à)\s*\d+\s*kWc|[≤<]\s*\d+\s*kWc|\d+\s*kWc)` +
		`.{0,80}?` +
		`(0[,.]\d{3,4})\s*€/?.{0,10}?kWh`,
)

// MatchRows scans one table text fragment for all non-overlapping tariff
// rows. The range label is whitespace-normalized and the price token parsed
// with the decimal comma converted to a point. Matches whose price token
// fails numeric conversion are dropped silently.
func MatchRows(fragment string) []tarifs.CandidateRow {
	var rows []tarifs.CandidateRow
	for _, m := range rowPattern.FindAllStringSubmatch(fragment, -1) {
		price, err := strconv.ParseFloat(strings.Replace(m[2], ",", ".", 1), 64)
		if err != nil {
			continue
		}
		rows = append(rows, tarifs.CandidateRow{
			Label:     strings.Join(strings.Fields(m[1]), " "),
			EurPerKWh: price,
		})
	}
	return rows
}

// Candidates matches every fragment in order and deduplicates the combined
// rows by exact (label, price) pair, preserving first-seen order.
func Candidates(fragments []string) []tarifs.CandidateRow {
	seen := make(map[tarifs.CandidateRow]struct{})
	var uniq []tarifs.CandidateRow
	for _, fragment := range fragments {
		for _, row := range MatchRows(fragment) {
			if _, ok := seen[row]; ok {
				continue
			}
			seen[row] = struct{}{}
			uniq = append(uniq, row)
		}
	}
	return uniq
}
