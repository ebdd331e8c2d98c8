package scrape_test

import (
	"testing"
	"time"

	"github.com/jomaia7338/tarifs"
	"github.com/jomaia7338/tarifs/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buildTime = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

func TestBuildPayload(t *testing.T) {
	t.Parallel()

	t.Run("always produces exactly one entry per band in band order", func(t *testing.T) {
		t.Parallel()

		inputs := [][]tarifs.CandidateRow{
			nil,
			{},
			{{Label: "≤ 9 kWc", EurPerKWh: 0.0756}},
			{
				{Label: "≤ 9 kWc", EurPerKWh: 0.0756},
				{Label: "9–36 kWc", EurPerKWh: 0.0886},
				{Label: "36–100 kWc", EurPerKWh: 0.0761},
				{Label: "500 kWc", EurPerKWh: 0.0500},
			},
		}

		for _, rows := range inputs {
			payload := scrape.BuildPayload(rows, tarifs.SourceURL, buildTime)

			require.Len(t, payload.EDFOASurplus, 3)
			assert.Equal(t, "≤ 9 kWc", payload.EDFOASurplus[0].Range)
			assert.Equal(t, "9–36 kWc", payload.EDFOASurplus[1].Range)
			assert.Equal(t, "36–100 kWc", payload.EDFOASurplus[2].Range)
		}
	})

	t.Run("empty candidates fall back to hardcoded prices", func(t *testing.T) {
		t.Parallel()

		payload := scrape.BuildPayload(nil, tarifs.SourceURL, buildTime)

		assert.Equal(t, 0.04, payload.EDFOASurplus[0].EurPerKWh)
		assert.Equal(t, 0.04, payload.EDFOASurplus[1].EurPerKWh)
		assert.Equal(t, 0.0886, payload.EDFOASurplus[2].EurPerKWh)
	})

	t.Run("matched rows override fallbacks, unmatched bands keep them", func(t *testing.T) {
		t.Parallel()

		rows := []tarifs.CandidateRow{
			{Label: "≤ 9 kWc", EurPerKWh: 0.0756},
			{Label: "9–36 kWc", EurPerKWh: 0.0886},
		}

		payload := scrape.BuildPayload(rows, tarifs.SourceURL, buildTime)

		assert.Equal(t, 0.0756, payload.EDFOASurplus[0].EurPerKWh)
		assert.Equal(t, 0.0886, payload.EDFOASurplus[1].EurPerKWh)
		// The second band consumed the only row carrying a standalone "36",
		// so the third band keeps its fallback.
		assert.Equal(t, 0.0886, payload.EDFOASurplus[2].EurPerKWh)
	})

	t.Run("earlier band can claim a later band's row", func(t *testing.T) {
		t.Parallel()

		// The first band's digit run "9" matches "9–36 kWc" when that row
		// comes first. First-matching-band-wins is deliberate; the later
		// band still resolves against what remains.
		rows := []tarifs.CandidateRow{
			{Label: "9–36 kWc", EurPerKWh: 0.0886},
			{Label: "≤ 9 kWc", EurPerKWh: 0.0756},
		}

		payload := scrape.BuildPayload(rows, tarifs.SourceURL, buildTime)

		assert.Equal(t, 0.0886, payload.EDFOASurplus[0].EurPerKWh)
		assert.Equal(t, 0.0756, payload.EDFOASurplus[1].EurPerKWh)
	})

	t.Run("digit run matches on word boundaries only", func(t *testing.T) {
		t.Parallel()

		rows := []tarifs.CandidateRow{
			{Label: "19–50 kWc", EurPerKWh: 0.05},
			{Label: "90 kWc", EurPerKWh: 0.06},
		}

		payload := scrape.BuildPayload(rows, tarifs.SourceURL, buildTime)

		// "9" must not match inside "19" or "90".
		assert.Equal(t, 0.04, payload.EDFOASurplus[0].EurPerKWh)
	})

	t.Run("first matching row wins", func(t *testing.T) {
		t.Parallel()

		rows := []tarifs.CandidateRow{
			{Label: "≤ 9 kWc", EurPerKWh: 0.0756},
			{Label: "9 kWc", EurPerKWh: 0.0999},
		}

		payload := scrape.BuildPayload(rows, tarifs.SourceURL, buildTime)

		assert.Equal(t, 0.0756, payload.EDFOASurplus[0].EurPerKWh)
	})

	t.Run("prices round to four decimal places", func(t *testing.T) {
		t.Parallel()

		rows := []tarifs.CandidateRow{
			{Label: "≤ 9 kWc", EurPerKWh: 0.07567},
		}

		payload := scrape.BuildPayload(rows, tarifs.SourceURL, buildTime)

		assert.Equal(t, 0.0757, payload.EDFOASurplus[0].EurPerKWh)
	})

	t.Run("assembles fixed metadata", func(t *testing.T) {
		t.Parallel()

		payload := scrape.BuildPayload(nil, tarifs.SourceURL, buildTime)

		assert.Equal(t, "auto", payload.Version)
		assert.Equal(t, tarifs.SourceURL, payload.Source)
		assert.Equal(t, "2026-08-31", payload.LastUpdated)
		assert.Equal(t, tarifs.Notes(), payload.Notes)
		assert.Equal(t, 0.25, payload.AvgAutoconsommationValueTTC)
		assert.Equal(t, "particuliers", payload.EDFOASurplus[0].Segment)
		assert.Equal(t, 1000, payload.EDFOASurplus[0].ExampleSurplusKWh)
		assert.Equal(t, "petites pros", payload.EDFOASurplus[1].Segment)
		assert.Equal(t, 5000, payload.EDFOASurplus[1].ExampleSurplusKWh)
		assert.Equal(t, "PME/PMI", payload.EDFOASurplus[2].Segment)
		assert.Equal(t, 20000, payload.EDFOASurplus[2].ExampleSurplusKWh)
	})

	t.Run("payload validates", func(t *testing.T) {
		t.Parallel()

		payload := scrape.BuildPayload(nil, tarifs.SourceURL, buildTime)

		assert.NoError(t, payload.Validate())
	})
}
