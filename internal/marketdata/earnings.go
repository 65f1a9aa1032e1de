package marketdata

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// EarningsQuarter is one quarterly earnings record with derived surprise
// fields. Revenue figures are not available from the upstream shape used and
// are always zero; callers must not infer revenue data exists.
type EarningsQuarter struct {
	Symbol          string  `json:"symbol"`
	Quarter         string  `json:"quarter"`
	Year            int     `json:"year"`
	Estimate        float64 `json:"estimate"`
	Actual          float64 `json:"actual"`
	Surprise        float64 `json:"surprise"`
	SurprisePercent float64 `json:"surprisePercent"`
	// HasSurprisePercent is false when the estimate is zero; the percentage
	// is then rendered "N/A" instead of a non-finite number.
	HasSurprisePercent bool `json:"hasSurprisePercent"`

	RevenueEstimate        float64 `json:"revenueEstimate"`
	RevenueActual          float64 `json:"revenueActual"`
	RevenueSurprise        float64 `json:"revenueSurprise"`
	RevenueSurprisePercent float64 `json:"revenueSurprisePercent"`
}

type earningsEnvelope struct {
	Earnings struct {
		EarningsChart struct {
			Quarterly []struct {
				Date     string  `json:"date"`
				Estimate float64 `json:"estimate"`
				Actual   float64 `json:"actual"`
			} `json:"quarterly"`
		} `json:"earningsChart"`
	} `json:"earnings"`
}

// ParseEarnings extracts the quarterly records nested under
// earnings.earningsChart.quarterly. The quarter identifier (e.g. "2024Q3")
// is split on "Q" to obtain year and quarter sequence.
func ParseEarnings(symbol string, raw json.RawMessage) ([]EarningsQuarter, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}
	var env earningsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil
	}

	var quarters []EarningsQuarter
	for _, q := range env.Earnings.EarningsChart.Quarterly {
		parts := strings.SplitN(q.Date, "Q", 2)

		year, err := strconv.Atoi(parts[0])
		if err != nil {
			year = time.Now().Year()
		}
		quarter := ""
		if len(parts) > 1 {
			quarter = parts[1]
		}

		eq := EarningsQuarter{
			Symbol:   symbol,
			Quarter:  quarter,
			Year:     year,
			Estimate: q.Estimate,
			Actual:   q.Actual,
			Surprise: q.Actual - q.Estimate,
		}
		if q.Estimate != 0 {
			eq.SurprisePercent = (q.Actual - q.Estimate) / q.Estimate * 100
			eq.HasSurprisePercent = true
		}
		quarters = append(quarters, eq)
	}
	return quarters, nil
}

// FormatSurprisePercent renders the surprise percentage with two decimals,
// or "N/A" when the estimate was zero.
func (q EarningsQuarter) FormatSurprisePercent() string {
	if !q.HasSurprisePercent {
		return "N/A"
	}
	return FormatPercent(q.SurprisePercent)
}
