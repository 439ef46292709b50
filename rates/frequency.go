package rates

import (
	"sort"

	"github.com/pivolan/loan_rates/domain/models"
)

// DefaultTopN is the number of rates reported when nothing else is configured.
const DefaultTopN = 3

// CountRates tallies every rate, keeping first-seen order for later tie-breaks.
func CountRates(rates models.RateList) *models.FrequencyTable {
	table := models.NewFrequencyTable()
	for _, rate := range rates {
		table.Add(rate)
	}
	return table
}

// TopRates returns at most topN entries ordered by count, highest first.
// Equal counts keep the order in which their rates first appeared.
func TopRates(table *models.FrequencyTable, topN int) []models.RateCount {
	if topN <= 0 || table == nil || table.Len() == 0 {
		return []models.RateCount{}
	}

	total := float64(table.Total())
	entries := make([]models.RateCount, 0, table.Len())
	for _, rate := range table.Rates() {
		count := table.Count(rate)
		entries = append(entries, models.RateCount{
			Rate:    rate,
			Count:   count,
			Percent: float64(count) / total * 100,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
