package models

// Rate is an interest rate expressed as a percentage with two decimals.
type Rate = float64

// RateList holds normalized rates in source row order.
type RateList []Rate

// Header is the ordered list of field names read from the first row of a source.
type Header []string

// RateCount is one ranked entry of the frequency report.
type RateCount struct {
	Rate    Rate
	Count   int64
	Percent float64
}

// FrequencyTable counts occurrences of each distinct rate and remembers
// the order in which rates were first seen.
type FrequencyTable struct {
	order  []Rate
	counts map[Rate]int64
	total  int64
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[Rate]int64)}
}

func (f *FrequencyTable) Add(rate Rate) {
	if _, ok := f.counts[rate]; !ok {
		f.order = append(f.order, rate)
	}
	f.counts[rate]++
	f.total++
}

// Rates returns the distinct rates in first-seen order.
func (f *FrequencyTable) Rates() []Rate {
	out := make([]Rate, len(f.order))
	copy(out, f.order)
	return out
}

func (f *FrequencyTable) Count(rate Rate) int64 {
	return f.counts[rate]
}

func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Total is the number of rates added, equal to the sum of all counts.
func (f *FrequencyTable) Total() int64 {
	return f.total
}
