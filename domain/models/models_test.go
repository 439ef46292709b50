package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyTable(t *testing.T) {
	table := NewFrequencyTable()
	for _, r := range []Rate{13.49, 5, 13.49, 22.1, 5, 13.49} {
		table.Add(r)
	}

	assert.Equal(t, []Rate{13.49, 5, 22.1}, table.Rates())
	assert.Equal(t, int64(3), table.Count(13.49))
	assert.Equal(t, int64(2), table.Count(5))
	assert.Equal(t, int64(0), table.Count(7.5))
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, int64(6), table.Total())

	var sum int64
	for _, r := range table.Rates() {
		sum += table.Count(r)
	}
	assert.Equal(t, table.Total(), sum)
}
