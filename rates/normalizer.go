package rates

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/pivolan/loan_rates/domain/models"
)

// NormalizeRate converts a raw cell to a percentage rounded to two decimals.
//
// Accepted encodings are "13.49%", "0.1349" and "13.49"; all three yield 13.49.
// A value without a percent sign below 1 is read as a fraction and scaled by
// 100, anything else is already a percentage. "1" therefore stays 1.00, not 100.
// The boolean is false for empty, unparsable or non-finite input.
func NormalizeRate(raw string) (models.Rate, bool) {
	if raw == "" {
		return 0, false
	}
	value := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")

	var num float64
	var err error
	if strings.HasSuffix(value, "%") {
		num, err = parseDecimal(strings.TrimRight(value, "%"))
	} else {
		num, err = parseDecimal(value)
		if err == nil && num < 1 {
			num *= 100
		}
	}
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return roundToTwo(num), true
}

// NormalizeCell is NormalizeRate for a cell that may be absent from a short row.
func NormalizeCell(cell *string) (models.Rate, bool) {
	if cell == nil {
		return 0, false
	}
	return NormalizeRate(*cell)
}

var errNotDecimal = errors.New("not a decimal number")

// parseDecimal accepts decimal and exponent notation only; hex floats are rejected.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX") {
		return 0, errNotDecimal
	}
	return strconv.ParseFloat(s, 64)
}

// roundToTwo rounds through decimal formatting so ties follow the exact binary
// value (2.675 -> 2.67), not the naive num*100 product.
func roundToTwo(num float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(num, 'f', 2, 64), 64)
	if err != nil {
		return math.Round(num*100) / 100
	}
	return rounded
}
