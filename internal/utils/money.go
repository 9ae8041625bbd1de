package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount as dollars with thousand separators,
// dropping cents when the amount is whole: 245780 -> "$245,780".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole, frac := math.Modf(math.Round(amount*100) / 100)
	out := sign + "$" + formatThousand(int64(whole))
	if frac > 0 {
		out += fmt.Sprintf(".%02d", int64(math.Round(frac*100)))
	}
	return out
}

// Percent rounds part/total*100 to one decimal; zero total gives 0.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(part/total*1000) / 10
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
