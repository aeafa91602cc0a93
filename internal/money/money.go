// Package money renders GNF amounts the way the storefront displays them:
// thousands grouped with spaces, no decimals (franc prices are whole).
package money

import (
	"math"
	"strconv"
	"strings"
)

func FormatGNF(amount float64) string {
	n := int64(math.Round(amount))

	negative := n < 0
	if negative {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}

	out := b.String() + " GNF"
	if negative {
		out = "-" + out
	}
	return out
}
