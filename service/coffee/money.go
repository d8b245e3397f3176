package coffee

import "strconv"

// FormatPrice renders whole kronor, e.g. "42 kr".
func FormatPrice(n int) string {
	return strconv.Itoa(n) + " kr"
}
