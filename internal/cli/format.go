package cli

import "strconv"

// FormatAmount renders a whole-unit currency amount with thousands
// separators, e.g. 1250000 -> "1,250,000".
func FormatAmount(value int64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	s := strconv.FormatInt(value, 10)
	n := len(s)
	if n > 3 {
		out := make([]byte, 0, n+n/3)
		lead := n % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < n; i += 3 {
			if len(out) > 0 {
				out = append(out, ',')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}

	if neg {
		return "-" + s
	}
	return s
}
