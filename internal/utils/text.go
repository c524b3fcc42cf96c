package utils

// ClipText shortens s two characters at a time until measure reports it
// fits in maxWidth, then appends an ellipsis. It never cuts below 8
// characters, so the result may still be wider than maxWidth.
func ClipText(s string, maxWidth float64, measure func(string) float64) string {
	r := []rune(s)
	n := len(r)
	for n > 8 && measure(string(r[:n])) > maxWidth {
		n -= 2
	}
	if n == len(r) {
		return s
	}
	return string(r[:n]) + "…"
}
