package domain

import "fmt"

// sizeUnits is the fixed ladder FormatSize walks. TB is terminal: values
// past the GB threshold report in TB no matter how large.
var sizeUnits = [...]string{"B", "KB", "MB", "GB"}

// FormatSize converts a byte count into a human-readable magnitude string
// with one decimal digit, e.g. "1.5 MB". Zero or negative input yields
// "N/A". Total function, never fails.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "N/A"
	}

	size := float64(bytes)
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f TB", size)
}
