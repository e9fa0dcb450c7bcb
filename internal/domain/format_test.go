package domain

import "testing"

func TestFormatSize(t *testing.T) {
	const tib = 1024 * 1024 * 1024 * 1024

	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "N/A"},
		{"negative", -1, "N/A"},
		{"bytes", 500, "500.0 B"},
		{"one kilobyte", 1024, "1.0 KB"},
		{"fractional kilobytes", 1536, "1.5 KB"},
		{"one megabyte", 1024 * 1024, "1.0 MB"},
		{"one gigabyte", 1024 * 1024 * 1024, "1.0 GB"},
		{"one terabyte", tib, "1.0 TB"},
		{"huge stays in terabytes", 5000 * tib, "5000.0 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestExtractionError_Message(t *testing.T) {
	err := NewExtractionError("ERROR: unsupported URL: ftp://nope")

	if err.Error() != "ERROR: unsupported URL: ftp://nope" {
		t.Errorf("Error() = %q, want engine message verbatim", err.Error())
	}
}
