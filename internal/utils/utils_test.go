package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{
			name:     "Megabyte range",
			bytes:    1572864,
			expected: "1.5MB",
		},
		{
			name:     "Gigabyte range",
			bytes:    1073741824,
			expected: "1.0GB",
		},
		{
			name:     "Kilobyte range",
			bytes:    512000,
			expected: "500.0KB",
		},
		{
			name:     "Below one kilobyte stays in KB",
			bytes:    512,
			expected: "0.5KB",
		},
		{
			name:     "Multi gigabyte",
			bytes:    3 * 1073741824,
			expected: "3.0GB",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSize(tc.bytes); got != tc.expected {
				t.Errorf("FormatSize(%d) = %q, want %q", tc.bytes, got, tc.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		seconds  int
		expected string
	}{
		{212, "3m 32s"},
		{59, "0m 59s"},
		{3661, "1h 1m 1s"},
		{0, "0m 0s"},
	}

	for _, tc := range testCases {
		if got := FormatDuration(tc.seconds); got != tc.expected {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.expected)
		}
	}
}

func TestSanitizeMarkup(t *testing.T) {
	in := "ERROR: <b>bad</b> *things* [here] `code`_x_"
	out := SanitizeMarkup(in)
	for _, ch := range []string{"<", ">", "*", "_", "`", "[", "]"} {
		if strings.Contains(out, ch) {
			t.Errorf("sanitized text still contains %q: %s", ch, out)
		}
	}
	if !strings.Contains(out, "bad") || !strings.Contains(out, "things") {
		t.Errorf("sanitize dropped content: %s", out)
	}
}

func TestAppErrorUserMessage(t *testing.T) {
	appErr := NewDownloadError(errors.New("yt-dlp: <urlopen error> timed out"))
	msg := appErr.UserMessage()
	if strings.Contains(msg, "<") || strings.Contains(msg, ">") {
		t.Errorf("user message contains markup characters: %s", msg)
	}
	if !strings.Contains(msg, "urlopen error") {
		t.Errorf("user message lost the underlying cause: %s", msg)
	}

	noCause := NewNoURLFoundError()
	if noCause.UserMessage() != noCause.UserText {
		t.Error("error without cause should render bare user text")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewMetadataFetchError(cause)
	if !errors.Is(appErr, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestGenerateCorrelationID(t *testing.T) {
	a := GenerateCorrelationID()
	b := GenerateCorrelationID()
	if a == "" || b == "" {
		t.Error("expected non-empty correlation IDs")
	}
	if a == b {
		t.Error("correlation IDs should be unique")
	}
}
