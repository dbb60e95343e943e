package youtube

import "testing"

func TestExtractURL(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "Short link with query inside prose",
			text:     "check this out https://youtu.be/dQw4w9WgXcQ?feature=share",
			expected: "https://youtu.be/dQw4w9WgXcQ?feature=share",
			found:    true,
		},
		{
			name:     "Plain watch link",
			text:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			found:    true,
		},
		{
			name:     "Watch link without www",
			text:     "see http://youtube.com/watch?v=dQw4w9WgXcQ please",
			expected: "http://youtube.com/watch?v=dQw4w9WgXcQ",
			found:    true,
		},
		{
			name:     "Music subdomain",
			text:     "https://music.youtube.com/watch?v=dQw4w9WgXcQ&list=RD",
			expected: "https://music.youtube.com/watch?v=dQw4w9WgXcQ&list=RD",
			found:    true,
		},
		{
			name:     "Shorts link",
			text:     "lol https://www.youtube.com/shorts/abcDEF123-_ haha",
			expected: "https://www.youtube.com/shorts/abcDEF123-_",
			found:    true,
		},
		{
			name:     "First of two links wins",
			text:     "https://youtu.be/aaaaaaaaaaa then https://youtu.be/bbbbbbbbbbb",
			expected: "https://youtu.be/aaaaaaaaaaa",
			found:    true,
		},
		{
			name:  "No link at all",
			text:  "hello there, nothing to see",
			found: false,
		},
		{
			name:  "Wrong domain",
			text:  "https://vimeo.com/123456789",
			found: false,
		},
		{
			name:  "Video id too short",
			text:  "https://youtu.be/short",
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractURL(tc.text)
			if ok != tc.found {
				t.Fatalf("ExtractURL(%q) found = %v, want %v", tc.text, ok, tc.found)
			}
			if ok && got != tc.expected {
				t.Errorf("ExtractURL(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("-Abc123xyz_")
	want := "https://www.youtube.com/watch?v=-Abc123xyz_"
	if got != want {
		t.Errorf("WatchURL = %q, want %q", got, want)
	}
}
