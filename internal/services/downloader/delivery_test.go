package downloader

import "testing"

func TestParseAudioTags(t *testing.T) {
	testCases := []struct {
		name          string
		description   string
		wantTitle     string
		wantPerformer string
	}{
		{
			name:          "Well formed description",
			description:   "<b>[3m 32s]</b> Never Gonna Give You Up\nBy <b>Rick Astley</b>",
			wantTitle:     "Never Gonna Give You Up",
			wantPerformer: "Rick Astley",
		},
		{
			name:          "Topic suffix stripped",
			description:   "<b>[4m 1s]</b> Some Song\nBy <b>Some Band - Topic</b>",
			wantTitle:     "Some Song",
			wantPerformer: "Some Band",
		},
		{
			name:          "Empty description falls back",
			description:   "",
			wantTitle:     "dQw4w9WgXcQ",
			wantPerformer: "Unknown Artist",
		},
		{
			name:          "Missing author line",
			description:   "<b>[3m 32s]</b> Title Only",
			wantTitle:     "Title Only",
			wantPerformer: "Unknown Artist",
		},
		{
			name:          "Lines with unexpected shapes",
			description:   "just some text\nwithout the markers",
			wantTitle:     "dQw4w9WgXcQ",
			wantPerformer: "Unknown Artist",
		},
		{
			name:          "Title containing brackets",
			description:   "<b>[2m 5s]</b> Song [Remix] (feat. X)\nBy <b>Artist</b>",
			wantTitle:     "Song [Remix] (feat. X)",
			wantPerformer: "Artist",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			title, performer := parseAudioTags(tc.description, "dQw4w9WgXcQ")
			if title != tc.wantTitle {
				t.Errorf("title = %q, want %q", title, tc.wantTitle)
			}
			if performer != tc.wantPerformer {
				t.Errorf("performer = %q, want %q", performer, tc.wantPerformer)
			}
		})
	}
}
