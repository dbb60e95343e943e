package youtube

import "regexp"

// linkPattern matches watch, shorts and short-form youtu.be links. Trailing
// non-whitespace is kept so query parameters survive extraction.
var linkPattern = regexp.MustCompile(
	`https?://(?:www\.|music\.)?youtube\.com/(?:watch\?v=|shorts/)[A-Za-z0-9_-]{11}\S*` +
		`|https?://youtu\.be/[A-Za-z0-9_-]{11}\S*`)

// ExtractURL pulls the first YouTube link out of arbitrary text. It returns
// the matched substring unmodified and false when no link is present.
func ExtractURL(text string) (string, bool) {
	match := linkPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// WatchURL builds a canonical watch URL from a bare video id. The download
// tool parses a bare id that starts with a hyphen as a command-line flag, so
// ids are always passed embedded in a full URL.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
