package models

// FormatEntry is one encoding variant reported by the extraction tool.
// Filesize is a pointer because some entries omit it; such entries are
// excluded from any size-based selection.
type FormatEntry struct {
	FormatID string `json:"format_id"`
	Ext      string `json:"ext"`
	Vcodec   string `json:"vcodec"`
	Acodec   string `json:"acodec"`
	Filesize *int64 `json:"filesize"`
	Height   int    `json:"height"`
	Width    int    `json:"width"`
}

// HasVideo reports whether the entry carries a video track.
func (f FormatEntry) HasVideo() bool {
	return f.Vcodec != "" && f.Vcodec != "none"
}

// HasAudio reports whether the entry carries an audio track.
func (f FormatEntry) HasAudio() bool {
	return f.Acodec != "" && f.Acodec != "none"
}

// Size returns the entry filesize, or 0 when the tool did not report one.
func (f FormatEntry) Size() int64 {
	if f.Filesize == nil {
		return 0
	}
	return *f.Filesize
}

// VideoMetadata is the immutable result of a metadata fetch. It lives only
// for the duration of the request that fetched it and is discarded once the
// quality menu has been built.
type VideoMetadata struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Uploader   string        `json:"uploader"`
	Duration   float64       `json:"duration"`
	WebpageURL string        `json:"webpage_url"`
	Formats    []FormatEntry `json:"formats"`
}

// DurationSeconds returns the duration truncated to whole seconds. The tool
// reports fractional durations for some live-recorded videos.
func (m *VideoMetadata) DurationSeconds() int {
	return int(m.Duration)
}
