package youtube

import (
	"testing"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

func size(n int64) *int64 { return &n }

func video(id string, height int, filesize *int64) models.FormatEntry {
	return models.FormatEntry{
		FormatID: id,
		Ext:      "mp4",
		Vcodec:   "avc1",
		Acodec:   "none",
		Filesize: filesize,
		Height:   height,
		Width:    height * 16 / 9,
	}
}

func audio(id string, filesize *int64) models.FormatEntry {
	return models.FormatEntry{
		FormatID: id,
		Ext:      "m4a",
		Vcodec:   "none",
		Acodec:   "mp4a.40.2",
		Filesize: filesize,
	}
}

func TestSelectFormatsSmallestPerTierWins(t *testing.T) {
	formats := []models.FormatEntry{
		video("398", 720, size(40_000_000)),
		video("136", 720, size(25_000_000)),
		video("247", 720, size(31_000_000)),
		video("137", 1080, size(90_000_000)),
		audio("140", size(3_000_000)),
	}

	sel := SelectFormats(formats)

	if len(sel.Tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(sel.Tiers))
	}
	got720, ok := sel.Tiers[models.Tier720]
	if !ok {
		t.Fatal("720p tier missing")
	}
	if got720.FormatID != "136" {
		t.Errorf("720p tier: got format %s, want smallest (136)", got720.FormatID)
	}
	if got1080 := sel.Tiers[models.Tier1080]; got1080.FormatID != "137" {
		t.Errorf("1080p tier: got format %s, want 137", got1080.FormatID)
	}
}

func TestSelectFormatsLargestAudioWins(t *testing.T) {
	formats := []models.FormatEntry{
		audio("139", size(1_500_000)),
		audio("140", size(3_400_000)),
		audio("249", size(1_900_000)),
		video("137", 1080, size(90_000_000)),
	}

	sel := SelectFormats(formats)
	if sel.Audio == nil {
		t.Fatal("expected an audio selection")
	}
	if sel.Audio.FormatID != "140" {
		t.Errorf("audio: got %s, want largest (140)", sel.Audio.FormatID)
	}
}

func TestSelectFormatsSkipsUnusableEntries(t *testing.T) {
	formats := []models.FormatEntry{
		// No filesize: excluded from both selections.
		video("299", 1080, nil),
		audio("251", nil),
		// No height: excluded from the ladder.
		{FormatID: "hls", Vcodec: "avc1", Acodec: "none", Filesize: size(10_000_000)},
		// Storyboard: neither codec.
		{FormatID: "sb0", Vcodec: "none", Acodec: "none"},
		video("134", 360, size(8_000_000)),
	}

	sel := SelectFormats(formats)
	if sel.Audio != nil {
		t.Errorf("expected no audio selection, got %s", sel.Audio.FormatID)
	}
	if len(sel.Tiers) != 1 {
		t.Fatalf("expected exactly the 360p tier, got %d tiers", len(sel.Tiers))
	}
	if _, ok := sel.Tiers[models.Tier360]; !ok {
		t.Error("360p tier missing")
	}
}

func TestSelectFormatsEmptyList(t *testing.T) {
	sel := SelectFormats(nil)
	if sel.Audio != nil || len(sel.Tiers) != 0 {
		t.Error("empty format list should yield an empty selection")
	}
}

func TestMergedSize(t *testing.T) {
	formats := []models.FormatEntry{
		video("136", 720, size(25_000_000)),
		audio("140", size(3_000_000)),
	}
	sel := SelectFormats(formats)
	if got := sel.MergedSize(models.Tier720); got != 28_000_000 {
		t.Errorf("MergedSize(720p) = %d, want 28000000", got)
	}
	if got := sel.MergedSize(models.Tier4K); got != 0 {
		t.Errorf("MergedSize of a missing tier should be 0, got %d", got)
	}

	noAudio := SelectFormats([]models.FormatEntry{video("136", 720, size(25_000_000))})
	if got := noAudio.MergedSize(models.Tier720); got != 25_000_000 {
		t.Errorf("MergedSize without audio = %d, want video-only size", got)
	}
}
