package youtube

import (
	"sort"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

// Selection is the reduced view of a raw format list: one universal audio
// track plus at most one video entry per quality tier.
type Selection struct {
	// Audio is the largest audio-bearing entry, used both as the audio-only
	// download and as the audio half of merged downloads. Nil when the list
	// has no audio-bearing entry with a known size.
	Audio *models.FormatEntry
	Tiers map[models.QualityTier]models.FormatEntry
}

// MergedSize estimates the size of a merged download at the given tier. With
// no audio track available the estimate is the video entry alone.
func (s Selection) MergedSize(tier models.QualityTier) int64 {
	entry, ok := s.Tiers[tier]
	if !ok {
		return 0
	}
	size := entry.Size()
	if s.Audio != nil {
		size += s.Audio.Size()
	}
	return size
}

// SelectFormats reduces a heterogeneous format list to a Selection.
//
// For the tier ladder, candidates are entries with a video codec, a known
// filesize and a known height. Each tier slot is overwritten unconditionally
// while walking the candidates from largest to smallest, so the smallest
// entry at a tier always ends up in the slot. That size-minimization rule is
// deliberate: the menu estimate and the merged upload both stay under the
// chat platform's file limits more often.
func SelectFormats(formats []models.FormatEntry) Selection {
	sel := Selection{Tiers: make(map[models.QualityTier]models.FormatEntry)}

	for i := range formats {
		f := formats[i]
		if !f.HasAudio() || f.Filesize == nil {
			continue
		}
		if sel.Audio == nil || f.Size() > sel.Audio.Size() {
			sel.Audio = &formats[i]
		}
	}

	candidates := make([]models.FormatEntry, 0, len(formats))
	for _, f := range formats {
		if f.HasVideo() && f.Filesize != nil && f.Height > 0 {
			candidates = append(candidates, f)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Size() > candidates[j].Size()
	})

	for _, f := range candidates {
		sel.Tiers[models.TierForHeight(f.Height)] = f
	}

	return sel
}
