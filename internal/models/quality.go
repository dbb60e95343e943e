package models

// QualityTier is a human-meaningful resolution bucket for the quality menu.
type QualityTier int

const (
	Tier240 QualityTier = iota
	Tier360
	Tier480
	Tier720
	Tier1080
	Tier1440
	Tier4K
)

// AllTiers lists the tiers in menu order, lowest resolution first.
var AllTiers = []QualityTier{Tier240, Tier360, Tier480, Tier720, Tier1080, Tier1440, Tier4K}

var tierLabels = map[QualityTier]string{
	Tier240:  "240p",
	Tier360:  "360p",
	Tier480:  "480p",
	Tier720:  "720p",
	Tier1080: "1080p",
	Tier1440: "1440p",
	Tier4K:   "4K",
}

func (q QualityTier) String() string {
	if label, ok := tierLabels[q]; ok {
		return label
	}
	return "unknown"
}

// tierThresholds maps ascending pixel-height cutoffs to tiers. Anything below
// the first cutoff collapses to 240p, so a true 144p tier is never produced.
// Anything at or above 2160 maps to 4K.
var tierThresholds = []struct {
	below int
	tier  QualityTier
}{
	{360, Tier240},
	{480, Tier360},
	{720, Tier480},
	{1080, Tier720},
	{1440, Tier1080},
	{2160, Tier1440},
}

// TierForHeight buckets a raw pixel height into a QualityTier.
func TierForHeight(height int) QualityTier {
	for _, t := range tierThresholds {
		if height < t.below {
			return t.tier
		}
	}
	return Tier4K
}
