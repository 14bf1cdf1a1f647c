package services

// RankTier is one level of the static rank ladder. Threshold is the
// inclusive lower bound of rank points for the tier.
type RankTier struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

var rankTiers = []RankTier{
	{Name: "Iron", Threshold: 0, Icon: "ranks/1iron.png", Color: "#94a3b8"},
	{Name: "Gold", Threshold: 200, Icon: "ranks/2gold.png", Color: "#fbbf24"},
	{Name: "Diamond", Threshold: 500, Icon: "ranks/3diamond.png", Color: "#60a5fa"},
	{Name: "Emerald", Threshold: 900, Icon: "ranks/4emerald.png", Color: "#34d399"},
	{Name: "Onyx", Threshold: 1400, Icon: "ranks/5onyx.png", Color: "#a78bfa"},
	{Name: "Celadon", Threshold: 2000, Icon: "ranks/6celadon.png", Color: "#2dd4bf"},
	{Name: "Celestial", Threshold: 2700, Icon: "ranks/7celestial.png", Color: "#f472b6"},
	{Name: "Infernal", Threshold: 3500, Icon: "ranks/8infernal.png", Color: "#f87171"},
}

// RankTiers returns the ladder ordered by ascending threshold.
func RankTiers() []RankTier {
	tiers := make([]RankTier, len(rankTiers))
	copy(tiers, rankTiers)
	return tiers
}

// TierForPoints returns the index of the highest tier whose threshold
// does not exceed the point total. Zero points map to the lowest tier.
func TierForPoints(points int) int {
	for index := len(rankTiers) - 1; index >= 0; index-- {
		if points >= rankTiers[index].Threshold {
			return index
		}
	}
	return 0
}

func TierByIndex(index int) RankTier {
	if index < 0 {
		index = 0
	}
	if index >= len(rankTiers) {
		index = len(rankTiers) - 1
	}
	return rankTiers[index]
}

// NextTierThreshold reports the threshold of the tier above the given
// one, or ok=false from the top of the ladder.
func NextTierThreshold(index int) (int, bool) {
	if index < 0 || index+1 >= len(rankTiers) {
		return 0, false
	}
	return rankTiers[index+1].Threshold, true
}
