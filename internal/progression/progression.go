// Package progression holds the XP and leveling rules.
//
// Everything here is a pure function of stored XP; level and titles are
// never cached anywhere, they are recomputed on every read.
package progression

// TopicXP is the fixed reward for completing a roadmap topic.
const TopicXP = 100

// LevelXP is the XP span of a single level.
const LevelXP = 300

// AwardXP returns the XP total after one topic completion.
func AwardXP(current int) int {
	return current + TopicXP
}

// LevelFor derives the level from cumulative XP. Level 1 starts at 0 XP
// and every LevelXP thereafter adds one.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/LevelXP + 1
}

// LevelProgress returns the fill of the current level's XP bar in percent,
// clamped to [0,100].
func LevelProgress(xp, level int) float64 {
	base := (level - 1) * LevelXP
	pct := float64(xp-base) / float64(LevelXP) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// TitleFor maps a level onto its display tier. This is presentation only:
// a label computed on read, not state.
func TitleFor(level int) string {
	switch {
	case level <= 2:
		return "Aprendiz"
	case level <= 5:
		return "Estudioso"
	case level <= 8:
		return "Mestre"
	case level <= 12:
		return "Grão-Mestre"
	default:
		return "Arquimago"
	}
}
