package model

import "strings"

// Mood is the user's preferred dashboard atmosphere.
type Mood string

const (
	MoodContemplative Mood = "contemplative"
	MoodCurious       Mood = "curious"
	MoodPeaceful      Mood = "peaceful"
	MoodEnergetic     Mood = "energetic"
	MoodMelancholic   Mood = "melancholic"
	MoodHopeful       Mood = "hopeful"
)

// DefaultMood is assigned to every new user.
const DefaultMood = MoodContemplative

// Moods lists every valid mood in display order.
var Moods = []Mood{
	MoodContemplative,
	MoodCurious,
	MoodPeaceful,
	MoodEnergetic,
	MoodMelancholic,
	MoodHopeful,
}

func (m Mood) Valid() bool {
	for _, mood := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// MoodOneOf is the validator "oneof" parameter for moods.
func MoodOneOf() string {
	names := make([]string, len(Moods))
	for i, m := range Moods {
		names[i] = string(m)
	}
	return strings.Join(names, " ")
}
