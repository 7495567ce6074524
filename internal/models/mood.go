package models

type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodExcited  Mood = "excited"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
)

// moodValues maps each mood to its numeric weight on a 1-5 scale.
var moodValues = map[Mood]int{
	MoodHappy:    5,
	MoodExcited:  4,
	MoodNeutral:  3,
	MoodSad:      2,
	MoodStressed: 1,
}

func (m Mood) Valid() bool {
	_, ok := moodValues[m]
	return ok
}

// Value returns the numeric weight of the mood, neutral for unknown values.
func (m Mood) Value() int {
	if v, ok := moodValues[m]; ok {
		return v
	}
	return moodValues[MoodNeutral]
}

func AverageMood(moods []Mood) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Value()
	}
	return float64(sum) / float64(len(moods))
}
