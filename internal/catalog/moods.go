package catalog

import "oracle/internal/model"

// Mood 心情定义：固定枚举 + 展示标签（标签进入提示词与界面）
// Mood is a mood definition: fixed id plus a display label (used in prompts and UI)
type Mood struct {
	ID    model.MoodID
	Label string
}

// Moods 固定的五种心情，顺序即展示顺序
// Moods is the fixed five-mood set in display order
var Moods = []Mood{
	{ID: "happy", Label: "喜悦"},
	{ID: "calm", Label: "平静"},
	{ID: "tired", Label: "疲惫"},
	{ID: "energetic", Label: "活力"},
	{ID: "sad", Label: "低落"},
}

// MoodLabel 返回心情的展示标签；未知 id 返回“平常”
// MoodLabel returns the display label; unknown ids map to the neutral label
func MoodLabel(id model.MoodID) string {
	for _, m := range Moods {
		if m.ID == id {
			return m.Label
		}
	}
	return "平常"
}

// ValidMood 判断 id 是否属于固定心情集合
// ValidMood reports whether id belongs to the fixed mood set
func ValidMood(id model.MoodID) bool {
	for _, m := range Moods {
		if m.ID == id {
			return true
		}
	}
	return false
}
