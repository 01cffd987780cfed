package model

// MoodID 心情标识，取值固定（见 catalog.Moods）
// MoodID identifies a mood; the value set is fixed (see catalog.Moods)
type MoodID string

// RecommendationDetail 单条建议
// RecommendationDetail is a single recommendation entry
type RecommendationDetail struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Recommendation 四类建议：食 / 穿 / 用 / 行
// Recommendation holds the four category entries: eat / wear / use / action
type Recommendation struct {
	Eat    RecommendationDetail `json:"eat"`
	Wear   RecommendationDetail `json:"wear"`
	Use    RecommendationDetail `json:"use"`
	Action RecommendationDetail `json:"action"`
}

// Todo 当日任务条目
// Todo is a single daily task entry
type Todo struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Completed      bool   `json:"completed"`
	CompletionTime string `json:"completionTime,omitempty"`
	CompletionMood MoodID `json:"completionMood,omitempty"`
}

// HistoryEntry 一个日历日的完整快照，按 YYYY-MM-DD（本地时区）落库
// HistoryEntry is the persisted snapshot of one calendar day, keyed YYYY-MM-DD (local time)
type HistoryEntry struct {
	Date       string `json:"date"`
	Lot        *Lot   `json:"lot"`
	Todos      []Todo `json:"todos"`
	Mood       MoodID `json:"mood,omitempty"`
	Reflection string `json:"reflection"`
	AIReport   string `json:"aiReport,omitempty"`
}

// HistoryMap 日期键到当日快照的映射，即全部持久化状态
// HistoryMap maps date keys to day snapshots; it is the full persisted state
type HistoryMap map[string]HistoryEntry

// Lot 签位，不可变参考数据；抽中后原样记录
// Lot is an immutable fortune entry; it is recorded as drawn, never mutated
type Lot struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Vibe        string `json:"vibe"`
	LuckyColor  string `json:"luckyColor"`
	LuckyNumber int    `json:"luckyNumber"`
	HexColor    string `json:"hexColor"`
}
