package i18n

// EnMessages English message catalog
var EnMessages = map[string]string{
	// App
	"app.title":    "Daily Oracle",
	"app.subtitle": "a small companion for the day",

	// Drawing
	"draw.prompt":  "Press Enter to draw today's lot",
	"draw.shaking": "Shaking the lot cylinder...",

	// Result
	"result.lucky":  "Lucky color: %s · Lucky number: %d",
	"result.hint":   "Enter for today's guidance",
	"result.redraw": "r to draw again",

	// Mood
	"mood.title": "How do you feel right now?",
	"mood.hint":  "choose with ←/→, confirm with Enter",

	// Loading
	"loading.insight": "Reading the stars...",
	"loading.report":  "Composing your growth report...",

	// Dashboard tabs
	"tab.oracle":  "Oracle",
	"tab.todo":    "Todo",
	"tab.review":  "Review",
	"tab.history": "History",

	// Oracle panel
	"oracle.interpretation":        "Today's reading",
	"oracle.recommendation":        "Today's picks",
	"oracle.rec_eat":               "Eat",
	"oracle.rec_wear":              "Wear",
	"oracle.rec_use":               "Use",
	"oracle.rec_action":            "Do",
	"oracle.intention_placeholder": "Tell the oracle a wish... (Enter to refine)",
	"oracle.no_recommendation":     "No picks yet — the channel was busy, try refining a wish",

	// Todo panel
	"todo.placeholder": "Add a small task for today...",
	"todo.empty":       "Nothing planned yet",
	"todo.done_at":     "done %s · %s",
	"todo.hint":        "space toggle · d delete · m edit mood",

	// Review panel
	"review.placeholder": "A few words about today...",
	"review.progress":    "Todos done today: %d/%d",
	"review.generate":    "g to generate the growth report",
	"review.no_report":   "No report yet",
	"review.report":      "Growth report",

	// History panel
	"history.title": "Calendar",
	"history.empty": "No record for this day",
	"history.hint":  "←/→ day · ↑/↓ week · [ ] month",

	// Status / errors
	"status.saved_warning": "History could not be saved: %s",
	"error.provider":       "Provider error: %s",
	"error.config":         "Config error: %s",

	// Keys
	"keys.tabs":  "1-4 tabs",
	"keys.reset": "ctrl+r reset",
	"keys.quit":  "ctrl+c quit",

	// REPL
	"repl.welcome":        "Daily Oracle started (data: %s)",
	"repl.mode":           "Running in REPL mode (use --tui for the full TUI)",
	"repl.help":           "Type /help for commands",
	"repl.unknown":        "Unknown command: %s",
	"repl.bye":            "Take care.",
	"cmd.draw":            "Draw today's lot",
	"cmd.mood":            "Pick a mood (happy/calm/tired/energetic/sad)",
	"cmd.wish":            "Refine the reading with a wish",
	"cmd.todo":            "Manage today's todos (add/done/rm/list)",
	"cmd.review":          "Write today's reflection",
	"cmd.report":          "Generate the growth report",
	"cmd.history":         "Show a recorded day",
	"cmd.reset":           "Return to drawing",
	"cmd.help":            "Show available commands",
	"cmd.exit":            "Exit application",
	"repl.need_draw":      "Draw a lot first (/draw)",
	"repl.need_mood":      "Pick a mood first (/mood)",
	"repl.todo_added":     "Added: %s",
	"repl.todo_none":      "No todo matches %q",
	"repl.no_entry":       "No record for %s",
	"repl.mood_values":    "Moods: happy calm tired energetic sad",
	"repl.input_fallback": "Line editing unavailable, using basic input: %s",
}
