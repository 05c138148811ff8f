package icon

// Icon identifies a symbol in the global registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Link
	Mark
	Folder
	File
	Disc
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(･ω･)b",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⌛",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・・;)",
		squares: "🟨",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・)?",
		squares: "🟦",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(つ゜v゜)つ",
		squares: "🟪",
	},
	Mark: {
		emoji:   "🔖",
		nerd:    "",
		plain:   "*",
		kaomoji: "(._.)φ",
		squares: "🟧",
	},
	Folder: {
		emoji:   "📁",
		nerd:    "",
		plain:   "[d]",
		kaomoji: "(つ[])",
		squares: "🟫",
	},
	File: {
		emoji:   "📄",
		nerd:    "",
		plain:   "[f]",
		kaomoji: "( ̄ー ̄)",
		squares: "⬜",
	},
	Disc: {
		emoji:   "💿",
		nerd:    "",
		plain:   "[iso]",
		kaomoji: "(〇)",
		squares: "🔵",
	},
}
