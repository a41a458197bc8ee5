package toolmedia

// MaxOverviewRunes bounds the markdown overview of a tool profile.
const MaxOverviewRunes = 2000

// ToolProfile summarizes a tool's homepage for its directory entry.
type ToolProfile struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Overview    string `json:"overview"`
}

// TruncateRunes shortens s to at most n runes, appending "…" when cut.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
