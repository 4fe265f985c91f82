package admin

import (
	"strings"
	"unicode"
)

// Slugify lowercases a name and collapses anything that is not a letter
// or digit into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingDash = true
		}
	}
	return b.String()
}

// exportFilename derives the attachment filename for a route: delimited
// exports slug the singular verbose name, spreadsheet exports use the
// lowercased plural.
func exportFilename(meta ModelMeta, kind ExportKind) string {
	switch kind {
	case KindSpreadsheet:
		return strings.ToLower(meta.VerboseNamePlural) + ".xlsx"
	default:
		return Slugify(meta.VerboseName) + ".csv"
	}
}
