package admin

import "strings"

// ExportKind is the renderer family an export route resolves to.
type ExportKind string

const (
	KindDelimited   ExportKind = "delimited"
	KindSpreadsheet ExportKind = "xlsx"
)

// NormalizeExportType coerces configured export type names into known
// renderer kinds. Legacy "xls" and "excel" configurations resolve to the
// XLSX renderer.
func NormalizeExportType(name string) (ExportKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xlsx", "xls", "excel":
		return KindSpreadsheet, true
	default:
		return "", false
	}
}
