package admin

// ContentTypeForKind returns the response content type for an export kind.
func ContentTypeForKind(kind ExportKind) string {
	switch kind {
	case KindDelimited:
		return "text/csv"
	case KindSpreadsheet:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
