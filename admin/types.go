package admin

import (
	"context"
	"io"
)

// DelimitedFormat pairs an export format label with its delimiter,
// e.g. {"CSV", ','} or {"Pipe", '|'}.
type DelimitedFormat struct {
	Name      string
	Delimiter rune
}

// Field describes one display column of a changelist.
type Field struct {
	Name  string
	Label string
	Type  string
}

// HeaderLabel returns the label used for header rows, falling back to
// the field name.
func (f Field) HeaderLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Row is a column-aligned record.
type Row []any

// Filter restricts the changelist to rows matching a field value.
type Filter struct {
	Field string
	Value any
}

// Sort describes a sort directive.
type Sort struct {
	Field string
	Desc  bool
}

// ListRequest captures changelist query state for a single request.
// Export marks the request as an export, which substitutes the admin's
// export queryset limit for the normal page size.
type ListRequest struct {
	Page    int
	PerPage int
	Filters []Filter
	Search  string
	Sort    []Sort
	Export  bool
	Format  string
}

// RowSourceSpec is passed to RowSource.Open.
type RowSourceSpec struct {
	Fields       []Field
	SearchFields []string
	Filters      []Filter
	Search       string
	Sort         []Sort
	Limit        int
	Offset       int
}

// RowSource provides row iterators for changelists and exports.
type RowSource interface {
	Open(ctx context.Context, spec RowSourceSpec) (RowIterator, error)
}

// RowIterator streams rows.
type RowIterator interface {
	Next(ctx context.Context) (Row, error)
	Close() error
}

// RenderOptions configures renderer behavior.
type RenderOptions struct {
	Delimiter      rune
	IncludeHeaders bool
	SheetName      string
	MaxRows        int
}

// RenderStats capture renderer output.
type RenderStats struct {
	Rows  int64
	Bytes int64
}

// Renderer writes changelist rows to the destination.
type Renderer interface {
	Render(ctx context.Context, fields []Field, rows RowIterator, w io.Writer, opts RenderOptions) (RenderStats, error)
}

// ExportResult captures a completed export response.
type ExportResult struct {
	ID          string
	Filename    string
	ContentType string
	Rows        int64
	Bytes       int64
}

// ExportButton links a button label to the named export route it triggers.
type ExportButton struct {
	Label     string
	RouteName string
	URL       string
}
