package adminbun

import (
	"context"
	"database/sql"
	"io"
	"strings"

	"github.com/goliatone/go-exportable-admin/admin"
	"github.com/uptrace/bun"
)

// Config configures the table behind a changelist.
type Config struct {
	Table      string
	PrimaryKey string
}

// Source adapts a bun-backed table to the admin.RowSource interface.
type Source struct {
	DB     bun.IDB
	Config Config
}

// NewSource creates a bun row source.
func NewSource(db bun.IDB, cfg Config) *Source {
	return &Source{DB: db, Config: cfg}
}

// Open builds and executes the changelist query: display-field columns,
// equality filters, search across searchable columns, sort directives,
// and the caller's limit/offset window.
func (s *Source) Open(ctx context.Context, spec admin.RowSourceSpec) (admin.RowIterator, error) {
	if s == nil || s.DB == nil {
		return nil, admin.NewError(admin.KindValidation, "bun database is required", nil)
	}
	if s.Config.Table == "" {
		return nil, admin.NewError(admin.KindValidation, "table name is required", nil)
	}
	if len(spec.Fields) == 0 {
		return nil, admin.NewError(admin.KindValidation, "at least one display field is required", nil)
	}

	columns := make([]string, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		columns = append(columns, field.Name)
	}

	query := s.DB.NewSelect().Table(s.Config.Table).Column(columns...)

	for _, filter := range spec.Filters {
		query = query.Where("? = ?", bun.Ident(filter.Field), filter.Value)
	}

	if search := strings.TrimSpace(spec.Search); search != "" {
		fields := s.searchFields(spec)
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			for _, field := range fields {
				q = q.WhereOr("LOWER(?) LIKE ?", bun.Ident(field), pattern)
			}
			return q
		})
	}

	sorts := spec.Sort
	if len(sorts) == 0 {
		primaryKey := s.Config.PrimaryKey
		if primaryKey == "" {
			primaryKey = "id"
		}
		sorts = []admin.Sort{{Field: primaryKey}}
	}
	for _, sort := range sorts {
		if sort.Desc {
			query = query.OrderExpr("? DESC", bun.Ident(sort.Field))
		} else {
			query = query.OrderExpr("? ASC", bun.Ident(sort.Field))
		}
	}

	if spec.Limit > 0 {
		query = query.Limit(spec.Limit)
	}
	if spec.Offset > 0 {
		query = query.Offset(spec.Offset)
	}

	rows, err := query.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return &rowsIterator{rows: rows, width: len(columns)}, nil
}

func (s *Source) searchFields(spec admin.RowSourceSpec) []string {
	if len(spec.SearchFields) > 0 {
		return spec.SearchFields
	}
	fields := make([]string, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		fields = append(fields, field.Name)
	}
	return fields
}

type rowsIterator struct {
	rows  *sql.Rows
	width int
}

func (it *rowsIterator) Next(ctx context.Context) (admin.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !it.rows.Next() {
		if err := it.rows.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	values := make([]any, it.width)
	pointers := make([]any, it.width)
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := it.rows.Scan(pointers...); err != nil {
		return nil, err
	}

	row := make(admin.Row, it.width)
	for i, value := range values {
		if b, ok := value.([]byte); ok {
			row[i] = string(b)
			continue
		}
		row[i] = value
	}
	return row, nil
}

func (it *rowsIterator) Close() error {
	return it.rows.Close()
}
