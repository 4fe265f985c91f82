package adminbun

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/goliatone/go-exportable-admin/admin"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS products"); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE products (
		id INTEGER PRIMARY KEY,
		name TEXT,
		sku TEXT,
		price REAL,
		quantity INTEGER
	)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	seed := [][]any{
		{1, "Wireless Mouse", "WM-001", 29.99, 150},
		{2, "Mechanical Keyboard", "MK-002", 89.99, 75},
		{3, "USB Hub", "UH-003", 49.99, 200},
		{4, "Gaming Mouse", "GM-004", 59.99, 40},
	}
	for _, row := range seed {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO products (id, name, sku, price, quantity) VALUES (?, ?, ?, ?, ?)",
			row...); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return db
}

func productFields() []admin.Field {
	return []admin.Field{
		{Name: "id", Type: "int"},
		{Name: "name", Type: "string"},
		{Name: "price", Type: "float"},
	}
}

func collect(t *testing.T, iter admin.RowIterator) []admin.Row {
	t.Helper()
	defer func() {
		_ = iter.Close()
	}()
	rows := []admin.Row{}
	for {
		row, err := iter.Next(context.Background())
		if err != nil {
			if err == io.EOF {
				return rows
			}
			t.Fatalf("next: %v", err)
		}
		rows = append(rows, row)
	}
}

func TestSource_DefaultSortByPrimaryKey(t *testing.T) {
	db := newTestDB(t)
	source := NewSource(db, Config{Table: "products"})

	iter, err := source.Open(context.Background(), admin.RowSourceSpec{
		Fields: productFields(),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	rows := collect(t, iter)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if id, _ := rows[0][0].(int64); id != 1 {
		t.Fatalf("expected first row id 1, got %v", rows[0][0])
	}
}

func TestSource_Filter(t *testing.T) {
	db := newTestDB(t)
	source := NewSource(db, Config{Table: "products"})

	iter, err := source.Open(context.Background(), admin.RowSourceSpec{
		Fields:  productFields(),
		Filters: []admin.Filter{{Field: "name", Value: "USB Hub"}},
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	rows := collect(t, iter)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][1] != "USB Hub" {
		t.Fatalf("unexpected row %v", rows[0])
	}
}

func TestSource_SearchAcrossSearchFields(t *testing.T) {
	db := newTestDB(t)
	source := NewSource(db, Config{Table: "products"})

	iter, err := source.Open(context.Background(), admin.RowSourceSpec{
		Fields:       productFields(),
		SearchFields: []string{"name", "sku"},
		Search:       "mouse",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	rows := collect(t, iter)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows matching mouse, got %d", len(rows))
	}
}

func TestSource_SortAndWindow(t *testing.T) {
	db := newTestDB(t)
	source := NewSource(db, Config{Table: "products"})

	iter, err := source.Open(context.Background(), admin.RowSourceSpec{
		Fields: productFields(),
		Sort:   []admin.Sort{{Field: "price", Desc: true}},
		Limit:  2,
		Offset: 1,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	rows := collect(t, iter)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Gaming Mouse" {
		t.Fatalf("expected second-most expensive first, got %v", rows[0])
	}
}

func TestSource_RequiresTable(t *testing.T) {
	db := newTestDB(t)
	source := NewSource(db, Config{})

	_, err := source.Open(context.Background(), admin.RowSourceSpec{Fields: productFields()})
	if err == nil {
		t.Fatalf("expected error for missing table")
	}
	if admin.KindFromError(err) != admin.KindValidation {
		t.Fatalf("expected validation kind, got %v", admin.KindFromError(err))
	}
}
