package admin

import (
	"context"
	"encoding/csv"
	"io"
)

// DelimitedRenderer renders delimiter-separated text output.
type DelimitedRenderer struct{}

// Render streams rows as delimited text. The delimiter comes from the
// route configuration; zero falls back to encoding/csv's comma.
func (r DelimitedRenderer) Render(ctx context.Context, fields []Field, rows RowIterator, w io.Writer, opts RenderOptions) (RenderStats, error) {
	cw := &countingWriter{w: w}
	writer := csv.NewWriter(cw)
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}

	if opts.IncludeHeaders {
		headers := make([]string, 0, len(fields))
		for _, field := range fields {
			headers = append(headers, field.HeaderLabel())
		}
		if err := writer.Write(headers); err != nil {
			return RenderStats{}, err
		}
	}

	stats := RenderStats{}
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		row, err := rows.Next(ctx)
		if err != nil {
			if err == io.EOF {
				break
			}
			return stats, err
		}
		if len(row) != len(fields) {
			return stats, NewError(KindValidation, "row length does not match display fields", nil)
		}

		record := make([]string, len(row))
		for i, value := range row {
			formatted, err := formatTextValue(fields[i], value)
			if err != nil {
				return stats, err
			}
			record[i] = formatted
		}
		if err := writer.Write(record); err != nil {
			return stats, err
		}
		stats.Rows++
		if opts.MaxRows > 0 && stats.Rows >= int64(opts.MaxRows) {
			break
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, err
	}

	stats.Bytes = cw.count
	return stats, nil
}
