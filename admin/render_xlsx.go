package admin

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	excelMaxRows     = 1048576
	defaultSheetName = "Sheet1"
)

// SpreadsheetRenderer renders binary XLSX output.
type SpreadsheetRenderer struct{}

// Render streams rows into an XLSX workbook: a bold header row of
// upper-cased field labels, then one row per record.
func (r SpreadsheetRenderer) Render(ctx context.Context, fields []Field, rows RowIterator, w io.Writer, opts RenderOptions) (RenderStats, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	sheetName := opts.SheetName
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	defaultSheet := file.GetSheetName(0)
	if defaultSheet != sheetName {
		file.SetSheetName(defaultSheet, sheetName)
	}

	stream, err := file.NewStreamWriter(sheetName)
	if err != nil {
		return RenderStats{}, err
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return RenderStats{}, err
	}

	rowIndex := 1
	if opts.IncludeHeaders {
		headers := make([]interface{}, len(fields))
		for i, field := range fields {
			headers[i] = excelize.Cell{StyleID: headerStyle, Value: strings.ToUpper(field.HeaderLabel())}
		}
		if err := stream.SetRow(fmt.Sprintf("A%d", rowIndex), headers); err != nil {
			return RenderStats{}, err
		}
		rowIndex++
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
		if rowIndex > excelMaxRows {
			return stats, NewError(KindValidation, "xlsx row limit exceeded", nil)
		}

		cells := make([]interface{}, len(row))
		for i, value := range row {
			cell, err := buildCell(fields[i], value)
			if err != nil {
				return stats, err
			}
			cells[i] = cell
		}
		if err := stream.SetRow(fmt.Sprintf("A%d", rowIndex), cells); err != nil {
			return stats, err
		}
		rowIndex++
		stats.Rows++
		if opts.MaxRows > 0 && stats.Rows >= int64(opts.MaxRows) {
			break
		}
	}

	if err := stream.Flush(); err != nil {
		return stats, err
	}

	cw := &countingWriter{w: w}
	if _, err := file.WriteTo(cw); err != nil {
		return stats, err
	}
	stats.Bytes = cw.count
	return stats, nil
}

func buildCell(field Field, value any) (excelize.Cell, error) {
	if value == nil {
		return excelize.Cell{Value: ""}, nil
	}

	switch normalizeFieldType(field.Type) {
	case "string":
		return excelize.Cell{Value: stringify(value)}, nil
	case "bool":
		boolValue, ok := coerceBool(value)
		if !ok {
			return excelize.Cell{}, NewError(KindValidation, fmt.Sprintf("invalid bool for field %q", field.Name), nil)
		}
		return excelize.Cell{Value: boolValue}, nil
	case "int":
		intValue, ok := coerceInt(value)
		if !ok {
			return excelize.Cell{}, NewError(KindValidation, fmt.Sprintf("invalid int for field %q", field.Name), nil)
		}
		return excelize.Cell{Value: intValue}, nil
	case "float":
		floatValue, ok := coerceFloat(value)
		if !ok {
			return excelize.Cell{}, NewError(KindValidation, fmt.Sprintf("invalid number for field %q", field.Name), nil)
		}
		return excelize.Cell{Value: floatValue}, nil
	case "date", "datetime", "time":
		timeValue, ok := coerceTime(value)
		if !ok {
			return excelize.Cell{}, NewError(KindValidation, fmt.Sprintf("invalid time for field %q", field.Name), nil)
		}
		return excelize.Cell{Value: timeValue}, nil
	}

	switch v := value.(type) {
	case time.Time:
		return excelize.Cell{Value: v}, nil
	case bool, int, int64, float64, float32, string:
		return excelize.Cell{Value: v}, nil
	default:
		return excelize.Cell{Value: stringify(value)}, nil
	}
}
