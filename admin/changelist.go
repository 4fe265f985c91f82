package admin

import (
	"context"
	"fmt"
	"io"
)

// Changelist is the resolved list view for one request: the display
// fields, a page of materialized rows, pagination state, and the export
// buttons for the HTML template.
type Changelist struct {
	Admin      *ModelAdmin
	Fields     []Field
	Rows       []Row
	Pagination Pagination
	Buttons    []ExportButton
}

// Changelist resolves the admin, applies pagination, opens the row
// source, and materializes the requested page.
func (s *Site) Changelist(ctx context.Context, appLabel, modelName string, req ListRequest) (*Changelist, error) {
	a, err := s.Resolve(appLabel, modelName)
	if err != nil {
		return nil, err
	}

	pagination := Paginate(req, *a)
	iter, err := a.Source.Open(ctx, RowSourceSpec{
		Fields:       a.Fields,
		SearchFields: a.SearchFields,
		Filters:      req.Filters,
		Search:       req.Search,
		Sort:         req.Sort,
		Limit:        pagination.Limit,
		Offset:       pagination.Offset,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = iter.Close()
	}()

	rows := []Row{}
	for {
		row, err := iter.Next(ctx)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(row) != len(a.Fields) {
			return nil, NewError(KindValidation, "row length does not match display fields", nil)
		}
		rows = append(rows, row)
		if len(rows) >= pagination.Limit {
			break
		}
	}

	buttons, err := BuildExportButtons(s.routes, *a)
	if err != nil {
		return nil, err
	}

	return &Changelist{
		Admin:      a,
		Fields:     a.Fields,
		Rows:       rows,
		Pagination: pagination,
		Buttons:    buttons,
	}, nil
}

// Export runs the named export route against the current changelist
// query and writes the serialized result to w. The request is forced
// into export mode so the queryset limit replaces the page size.
func (s *Site) Export(ctx context.Context, appLabel, modelName, formatName string, req ListRequest, w io.Writer) (ExportResult, error) {
	a, err := s.Resolve(appLabel, modelName)
	if err != nil {
		return ExportResult{}, err
	}

	route, err := findRoute(*a, formatName)
	if err != nil {
		return ExportResult{}, err
	}

	renderer, ok := s.renderers.Resolve(route.Kind)
	if !ok {
		return ExportResult{}, NewError(KindInternal, fmt.Sprintf("no renderer for export kind %q", route.Kind), nil)
	}

	req.Export = true
	req.Format = route.Format
	pagination := Paginate(req, *a)

	iter, err := a.Source.Open(ctx, RowSourceSpec{
		Fields:       a.Fields,
		SearchFields: a.SearchFields,
		Filters:      req.Filters,
		Search:       req.Search,
		Sort:         req.Sort,
		Limit:        pagination.Limit,
	})
	if err != nil {
		return ExportResult{}, err
	}
	defer func() {
		_ = iter.Close()
	}()

	exportID := s.idGen()
	stats, err := renderer.Render(ctx, a.Fields, iter, w, RenderOptions{
		Delimiter:      route.Delimiter,
		IncludeHeaders: true,
		SheetName:      route.SheetName,
		MaxRows:        pagination.Limit,
	})
	if err != nil {
		s.logger.Errorf("export %s failed for %s/%s: %v", exportID, a.Meta.Key(), route.Format, err)
		return ExportResult{}, err
	}

	result := ExportResult{
		ID:          exportID,
		Filename:    exportFilename(a.Meta, route.Kind),
		ContentType: ContentTypeForKind(route.Kind),
		Rows:        stats.Rows,
		Bytes:       stats.Bytes,
	}
	s.logger.Infof("export %s completed for %s/%s: %d rows, %d bytes", exportID, a.Meta.Key(), route.Format, result.Rows, result.Bytes)
	return result, nil
}

func findRoute(a ModelAdmin, formatName string) (Route, error) {
	name := routeFormatName(formatName)
	for _, route := range ExportRoutes(a) {
		if route.Format == name {
			return route, nil
		}
	}
	return Route{}, NewError(KindNotFound, fmt.Sprintf("export format %q not configured for %s", formatName, a.Meta.Key()), nil)
}
