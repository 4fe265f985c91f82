package admin

import "fmt"

const (
	// DefaultExportQuerysetLimit caps export responses at 10,000 rows.
	DefaultExportQuerysetLimit = 10000
	// DefaultListPerPage is the normal changelist page size.
	DefaultListPerPage = 100
)

// ModelMeta names the model an admin manages.
type ModelMeta struct {
	AppLabel          string
	ModelName         string
	VerboseName       string
	VerboseNamePlural string
}

// Key returns the registry key for the model.
func (m ModelMeta) Key() string {
	return m.AppLabel + "." + m.ModelName
}

// ModelAdmin configures one exportable changelist. Setting ExportFormats
// and ExportTypes is what enables export buttons and routes; an admin
// with neither behaves as a plain changelist.
type ModelAdmin struct {
	Meta                ModelMeta
	Fields              []Field
	SearchFields        []string
	ExportFormats       []DelimitedFormat
	ExportTypes         []string
	ExportQuerysetLimit int
	ListPerPage         int
	Source              RowSource
}

func (a ModelAdmin) exportLimit() int {
	if a.ExportQuerysetLimit > 0 {
		return a.ExportQuerysetLimit
	}
	return DefaultExportQuerysetLimit
}

func (a ModelAdmin) perPage() int {
	if a.ListPerPage > 0 {
		return a.ListPerPage
	}
	return DefaultListPerPage
}

// Validate checks the admin configuration at registration time.
func (a ModelAdmin) Validate() error {
	if a.Meta.AppLabel == "" || a.Meta.ModelName == "" {
		return NewError(KindValidation, "model meta requires app label and model name", nil)
	}
	if a.Meta.VerboseName == "" {
		return NewError(KindValidation, "model meta requires a verbose name", nil)
	}
	if len(a.Fields) == 0 {
		return NewError(KindValidation, fmt.Sprintf("admin %q requires at least one display field", a.Meta.Key()), nil)
	}
	if a.Source == nil {
		return NewError(KindValidation, fmt.Sprintf("admin %q requires a row source", a.Meta.Key()), nil)
	}
	seen := map[string]bool{}
	for _, format := range a.ExportFormats {
		if format.Name == "" {
			return NewError(KindValidation, fmt.Sprintf("admin %q has an export format without a name", a.Meta.Key()), nil)
		}
		if format.Delimiter == 0 {
			return NewError(KindValidation, fmt.Sprintf("export format %q requires a delimiter", format.Name), nil)
		}
		key := routeFormatName(format.Name)
		if seen[key] {
			return NewError(KindValidation, fmt.Sprintf("export format %q declared twice", format.Name), nil)
		}
		seen[key] = true
	}
	for _, typeName := range a.ExportTypes {
		if _, ok := NormalizeExportType(typeName); !ok {
			return NewError(KindValidation, fmt.Sprintf("unknown export type %q", typeName), nil)
		}
		key := routeFormatName(typeName)
		if seen[key] {
			return NewError(KindValidation, fmt.Sprintf("export type %q declared twice", typeName), nil)
		}
		seen[key] = true
	}
	return nil
}

// CSVExportable returns the admin configured for comma exports.
func CSVExportable(a ModelAdmin) ModelAdmin {
	a.ExportFormats = []DelimitedFormat{{Name: "CSV", Delimiter: ','}}
	return a
}

// PipeExportable returns the admin configured for pipe exports.
func PipeExportable(a ModelAdmin) ModelAdmin {
	a.ExportFormats = []DelimitedFormat{{Name: "Pipe", Delimiter: '|'}}
	return a
}

// MultiExportable returns the admin configured for both comma and pipe
// exports.
func MultiExportable(a ModelAdmin) ModelAdmin {
	a.ExportFormats = []DelimitedFormat{
		{Name: "CSV", Delimiter: ','},
		{Name: "Pipe", Delimiter: '|'},
	}
	return a
}

// SpreadsheetExportable returns the admin configured for XLSX exports.
func SpreadsheetExportable(a ModelAdmin) ModelAdmin {
	a.ExportTypes = []string{"xlsx"}
	return a
}
