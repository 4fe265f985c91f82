package admin

import (
	"io"

	"github.com/flosch/pongo2/v6"
)

// Default changelist template, Django template syntax. Integrators can
// swap it out with SetTemplate; overriding removes the export buttons
// unless the replacement renders the export_buttons block itself.
const defaultChangelistHTML = `<!DOCTYPE html>
<html>
<head><title>{{ title }}</title></head>
<body>
<h1>{{ title }}</h1>
<div class="export-buttons">
{% for button in export_buttons %}  <a class="export-button" href="{{ button.URL }}">{{ button.Label }}</a>
{% endfor %}</div>
<table>
<thead>
<tr>{% for label in headers %}<th>{{ label }}</th>{% endfor %}</tr>
</thead>
<tbody>
{% for row in rows %}<tr>{% for cell in row %}<td>{{ cell }}</td>{% endfor %}</tr>
{% endfor %}</tbody>
</table>
<p class="pagination">Page {{ page }} ({{ row_count }} rows)</p>
</body>
</html>
`

var defaultChangelistTemplate = pongo2.Must(pongo2.FromString(defaultChangelistHTML))

// ChangelistTemplate renders the changelist HTML view.
type ChangelistTemplate struct {
	tpl *pongo2.Template
}

// NewChangelistTemplate returns the built-in template.
func NewChangelistTemplate() *ChangelistTemplate {
	return &ChangelistTemplate{tpl: defaultChangelistTemplate}
}

// SetTemplate replaces the compiled template.
func (t *ChangelistTemplate) SetTemplate(tpl *pongo2.Template) {
	if tpl != nil {
		t.tpl = tpl
	}
}

// Render writes the changelist page for a resolved changelist.
func (t *ChangelistTemplate) Render(w io.Writer, cl *Changelist) error {
	if cl == nil {
		return NewError(KindValidation, "changelist is required", nil)
	}

	headers := make([]string, 0, len(cl.Fields))
	for _, field := range cl.Fields {
		headers = append(headers, field.HeaderLabel())
	}

	rows := make([][]string, 0, len(cl.Rows))
	for _, row := range cl.Rows {
		cells := make([]string, len(row))
		for i, value := range row {
			formatted, err := formatTextValue(cl.Fields[i], value)
			if err != nil {
				return err
			}
			cells[i] = formatted
		}
		rows = append(rows, cells)
	}

	return t.tpl.ExecuteWriter(pongo2.Context{
		"title":          cl.Admin.Meta.VerboseNamePlural,
		"headers":        headers,
		"rows":           rows,
		"export_buttons": cl.Buttons,
		"page":           cl.Pagination.Page,
		"row_count":      len(rows),
	}, w)
}
