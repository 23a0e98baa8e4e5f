// Package render builds the dynamic part of the listing page.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alfagnish/userbook/internal/store"
)

// Placeholder marks where the user table is inserted in the home page.
const Placeholder = "<!-- USER_TABLE -->"

// EmptyMessage is rendered instead of a table when there are no users.
const EmptyMessage = "<p>No users available.</p>"

var tableTmpl = template.Must(template.New("table").Parse(`<table>
  <tr>
    <th>ID</th>
    <th>Name</th>
    <th>Age</th>
    <th>Gmail</th>
  </tr>
{{- range .}}
  <tr>
    <td>{{.ID}}</td>
    <td>{{.Name}}</td>
    <td>{{.Age}}</td>
    <td>{{.Gmail}}</td>
  </tr>
{{- end}}
</table>`))

// Table renders users as an HTML table, one row per user in order.
// Field values are escaped.
func Table(users []store.User) (string, error) {
	if len(users) == 0 {
		return EmptyMessage, nil
	}
	var b strings.Builder
	if err := writeTable(&b, users); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeTable(w io.Writer, users []store.User) error {
	if err := tableTmpl.Execute(w, users); err != nil {
		return fmt.Errorf("render user table: %w", err)
	}
	return nil
}

// Home substitutes the rendered table for the first placeholder in page.
func Home(page string, users []store.User) (string, error) {
	table, err := Table(users)
	if err != nil {
		return "", err
	}
	return strings.Replace(page, Placeholder, table, 1), nil
}
