// Package renderer turns ledger views into markdown suitable for the
// terminal.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	bgm "github.com/NetoSantiago/bgm-pessoal"
)

//go:embed templates/*.md
var templates embed.FS

// RenderLedger renders the full table to a markdown string.
func RenderLedger(games []bgm.Game) string {
	return renderTemplate("ledger", "templates/ledger.md", games)
}

// RenderBring renders the "to bring" report to a markdown string.
func RenderBring(rows []bgm.BringRow) string {
	return renderTemplate("bring", "templates/bring.md", rows)
}

// RenderCredit renders the "for credit" report, including the aggregate
// total, to a markdown string.
func RenderCredit(report *bgm.CreditReport) string {
	return renderTemplate("credit", "templates/credit.md", report)
}

// renderTemplate is a generic utility to render one embedded template.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
