// Package renderer renders computation results to markdown.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Rhymond/go-money"
	fbar "github.com/vasi/monarch-fbar"
)

//go:embed *.md
var templates embed.FS

var funcs = template.FuncMap{
	// usd formats a USD value for the report.
	"usd": func(v float64) string {
		return money.NewFromFloat(v, money.USD).Display()
	},
	// local formats the peak balance in the account's own currency.
	"local": func(m fbar.AccountMax) string {
		code, ok := m.Account.Currency.Symbol()
		if !ok {
			return m.MaxLocal.String()
		}
		return money.NewFromFloat(m.MaxLocal.InexactFloat64(), code).Display()
	},
	"currency": func(m fbar.AccountMax) string {
		code, _ := m.Account.Currency.Symbol()
		return code
	},
}

// renderTemplate parses one embedded template file and executes it with data.
func renderTemplate(mainFile string, data any) string {
	t, err := template.New(mainFile).Funcs(funcs).ParseFS(templates, mainFile)
	if err != nil {
		// templates are embedded, a parse failure is a programming error
		panic(fmt.Sprintf("cannot parse template %q: %v", mainFile, err))
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, mainFile, data); err != nil {
		panic(fmt.Sprintf("cannot render template %q: %v", mainFile, err))
	}
	return buf.String()
}
