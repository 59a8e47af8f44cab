package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/nandemo-ya/sitewise/cmd/codegen/parser"
)

const header = "// Code generated by cmd/codegen. DO NOT EDIT.\n\n"

// Generator writes the model package for a Smithy service.
type Generator struct {
	packageName string
	outputDir   string
}

// New creates a new code generator
func New(packageName, outputDir string) *Generator {
	return &Generator{
		packageName: packageName,
		outputDir:   outputDir,
	}
}

// Generate writes types.go, enums.go and operations.go.
func (g *Generator) Generate(api *parser.SmithyAPI) error {
	m, err := newModel(api)
	if err != nil {
		return err
	}

	files := []struct {
		name   string
		render func(*model) ([]byte, error)
	}{
		{"types.go", g.renderTypes},
		{"enums.go", g.renderEnums},
		{"operations.go", g.renderOperations},
	}
	for _, f := range files {
		content, err := f.render(m)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if err := g.writeFormattedFile(f.name, content); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// Render returns the formatted content of every generated file keyed by
// file name.
func (g *Generator) Render(api *parser.SmithyAPI) (map[string][]byte, error) {
	m, err := newModel(api)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte)
	for name, render := range map[string]func(*model) ([]byte, error){
		"types.go":      g.renderTypes,
		"enums.go":      g.renderEnums,
		"operations.go": g.renderOperations,
	} {
		content, err := render(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		formatted, err := format.Source(content)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to format Go code: %w", name, err)
		}
		out[name] = formatted
	}
	return out, nil
}

// writeFormattedFile writes formatted Go code to a file
func (g *Generator) writeFormattedFile(filename string, content []byte) error {
	formatted, err := format.Source(content)
	if err != nil {
		// If formatting fails, write unformatted for debugging
		if writeErr := os.WriteFile(filepath.Join(g.outputDir, filename+".unformatted"), content, 0644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted file: %w", writeErr)
		}
		return fmt.Errorf("failed to format Go code: %w (unformatted version saved)", err)
	}

	fullPath := filepath.Join(g.outputDir, filename)
	if err := os.WriteFile(fullPath, formatted, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// executeTemplate executes a template with the given data
func (g *Generator) executeTemplate(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	"comment": comment,
	"quote":   func(s string) string { return fmt.Sprintf("%q", s) },
	"tag":     func(s string) string { return "`" + s + "`" },
	"raw":     func(s string) string { return "`" + s + "`" },
}

// comment renders text as // lines wrapped at 77 columns, each prefixed
// with indent.
func comment(text, indent string) string {
	var b strings.Builder
	for _, line := range wrap(text, 77) {
		b.WriteString(indent)
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func wrap(text string, width int) []string {
	var lines []string
	cur := ""
	for _, w := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) > width:
			lines = append(lines, cur)
			cur = w
		default:
			cur += " " + w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
