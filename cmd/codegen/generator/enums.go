package generator

import (
	"regexp"
	"strings"
	"text/template"
)

// EnumInfo describes a generated enum type.
type EnumInfo struct {
	Name    string
	Doc     string
	Members []EnumConst
}

// EnumConst is one constant of a generated enum type.
type EnumConst struct {
	Type  string
	Name  string
	Value string
}

var screamingCase = regexp.MustCompile(`^[A-Z0-9_]+$`)

// constSuffix derives the constant name suffix of an enum value:
// IN_SYNC becomes InSync, and other values get an upper-case first letter.
func constSuffix(value string) string {
	if !screamingCase.MatchString(value) {
		return exportName(value)
	}
	var b strings.Builder
	for _, part := range strings.Split(value, "_") {
		if part == "" {
			continue
		}
		b.WriteString(part[:1])
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

func (m *model) enumInfo(id string) EnumInfo {
	s := m.shape(id)
	info := EnumInfo{Name: m.goName(id)}
	if doc := s.Documentation(); doc != "" {
		info.Doc = info.Name + " is " + lowerFirst(doc)
	} else {
		info.Doc = info.Name + " is an enumerated string type."
	}
	for _, member := range s.GetEnumMembers() {
		info.Members = append(info.Members, EnumConst{
			Type:  info.Name,
			Name:  info.Name + constSuffix(member.Value),
			Value: member.Value,
		})
	}
	return info
}

func (g *Generator) renderEnums(m *model) ([]byte, error) {
	var enums []EnumInfo
	for _, id := range m.enums() {
		enums = append(enums, m.enumInfo(id))
	}

	data := struct {
		Package string
		Enums   []EnumInfo
	}{
		Package: g.packageName,
		Enums:   enums,
	}

	tmpl := template.Must(template.New("enums").Funcs(funcs).Parse(enumsTemplate))
	return g.executeTemplate(tmpl, data)
}

const enumsTemplate = header + `package {{.Package}}
{{range .Enums}}
{{comment .Doc ""}}type {{.Name}} string

// Enum values for {{.Name}}
const (
{{- range .Members}}
	{{.Name}} {{.Type}} = {{quote .Value}}
{{- end}}
)

// Values returns all known values for {{.Name}}. Note that this can be
// expanded in the future, and so it is only as up to date as the client.
func ({{.Name}}) Values() []{{.Name}} {
	return []{{.Name}}{
{{- range .Members}}
		{{quote .Value}},
{{- end}}
	}
}
{{end}}`
