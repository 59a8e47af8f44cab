package generator

import (
	"sort"
	"strings"
	"text/template"

	"github.com/nandemo-ya/sitewise/cmd/codegen/parser"
)

const commonImport = "github.com/nandemo-ya/sitewise/internal/common"

// StructInfo describes a generated structure type.
type StructInfo struct {
	Name     string
	Doc      string
	Fields   []FieldInfo
	Validate bool
	Rules    []string
}

// FieldInfo describes one field of a generated structure and its
// accessors.
type FieldInfo struct {
	Owner  string
	Name   string
	GoType string
	Tag    string
	Doc    string

	// Access selects the accessor shape: "value" dereferences a scalar,
	// "time" unwraps a timestamp and "ref" returns the field as is.
	Access    string
	ValueType string
	Zero      string
}

// PatternInfo is a compiled pattern shared by Validate methods.
type PatternInfo struct {
	Name string
	Expr string
}

func (m *model) structInfo(id string) StructInfo {
	s := m.shape(id)
	info := StructInfo{
		Name:     m.goName(id),
		Validate: m.hasValidate(id),
	}
	info.Doc = m.structDoc(id, info.Name)

	for _, name := range sortedMembers(s) {
		mem := s.Members[name]
		info.Fields = append(info.Fields, m.fieldInfo(info.Name, name, mem))
		if info.Validate {
			info.Rules = append(info.Rules, m.rules(name, mem)...)
		}
	}
	return info
}

func (m *model) structDoc(id, name string) string {
	if op, ok := m.inputOf[id]; ok {
		return name + " is the input of the " + op + " operation."
	}
	if op, ok := m.outputOf[id]; ok {
		return name + " is the output of the " + op + " operation."
	}
	if doc := m.shape(id).Documentation(); doc != "" {
		return name + " " + lowerFirst(doc)
	}
	return name + " represents the " + name + " structure."
}

func (m *model) fieldInfo(owner, name string, mem *parser.SmithyMember) FieldInfo {
	f := FieldInfo{
		Owner:  owner,
		Name:   exportName(name),
		GoType: m.fieldType(mem.Target),
		Doc:    mem.Documentation(),
	}

	tag := `json:"` + mem.GetJSONName(name) + `,omitempty"`
	if mem.IsHTTPLabel() {
		tag += ` location:"uri" locationName:"` + name + `"`
	} else if q, ok := mem.HTTPQuery(); ok {
		tag += ` location:"querystring" locationName:"` + q + `"`
	}
	if mem.IsRequired() {
		tag += ` required:"true"`
	}
	f.Tag = tag

	k, goType := m.kindOf(mem.Target)
	switch k {
	case kindPrim, kindEnum:
		f.Access = "value"
		f.ValueType = goType
		f.Zero = `""`
		if z, ok := zeroValues[goType]; ok {
			f.Zero = z
		}
	case kindTime:
		f.Access = "time"
	default:
		f.Access = "ref"
		f.ValueType = f.GoType
	}
	return f
}

func (g *Generator) renderTypes(m *model) ([]byte, error) {
	var structs []StructInfo
	for _, id := range m.structs() {
		structs = append(structs, m.structInfo(id))
	}

	var patterns []PatternInfo
	for name, expr := range m.patterns {
		patterns = append(patterns, PatternInfo{Name: "pattern" + name, Expr: expr})
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Name < patterns[j].Name })

	data := struct {
		Package      string
		CommonImport string
		StdImports   []string
		NeedsRequest bool
		NeedsCommon  bool
		Patterns     []PatternInfo
		Structs      []StructInfo
	}{
		Package:      g.packageName,
		CommonImport: commonImport,
		Patterns:     patterns,
		Structs:      structs,
	}

	var needsFmt, needsTime, needsUTF8 bool
	for _, s := range structs {
		data.NeedsRequest = data.NeedsRequest || s.Validate
		for _, f := range s.Fields {
			if f.Access == "time" {
				needsTime = true
			}
		}
		for _, r := range s.Rules {
			needsFmt = needsFmt || strings.Contains(r, "fmt.Sprintf")
			needsUTF8 = needsUTF8 || strings.Contains(r, "utf8.")
		}
	}
	data.NeedsCommon = needsTime
	for _, imp := range []struct {
		path string
		used bool
	}{
		{"fmt", needsFmt},
		{"regexp", len(patterns) > 0},
		{"time", needsTime},
		{"unicode/utf8", needsUTF8},
	} {
		if imp.used {
			data.StdImports = append(data.StdImports, imp.path)
		}
	}

	tmpl := template.Must(template.New("types").Funcs(funcs).Parse(typesTemplate))
	return g.executeTemplate(tmpl, data)
}

const typesTemplate = header + `package {{.Package}}

import (
{{- range .StdImports}}
	"{{.}}"
{{- end}}

	"github.com/aws/aws-sdk-go/aws/awsutil"
{{- if .NeedsRequest}}
	"github.com/aws/aws-sdk-go/aws/request"
{{- end}}
{{- if .NeedsCommon}}

	"{{.CommonImport}}"
{{- end}}
)
{{- if .Patterns}}

var (
{{- range .Patterns}}
	{{.Name}} = regexp.MustCompile({{raw .Expr}})
{{- end}}
)
{{- end}}
{{range .Structs}}
{{template "struct" .}}
{{end}}

{{- define "struct"}}
{{- comment .Doc ""}}type {{.Name}} struct {
{{- range $i, $f := .Fields}}{{if $i}}
{{end}}
{{comment $f.Doc "\t"}}	{{$f.Name}} {{$f.GoType}} {{tag $f.Tag}}
{{- end}}
}

// String returns the string representation.
func (s {{.Name}}) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s {{.Name}}) GoString() string {
	return s.String()
}

// Equal reports whether s and other hold the same field values.
func (s *{{.Name}}) Equal(other *{{.Name}}) bool {
	return modelEqual(s, other)
}

// Hash returns a hash of the field values. Equal values hash equally.
func (s *{{.Name}}) Hash() uint64 {
	return modelHash(s)
}
{{- if .Validate}}

// Validate inspects the fields of the type to determine if they are valid.
// A nil value has no fields to check and is valid.
func (s *{{.Name}}) Validate() error {
	if s == nil {
		return nil
	}
	invalidParams := request.ErrInvalidParams{Context: "{{.Name}}"}
{{range .Rules}}{{.}}{{end}}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}
{{- end}}
{{- range .Fields}}{{template "accessors" .}}{{end}}
{{- end}}

{{- define "accessors"}}
{{- if eq .Access "value"}}

// Get{{.Name}} returns the value of {{.Name}}, or the zero value if it is unset.
func (s *{{.Owner}}) Get{{.Name}}() {{.ValueType}} {
	if s == nil || s.{{.Name}} == nil {
		return {{.Zero}}
	}
	return *s.{{.Name}}
}

// Set{{.Name}} sets the {{.Name}} field's value.
func (s *{{.Owner}}) Set{{.Name}}(v {{.ValueType}}) *{{.Owner}} {
	s.{{.Name}} = &v
	return s
}
{{- else if eq .Access "time"}}

// Get{{.Name}} returns the value of {{.Name}}, or the zero time if it is unset.
func (s *{{.Owner}}) Get{{.Name}}() time.Time {
	if s == nil || s.{{.Name}} == nil {
		return time.Time{}
	}
	return s.{{.Name}}.Time
}

// Set{{.Name}} sets the {{.Name}} field's value.
func (s *{{.Owner}}) Set{{.Name}}(v time.Time) *{{.Owner}} {
	s.{{.Name}} = common.NewUnixTime(v)
	return s
}
{{- else}}

// Get{{.Name}} returns the value of {{.Name}}.
func (s *{{.Owner}}) Get{{.Name}}() {{.ValueType}} {
	if s == nil {
		return nil
	}
	return s.{{.Name}}
}

// Set{{.Name}} sets the {{.Name}} field's value.
func (s *{{.Owner}}) Set{{.Name}}(v {{.ValueType}}) *{{.Owner}} {
	s.{{.Name}} = v
	return s
}
{{- end}}
{{- end}}
`
