package generator

import (
	"fmt"
	"net/http"
	"text/template"

	"github.com/nandemo-ya/sitewise/cmd/codegen/parser"
)

// OperationInfo describes one entry of the generated operation catalog.
type OperationInfo struct {
	Name          string
	Documentation string
	Method        string
	Path          string
	HostPrefix    string
	Paginated     bool
	Idempotent    bool
	Request       string
	Result        string
}

var methodConsts = map[string]string{
	http.MethodGet:    "http.MethodGet",
	http.MethodPost:   "http.MethodPost",
	http.MethodPut:    "http.MethodPut",
	http.MethodPatch:  "http.MethodPatch",
	http.MethodDelete: "http.MethodDelete",
	http.MethodHead:   "http.MethodHead",
}

func (m *model) operationInfo(id string) (OperationInfo, error) {
	op := m.shape(id)
	binding, ok := op.HTTP()
	if !ok {
		return OperationInfo{}, fmt.Errorf("operation %s has no http trait", id)
	}
	method, ok := methodConsts[binding.Method]
	if !ok {
		return OperationInfo{}, fmt.Errorf("operation %s: unsupported method %q", id, binding.Method)
	}

	idempotent := false
	for _, mem := range m.shape(op.Input.Target).Members {
		if mem.IsIdempotencyToken() {
			idempotent = true
		}
	}

	return OperationInfo{
		Name:          parser.GetShapeName(id),
		Documentation: op.Documentation(),
		Method:        method,
		Path:          binding.URI,
		HostPrefix:    op.HostPrefix(),
		Paginated:     op.IsPaginated(),
		Idempotent:    idempotent,
		Request:       m.goName(op.Input.Target),
		Result:        m.goName(op.Output.Target),
	}, nil
}

func (g *Generator) renderOperations(m *model) ([]byte, error) {
	var ops []OperationInfo
	for _, id := range m.operations {
		info, err := m.operationInfo(id)
		if err != nil {
			return nil, err
		}
		ops = append(ops, info)
	}

	data := struct {
		Package    string
		Operations []OperationInfo
	}{
		Package:    g.packageName,
		Operations: ops,
	}

	tmpl := template.Must(template.New("operations").Funcs(funcs).Parse(operationsTemplate))
	return g.executeTemplate(tmpl, data)
}

const operationsTemplate = header + `package {{.Package}}

import "net/http"

// operations is the catalog of every operation in the service model,
// ordered by name.
var operations = []*Operation{
{{- range .Operations}}
	{
		Name: {{quote .Name}},
		Documentation: {{quote .Documentation}},
		Method: {{.Method}},
		Path: {{quote .Path}},
		HostPrefix: {{quote .HostPrefix}},
		Paginated: {{.Paginated}},
		Idempotent: {{.Idempotent}},
		newRequest: func() Request { return &{{.Request}}{} },
		newResult: func() any { return &{{.Result}}{} },
	},
{{- end}}
}
`
