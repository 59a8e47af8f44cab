package generator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nandemo-ya/sitewise/cmd/codegen/parser"
)

type kind int

const (
	kindPrim kind = iota
	kindEnum
	kindTime
	kindBlob
	kindStruct
	kindList
	kindMap
)

var preludeTypes = map[string]string{
	"smithy.api#String":  "string",
	"smithy.api#Integer": "int32",
	"smithy.api#Long":    "int64",
	"smithy.api#Double":  "float64",
	"smithy.api#Float":   "float32",
	"smithy.api#Boolean": "bool",
}

var primitiveTypes = map[string]string{
	"string":  "string",
	"integer": "int32",
	"long":    "int64",
	"double":  "float64",
	"float":   "float32",
	"boolean": "bool",
}

var zeroValues = map[string]string{
	"string":  `""`,
	"int32":   "0",
	"int64":   "0",
	"float64": "0",
	"float32": "0",
	"bool":    "false",
}

// model indexes a Smithy API for generation.
type model struct {
	api        *parser.SmithyAPI
	operations []string
	inputOf    map[string]string
	outputOf   map[string]string

	patterns  map[string]string
	validates map[string]bool
}

func newModel(api *parser.SmithyAPI) (*model, error) {
	service, _, err := api.GetServiceShape()
	if err != nil {
		return nil, err
	}

	m := &model{
		api:       api,
		inputOf:   make(map[string]string),
		outputOf:  make(map[string]string),
		patterns:  make(map[string]string),
		validates: make(map[string]bool),
	}
	for _, ref := range service.Operations {
		op, ok := api.Shapes[ref.Target]
		if !ok || op.Type != "operation" {
			return nil, fmt.Errorf("operation %s not found", ref.Target)
		}
		if op.Input == nil || op.Output == nil {
			return nil, fmt.Errorf("operation %s needs an input and an output", ref.Target)
		}
		name := parser.GetShapeName(ref.Target)
		m.operations = append(m.operations, ref.Target)
		m.inputOf[op.Input.Target] = name
		m.outputOf[op.Output.Target] = name
	}
	sort.Slice(m.operations, func(i, j int) bool {
		return parser.GetShapeName(m.operations[i]) < parser.GetShapeName(m.operations[j])
	})

	if err := m.check(); err != nil {
		return nil, err
	}
	return m, nil
}

// check rejects member targets the generator has no Go mapping for.
func (m *model) check() error {
	for id, shape := range m.api.Shapes {
		var targets []string
		switch shape.Type {
		case "structure":
			for _, mem := range shape.Members {
				targets = append(targets, mem.Target)
			}
		case "list", "set":
			if shape.Member == nil {
				return fmt.Errorf("%s: list without member", id)
			}
			targets = append(targets, shape.Member.Target)
		case "map":
			if shape.Key == nil || shape.Value == nil {
				return fmt.Errorf("%s: map without key or value", id)
			}
			targets = append(targets, shape.Key.Target, shape.Value.Target)
		}
		for _, t := range targets {
			if _, ok := preludeTypes[t]; ok {
				continue
			}
			target, ok := m.api.Shapes[t]
			if !ok {
				return fmt.Errorf("%s: unknown target %s", id, t)
			}
			switch target.Type {
			case "string", "integer", "long", "double", "float", "boolean",
				"enum", "timestamp", "blob", "structure", "list", "set", "map":
			default:
				return fmt.Errorf("%s: unsupported target type %q of %s", id, target.Type, t)
			}
		}
	}
	return nil
}

func (m *model) shape(id string) *parser.SmithyShape {
	if s, ok := m.api.Shapes[id]; ok {
		return s
	}
	return &parser.SmithyShape{}
}

// goName is the Go type name of a shape. Operation outputs named
// XResponse become XResult.
func (m *model) goName(id string) string {
	name := parser.GetShapeName(id)
	if _, ok := m.outputOf[id]; ok && strings.HasSuffix(name, "Response") {
		return strings.TrimSuffix(name, "Response") + "Result"
	}
	return name
}

func (m *model) kindOf(target string) (kind, string) {
	if t, ok := preludeTypes[target]; ok {
		return kindPrim, t
	}
	s := m.shape(target)
	if t, ok := primitiveTypes[s.Type]; ok {
		return kindPrim, t
	}
	switch s.Type {
	case "enum":
		return kindEnum, m.goName(target)
	case "timestamp":
		return kindTime, "common.UnixTime"
	case "blob":
		return kindBlob, "[]byte"
	case "structure":
		return kindStruct, m.goName(target)
	case "list", "set":
		return kindList, ""
	case "map":
		return kindMap, ""
	}
	return kindPrim, "string"
}

func (m *model) elemType(target string) string {
	k, name := m.kindOf(target)
	switch k {
	case kindStruct:
		return "*" + name
	case kindTime:
		return "*common.UnixTime"
	case kindList, kindMap:
		return m.fieldType(target)
	}
	return name
}

// fieldType is the Go type of a structure member. Scalars, enums,
// timestamps and structures are pointers so that unset differs from zero.
func (m *model) fieldType(target string) string {
	k, name := m.kindOf(target)
	switch k {
	case kindPrim, kindEnum, kindStruct, kindTime:
		return "*" + name
	case kindBlob:
		return name
	case kindList:
		return "[]" + m.elemType(m.shape(target).Member.Target)
	case kindMap:
		s := m.shape(target)
		return "map[" + m.elemType(s.Key.Target) + "]" + m.elemType(s.Value.Target)
	}
	return name
}

// sortedMembers returns the member names of a structure in lexical order.
func sortedMembers(s *parser.SmithyShape) []string {
	names := make([]string, 0, len(s.Members))
	for name := range s.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *model) structs() []string {
	var ids []string
	for id, s := range m.api.Shapes {
		if s.Type == "structure" {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return m.goName(ids[i]) < m.goName(ids[j]) })
	return ids
}

func (m *model) enums() []string {
	var ids []string
	for id, s := range m.api.Shapes {
		if s.IsEnum() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return m.goName(ids[i]) < m.goName(ids[j]) })
	return ids
}

// hasValidate reports whether a structure gets a Validate method: every
// operation input does, outputs never do, and other structures do when a
// member carries a constraint.
func (m *model) hasValidate(id string) bool {
	if _, ok := m.inputOf[id]; ok {
		return true
	}
	if _, ok := m.outputOf[id]; ok {
		return false
	}
	if v, ok := m.validates[id]; ok {
		return v
	}
	m.validates[id] = false
	s := m.shape(id)
	has := false
	for _, name := range sortedMembers(s) {
		if len(m.rules(name, s.Members[name])) > 0 {
			has = true
		}
	}
	m.validates[id] = has
	return has
}

var unicodeEscape = regexp.MustCompile(`\\u([0-9a-fA-F]{4})`)

// goPattern rewrites \uXXXX escapes, which RE2 lacks, as \x{XXXX}.
func goPattern(p string) string {
	return unicodeEscape.ReplaceAllString(p, `\x{$1}`)
}

func (m *model) patternVar(target string, pattern string) string {
	name := parser.GetShapeName(target)
	m.patterns[name] = goPattern(pattern)
	return "pattern" + name
}

func snippet(code string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(code)
}

// rules returns the statements of Validate that check one member.
func (m *model) rules(name string, mem *parser.SmithyMember) []string {
	f := exportName(name)
	k, goType := m.kindOf(mem.Target)
	target := m.shape(mem.Target)
	length, _ := target.Length()
	rng, _ := target.Range()

	var out []string
	add := func(code string, pairs ...string) {
		out = append(out, snippet(code, append([]string{"$F", f}, pairs...)...))
	}

	if mem.IsRequired() {
		add("\tif s.$F == nil {\n\t\tinvalidParams.Add(request.NewErrParamRequired(\"$F\"))\n\t}\n")
	}

	switch {
	case k == kindPrim && goType == "string":
		if length.Min != nil && *length.Min > 0 {
			add("\tif s.$F != nil && utf8.RuneCountInString(*s.$F) < $N {\n\t\tinvalidParams.Add(request.NewErrParamMinLen(\"$F\", $N))\n\t}\n",
				"$N", fmt.Sprint(*length.Min))
		}
		if length.Max != nil {
			add("\tif s.$F != nil && utf8.RuneCountInString(*s.$F) > $N {\n\t\tinvalidParams.Add(request.NewErrParamMaxLen(\"$F\", $N, *s.$F))\n\t}\n",
				"$N", fmt.Sprint(*length.Max))
		}
		if p, ok := target.Pattern(); ok {
			pv := m.patternVar(mem.Target, p)
			add("\tif s.$F != nil && !$P.MatchString(*s.$F) {\n\t\tinvalidParams.Add(request.NewErrParamFormat(\"$F\", $P.String(), *s.$F))\n\t}\n",
				"$P", pv)
		}
	case k == kindPrim && (goType == "int32" || goType == "int64"):
		if rng.Min != nil {
			add("\tif s.$F != nil && *s.$F < $N {\n\t\tinvalidParams.Add(request.NewErrParamMinValue(\"$F\", $N))\n\t}\n",
				"$N", fmt.Sprint(*rng.Min))
		}
		if rng.Max != nil {
			conv := "int64(*s." + f + ")"
			if goType == "int64" {
				conv = "*s." + f
			}
			add("\tif s.$F != nil && *s.$F > $N {\n\t\tinvalidParams.Add(newErrParamMaxValue(\"$F\", $N, $C))\n\t}\n",
				"$N", fmt.Sprint(*rng.Max), "$C", conv)
		}
	case k == kindBlob:
		if length.Min != nil && *length.Min > 0 {
			add("\tif s.$F != nil && len(s.$F) < $N {\n\t\tinvalidParams.Add(request.NewErrParamMinLen(\"$F\", $N))\n\t}\n",
				"$N", fmt.Sprint(*length.Min))
		}
	case k == kindList:
		if length.Min != nil && *length.Min > 0 {
			add("\tif s.$F != nil && len(s.$F) < $N {\n\t\tinvalidParams.Add(request.NewErrParamMinLen(\"$F\", $N))\n\t}\n",
				"$N", fmt.Sprint(*length.Min))
		}
		elem := target.Member.Target
		if ek, _ := m.kindOf(elem); ek == kindStruct && m.hasValidate(elem) {
			add("\tif s.$F != nil {\n\t\tfor i, v := range s.$F {\n\t\t\tif v == nil {\n\t\t\t\tcontinue\n\t\t\t}\n\t\t\tif err := v.Validate(); err != nil {\n\t\t\t\tinvalidParams.AddNested(fmt.Sprintf(\"%s[%v]\", \"$F\", i), err.(request.ErrInvalidParams))\n\t\t\t}\n\t\t}\n\t}\n")
		}
	case k == kindStruct:
		if m.hasValidate(mem.Target) {
			add("\tif s.$F != nil {\n\t\tif err := s.$F.Validate(); err != nil {\n\t\t\tinvalidParams.AddNested(\"$F\", err.(request.ErrInvalidParams))\n\t\t}\n\t}\n")
		}
	}
	return out
}

// exportName converts a member name to an exported Go field name
func exportName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
