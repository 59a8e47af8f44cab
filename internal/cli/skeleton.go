package cli

import (
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/sitewise/internal/common"
	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

var unixTimeType = reflect.TypeOf(common.UnixTime{})

// skeletonOf builds a JSON-shaped placeholder for a model type. Strings are
// empty, enums take their first value and nested structures are expanded.
func skeletonOf(t reflect.Type, requiredOnly bool) any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == unixTimeType {
		return 0
	}
	switch t.Kind() {
	case reflect.Struct:
		out := map[string]any{}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if requiredOnly && f.Tag.Get("required") != "true" {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				continue
			}
			out[name] = skeletonOf(f.Type, requiredOnly)
		}
		return out
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return ""
		}
		return []any{skeletonOf(t.Elem(), requiredOnly)}
	case reflect.Map:
		return map[string]any{"": skeletonOf(t.Elem(), requiredOnly)}
	case reflect.String:
		if values := enumValues(t); len(values) > 0 {
			return values[0]
		}
		return ""
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return 0
	default:
		return nil
	}
}

// enumValues returns the result of the type's Values method, if it has one.
func enumValues(t reflect.Type) []string {
	m := reflect.New(t).Elem().MethodByName("Values")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return nil
	}
	out := m.Call(nil)[0]
	if out.Kind() != reflect.Slice {
		return nil
	}
	values := make([]string, out.Len())
	for i := range values {
		values[i] = out.Index(i).String()
	}
	return values
}

func newSkeletonCmd(opts *globalOptions) *cobra.Command {
	var (
		fillToken    bool
		requiredOnly bool
	)

	cmd := &cobra.Command{
		Use:   "skeleton OPERATION",
		Short: "Print a request payload skeleton for an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := iotsitewise.LookupOperation(args[0])
			if err != nil {
				return err
			}

			req := op.NewRequest()
			skeleton := skeletonOf(reflect.TypeOf(req), requiredOnly).(map[string]any)
			if fillToken && op.Idempotent {
				skeleton["clientToken"] = iotsitewise.EnsureClientToken(req)
			}

			format := opts.format()
			if format == "table" {
				format = "json"
			}
			return render(cmd.OutOrStdout(), format, skeleton, nil)
		},
	}

	cmd.Flags().BoolVar(&fillToken, "fill-token", false, "Fill clientToken with a new UUID for idempotent operations")
	cmd.Flags().BoolVar(&requiredOnly, "required-only", false, "Only include required members")
	return cmd
}
