package cli

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/sitewise/internal/common"
	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

// newRouter registers one route per operation, named after it. Routes only
// identify operations, so their handler does nothing.
func newRouter() *mux.Router {
	r := mux.NewRouter()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, op := range iotsitewise.Operations() {
		r.NewRoute().
			Name(op.Name).
			Methods(op.Method).
			Path(op.Path).
			MatcherFunc(hostPrefixMatcher(op.HostPrefix)).
			Handler(noop)
	}
	return r
}

// hostPrefixMatcher accepts requests without a host, to other hosts (such
// as a custom endpoint) and to service hosts carrying the prefix.
func hostPrefixMatcher(prefix string) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		host := r.URL.Hostname()
		if host == "" || !strings.Contains(host, ".iotsitewise.") {
			return true
		}
		return strings.HasPrefix(host, prefix)
	}
}

type resolved struct {
	Operation string              `json:"operation"`
	Labels    map[string]string   `json:"labels,omitempty"`
	Request   iotsitewise.Request `json:"request"`
}

// resolveRequest matches an HTTP method and URL (or bare path) to its
// operation and rebuilds the request members carried in the path and query.
func resolveRequest(method, rawURL string) (*resolved, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	req := &http.Request{Method: strings.ToUpper(method), URL: target, Host: target.Host}

	var match mux.RouteMatch
	if !newRouter().Match(req, &match) || match.MatchErr != nil || match.Route == nil {
		return nil, fmt.Errorf("%w: no operation matches %s %s", iotsitewise.ErrUnknownOperation, req.Method, target.Path)
	}
	op, err := iotsitewise.LookupOperation(match.Route.GetName())
	if err != nil {
		return nil, err
	}

	input := op.NewRequest()
	if err := bindLocations(input, match.Vars, target.Query()); err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}
	return &resolved{Operation: op.Name, Labels: match.Vars, Request: input}, nil
}

// bindLocations sets the members tagged location:"uri" from labels and the
// members tagged location:"querystring" from query.
func bindLocations(req iotsitewise.Request, labels map[string]string, query url.Values) error {
	v := reflect.ValueOf(req).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := sf.Tag.Get("locationName")
		var values []string
		switch sf.Tag.Get("location") {
		case "uri":
			if label, ok := labels[name]; ok {
				values = []string{label}
			}
		case "querystring":
			values = query[name]
		default:
			continue
		}
		if len(values) == 0 {
			continue
		}
		if err := setFromStrings(v.Field(i), values); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func setFromStrings(field reflect.Value, values []string) error {
	t := field.Type()
	if t.Kind() == reflect.Slice {
		slice := reflect.MakeSlice(t, 0, len(values))
		for _, s := range values {
			elem := reflect.New(t.Elem()).Elem()
			if err := setScalar(elem, s); err != nil {
				return err
			}
			slice = reflect.Append(slice, elem)
		}
		field.Set(slice)
		return nil
	}
	return setScalar(field, values[0])
}

func setScalar(field reflect.Value, s string) error {
	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		if err := setScalar(ptr.Elem(), s); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	if field.Type() == unixTimeType {
		seconds, err := strconv.ParseFloat(s, 64)
		if err != nil {
			parsed, perr := time.Parse(time.RFC3339, s)
			if perr != nil {
				return fmt.Errorf("invalid timestamp %q", s)
			}
			field.Set(reflect.ValueOf(common.UnixTime{Time: parsed}))
			return nil
		}
		field.Set(reflect.ValueOf(common.UnixTime{Time: time.UnixMilli(int64(seconds * 1000))}))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", s)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported member type %s", field.Type())
	}
	return nil
}

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "resolve METHOD URL",
		Short: "Identify the operation of a captured HTTP request",
		Long: `Resolve matches an HTTP method and URL, or a bare path with query string,
to the operation it invokes, and shows the request members carried in the
path and query.`,
		Example: `  sitewise resolve GET 'https://api.iotsitewise.us-east-1.amazonaws.com/assets?maxResults=10'
  sitewise resolve DELETE '/tags?resourceArn=arn:aws:iotsitewise:us-east-1:123456789012:asset/ID&tagKeys=site'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := resolveRequest(args[0], args[1])
			if err != nil {
				return err
			}

			var problems []problem
			if check {
				if err := res.Request.Validate(); err != nil {
					problems = problemsOf(err)
				}
			}

			if opts.format() == "table" {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Operation: %s\n", res.Operation)
				for _, name := range sortedKeys(res.Labels) {
					fmt.Fprintf(out, "  %s = %s\n", name, res.Labels[name])
				}
				fmt.Fprintf(out, "Request: %s\n", res.Request.String())
				for _, p := range problems {
					fmt.Fprintf(out, "  - %s\n", p.Message)
				}
				return nil
			}
			return render(cmd.OutOrStdout(), opts.format(), res, nil)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Also validate the members found in the path and query")
	return cmd
}
