package cli

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/sitewise/internal/logging"
	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

// ErrValidationFailed is returned when a payload breaks the model constraints.
var ErrValidationFailed = errors.New("validation failed")

type problem struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type validateView struct {
	Operation string    `json:"operation"`
	Valid     bool      `json:"valid"`
	Problems  []problem `json:"problems"`
}

// problemsOf flattens a Validate error into one entry per field.
func problemsOf(err error) []problem {
	var invalid request.ErrInvalidParams
	if !errors.As(err, &invalid) {
		return []problem{{Code: "Error", Message: err.Error()}}
	}
	var problems []problem
	for _, e := range invalid.OrigErrs() {
		var p request.ErrInvalidParam
		if errors.As(e, &p) {
			problems = append(problems, problem{Field: p.Field(), Code: p.Code(), Message: p.Message()})
			continue
		}
		problems = append(problems, problem{Code: "Error", Message: e.Error()})
	}
	return problems
}

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate OPERATION [FILE]",
		Short: "Validate a request payload against the model constraints",
		Long: `Validate decodes a JSON or YAML request payload for OPERATION and checks
it against the constraints of the model: required members, lengths, ranges
and patterns. The payload is read from FILE, or from stdin when FILE is
omitted or "-". Limits that only the service enforces are not checked.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := iotsitewise.LookupOperation(args[0])
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			data, err := readPayload(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			req := op.NewRequest()
			if err := decodePayload(data, req); err != nil {
				return err
			}
			logging.Operation(op.Name).Debug("validating request", "request", req.String())

			view := validateView{Operation: op.Name, Valid: true, Problems: []problem{}}
			if err := req.Validate(); err != nil {
				view.Valid = false
				view.Problems = problemsOf(err)
			}

			if opts.format() == "table" {
				out := cmd.OutOrStdout()
				if view.Valid {
					fmt.Fprintf(out, "%sRequest is valid\n", op.Name)
				} else {
					fmt.Fprintf(out, "%sRequest has %d problem(s):\n", op.Name, len(view.Problems))
					for _, p := range view.Problems {
						fmt.Fprintf(out, "  - %s\n", p.Message)
					}
				}
			} else if err := render(cmd.OutOrStdout(), opts.format(), view, nil); err != nil {
				return err
			}

			if !view.Valid {
				return fmt.Errorf("%w: %d problem(s) in %sRequest", ErrValidationFailed, len(view.Problems), op.Name)
			}
			return nil
		},
	}
}
