package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

type describeView struct {
	operationView
	Documentation string              `json:"documentation"`
	Endpoint      string              `json:"endpoint"`
	Fields        []iotsitewise.Field `json:"fields"`
}

func newDescribeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe OPERATION",
		Short: "Show how an operation is addressed and what its request carries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := iotsitewise.LookupOperation(args[0])
			if err != nil {
				return err
			}
			view := describeView{
				operationView: newOperationView(op),
				Documentation: op.Documentation,
				Endpoint:      opts.resolver(cmd.Context()).Endpoint(op) + op.Path,
				Fields:        op.RequestFields(),
			}

			return render(cmd.OutOrStdout(), opts.format(), view, func() [][]string {
				rows := [][]string{
					{"FIELD", "JSON", "TYPE", "LOCATION", "REQUIRED"},
				}
				for _, f := range view.Fields {
					location := f.Location
					if location == "" {
						location = "body"
					}
					rows = append(rows, []string{f.Name, f.JSONName, f.Type, location, yesNo(f.Required)})
				}
				header := [][]string{
					{"OPERATION", view.Name},
					{"METHOD", view.Method},
					{"ENDPOINT", view.Endpoint},
					{"PAGINATED", yesNo(view.Paginated)},
					{"IDEMPOTENT", yesNo(view.Idempotent)},
				}
				out := cmd.OutOrStdout()
				for _, h := range header {
					fmt.Fprintf(out, "%-11s %s\n", h[0], h[1])
				}
				if view.Documentation != "" {
					fmt.Fprintf(out, "\n%s\n\n", view.Documentation)
				}
				return rows
			})
		},
	}
}
