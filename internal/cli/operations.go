package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

// operationView is the printable form of a catalog entry.
type operationView struct {
	Name       string `json:"name"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	HostPrefix string `json:"hostPrefix"`
	Group      string `json:"group"`
	Paginated  bool   `json:"paginated"`
	Idempotent bool   `json:"idempotent"`
}

func newOperationView(op *iotsitewise.Operation) operationView {
	return operationView{
		Name:       op.Name,
		Method:     op.Method,
		Path:       op.Path,
		HostPrefix: op.HostPrefix,
		Group:      op.Group(),
		Paginated:  op.Paginated,
		Idempotent: op.Idempotent,
	}
}

func newOperationsCmd(opts *globalOptions) *cobra.Command {
	var (
		group     string
		host      string
		paginated bool
	)

	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"ops"},
		Short:   "List the operations of the service",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host = strings.TrimSuffix(host, ".")
			var views []operationView
			for _, op := range iotsitewise.Operations() {
				if group != "" && op.Group() != group {
					continue
				}
				if host != "" && op.HostPrefix != host+"." {
					continue
				}
				if paginated && !op.Paginated {
					continue
				}
				views = append(views, newOperationView(op))
			}

			if len(views) == 0 && opts.format() == "table" {
				fmt.Fprintln(cmd.OutOrStdout(), "No operations match the given filters")
				return nil
			}

			return render(cmd.OutOrStdout(), opts.format(), views, func() [][]string {
				rows := [][]string{{"NAME", "METHOD", "PATH", "HOST", "PAGINATED", "IDEMPOTENT"}}
				for _, v := range views {
					rows = append(rows, []string{v.Name, v.Method, v.Path, v.HostPrefix, yesNo(v.Paginated), yesNo(v.Idempotent)})
				}
				return rows
			})
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Only list operations under a path group (e.g. assets, portals)")
	cmd.Flags().StringVar(&host, "host", "", "Only list operations sent to a host prefix: api, monitor, data")
	cmd.Flags().BoolVar(&paginated, "paginated", false, "Only list paginated operations")
	return cmd
}
