package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/sitewise/service/iotsitewise"
)

type timeView struct {
	Time          string `json:"time"`
	TimeInSeconds int64  `json:"timeInSeconds"`
	OffsetInNanos int32  `json:"offsetInNanos"`
}

func newTimeView(t *iotsitewise.TimeInNanos) timeView {
	return timeView{
		Time:          t.Time().Format(time.RFC3339Nano),
		TimeInSeconds: t.GetTimeInSeconds(),
		OffsetInNanos: t.GetOffsetInNanos(),
	}
}

func (v timeView) rows() [][]string {
	return [][]string{
		{"TIME", "SECONDS", "NANOS"},
		{v.Time, strconv.FormatInt(v.TimeInSeconds, 10), strconv.FormatInt(int64(v.OffsetInNanos), 10)},
	}
}

func newTimeCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Convert between RFC 3339 times and TimeInNanos",
	}
	cmd.AddCommand(newTimeToNanosCmd(opts), newTimeFromNanosCmd(opts))
	return cmd
}

func newTimeToNanosCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "to-nanos TIME",
		Short:   "Split an RFC 3339 time (or \"now\") into seconds and nanoseconds",
		Example: `  sitewise time to-nanos 2020-03-01T12:00:00.5Z`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now()
			if args[0] != "now" {
				var err error
				if t, err = time.Parse(time.RFC3339Nano, args[0]); err != nil {
					return fmt.Errorf("invalid time %q: %w", args[0], err)
				}
			}
			ts := iotsitewise.NewTimeInNanos(t)
			if err := ts.Validate(); err != nil {
				return err
			}
			view := newTimeView(ts)
			return render(cmd.OutOrStdout(), opts.format(), view, view.rows)
		},
	}
}

func newTimeFromNanosCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "from-nanos SECONDS [NANOS]",
		Short:   "Join epoch seconds and a nanosecond offset into an RFC 3339 time",
		Example: `  sitewise time from-nanos 1583064000 500000000`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			var nanos int64
			if len(args) == 2 {
				if nanos, err = strconv.ParseInt(args[1], 10, 32); err != nil {
					return fmt.Errorf("invalid nanoseconds %q: %w", args[1], err)
				}
			}

			ts := (&iotsitewise.TimeInNanos{}).
				SetTimeInSeconds(seconds).
				SetOffsetInNanos(int32(nanos))
			if err := ts.Validate(); err != nil {
				return err
			}
			view := newTimeView(ts)
			return render(cmd.OutOrStdout(), opts.format(), view, view.rows)
		},
	}
}
