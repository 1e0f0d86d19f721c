package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/plfhelper"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := plfhelper.ObservationFilter{Limit: c.Limit}
	if c.Session != "" {
		filter.Session = &c.Session
	}
	if c.Kind != "" {
		kind := plfhelper.PageKind(c.Kind)
		if kind != plfhelper.PageMarket && kind != plfhelper.PageTownHall {
			err := plfhelper.Errorf(plfhelper.EINVALID, "unknown page kind %q (market, townhall)", c.Kind)
			fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
			return err
		}
		filter.Kind = &kind
	}

	observations, err := deps.Observations.FindObservations(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		return err
	}

	if len(observations) == 0 {
		fmt.Fprintln(deps.Stdout, "No observations found. Use 'plfhelper watch' to record some.")
		return nil
	}

	for _, o := range observations {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %-8s  %s\n",
			o.ObservedAt.Local().Format("2006-01-02 15:04:05"), o.Session, o.Locale, o.Kind, o.SnapshotHash)
		if c.Values {
			fmt.Fprintf(deps.Stdout, "    %s\n", formatVector(o.Values))
		}
	}

	return nil
}

func formatVector(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}
