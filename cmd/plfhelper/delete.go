package main

import (
	"fmt"

	"github.com/fwojciec/plfhelper"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return plfhelper.Errorf(plfhelper.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Observations.DeleteObservationsBySession(deps.Ctx, c.Session); err != nil {
		if plfhelper.ErrorCode(err) == plfhelper.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: session %q not found. Use 'plfhelper history' to see recorded sessions.\n", c.Session)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", plfhelper.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted session %q\n", c.Session)
	return nil
}
