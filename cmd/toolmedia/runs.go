package main

import (
	"fmt"

	"github.com/fwojciec/toolmedia"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := toolmedia.RunFilter{Limit: c.Limit}
	if c.Site != "" {
		site := normalizeURL(c.Site)
		filter.SiteURL = &site
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'toolmedia discover --save' to record one.")
		return nil
	}

	for _, r := range runs {
		name := r.ToolName
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %d found\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), name, r.SiteURL, r.Result.TotalFound)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if toolmedia.ErrorCode(err) == toolmedia.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'toolmedia runs' to see saved runs.\n", c.ID)
			return err
		}
		printError(deps.Stderr, err)
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, newMediaOutput(run.SiteURL, run.ID, run.Result, c.All))
	}
	fmt.Fprintf(deps.Stdout, "Run %s (%s)\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04"))
	printMedia(deps.Stdout, run.SiteURL, run.Result, c.All, c.Verbose)
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return toolmedia.Errorf(toolmedia.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if toolmedia.ErrorCode(err) == toolmedia.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'toolmedia runs' to see saved runs.\n", c.ID)
			return err
		}
		printError(deps.Stderr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
