package main

import "fmt"

// Run executes the profile command.
func (c *ProfileCmd) Run(deps *Dependencies) error {
	profile, err := deps.Engine.DescribeTool(deps.Ctx, normalizeURL(c.URL))
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, profile)
	}

	name := profile.Name
	if name == "" {
		name = profile.URL
	}
	fmt.Fprintln(deps.Stdout, name)
	if profile.Description != "" {
		fmt.Fprintln(deps.Stdout, profile.Description)
	}
	if profile.Overview != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", profile.Overview)
	}
	return nil
}
