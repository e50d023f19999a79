package commands

import (
	"errors"
	"fmt"

	"assettracker/internal/lister"
	"assettracker/pkg/assettypes"
)

// List implements "list [filter]".
func (c *Commands) List(_ string, args []string) bool {
	pred, err := lister.ParseFilter(args, c.deps.Offices, c.deps.Now())
	if errors.Is(err, lister.ErrUnknownFilter) {
		c.warn(lister.FilterUsage)
		return false
	}
	if errors.Is(err, assettypes.ErrNotFound) {
		c.warn(fmt.Sprintf("There is no office in %s.", args[len(args)-1]))
		return false
	}
	if err != nil {
		c.fail("Error: could not build filter", err)
		return false
	}
	return c.lister.List(c.deps.Assets, pred)
}

// Update implements "update".
func (c *Commands) Update(string, []string) bool {
	return c.editor.Run()
}
