package commands

import (
	"errors"
	"fmt"

	"assettracker/internal/editor"
	"assettracker/pkg/assettypes"
)

// Delete implements "delete".
func (c *Commands) Delete(string, []string) bool {
	id, err := editor.ReadID(c.deps.Out, c.deps.In, "Enter the id of the asset you wish to delete.")
	if err != nil {
		c.say("Aborted.")
		return false
	}

	if _, err := c.deps.Assets.Get(id); err != nil {
		if errors.Is(err, assettypes.ErrNotFound) {
			c.warn("The provided id does not exist in the system.")
		} else {
			c.fail("Error: could not load asset", err)
		}
		return false
	}

	if err := c.deps.Assets.Delete(id); err != nil {
		c.fail("Error: could not delete asset", err)
		return false
	}

	c.logger.Info("Asset deleted", "asset", id)
	c.deps.Out.PutMessage(fmt.Sprintf("Asset %d deleted.", id), assettypes.Success, true)
	return true
}
