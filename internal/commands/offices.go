package commands

import "fmt"

// OpenOffices implements "offices": it enters the offices submenu.
func (c *Commands) OpenOffices(string, []string) bool {
	menu, err := c.OfficesMenu()
	if err != nil {
		c.fail("Error: could not open offices", err)
		return false
	}
	if err := c.deps.Nav.PushContext(menu); err != nil {
		c.fail("Error: could not open offices", err)
		return false
	}
	c.say("Offices. Type 'help' to see available commands or 'back' to return.")
	return true
}

// ListOffices prints every office with its city and currency culture.
func (c *Commands) ListOffices(string, []string) bool {
	offices, err := c.deps.Offices.GetAll()
	if err != nil {
		c.fail("Error: could not load offices", err)
		return false
	}
	if len(offices) == 0 {
		c.warn("No offices in database. Run 'assettracker seed' to load sample data.")
		return true
	}

	for _, o := range offices {
		c.say(fmt.Sprintf("%-4d%-16s%-16s%s", o.ID, o.Location, o.String(), o.Culture))
	}
	return true
}

// Back implements "back": it returns to the previous menu.
func (c *Commands) Back(string, []string) bool {
	c.deps.Nav.PopContext()
	return true
}
