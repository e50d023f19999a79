// Package commands builds the AssetTracker menus and their command handlers.
package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"assettracker/internal/cli"
	"assettracker/internal/editor"
	"assettracker/internal/lister"
	"assettracker/internal/logger"
	"assettracker/pkg/assettypes"
)

// WelcomeMessage is shown when the shell starts.
const WelcomeMessage = "Welcome to AssetTracker. Type 'help' to see available commands."

// Navigator switches between menus.
type Navigator interface {
	PushContext(c *cli.Context) error
	PopContext()
}

// Deps are the collaborators shared by all commands.
type Deps struct {
	Out     assettypes.OutputSink
	In      assettypes.InputSource
	Nav     Navigator
	Assets  assettypes.AssetRepository
	Offices assettypes.OfficeRepository
	Prices  lister.PriceFormatter

	// PageSize is the number of rows per listing page; zero means the lister default.
	PageSize int
	// Now is the clock; nil means time.Now.
	Now      func() time.Time
	// Markdown renders report text for the terminal; nil prints it as plain lines.
	Markdown func(md string) string
}

// Commands holds the handlers for the main and offices menus.
type Commands struct {
	deps   Deps
	lister *lister.Lister
	editor *editor.Editor
	logger *log.Logger
}

// New creates the command set.
func New(deps Deps) *Commands {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Commands{
		deps: deps,
		lister: lister.New(deps.Out, deps.In, deps.Offices, deps.Prices,
			lister.WithPageSize(deps.PageSize), lister.WithClock(deps.Now)),
		editor: editor.New(deps.Out, deps.In, deps.Assets, deps.Offices, deps.Now),
		logger: logger.NewStyledLogger("Commands"),
	}
}

// MainMenu builds the root context.
func (c *Commands) MainMenu() (*cli.Context, error) {
	menu := cli.NewContext("main", cli.WithClearMessage(WelcomeMessage))
	return menu, register(menu, []entry{
		{"add", c.Add},
		{"list", c.List},
		{"update", c.Update},
		{"delete", c.Delete},
		{"reports", c.Reports},
		{"offices", c.OpenOffices},
	})
}

// OfficesMenu builds the offices submenu.
func (c *Commands) OfficesMenu() (*cli.Context, error) {
	menu := cli.NewContext("offices",
		cli.WithPromptSymbol("offices -> "),
		cli.WithClearMessage("Offices. Type 'back' to return to the main menu."),
	)
	return menu, register(menu, []entry{
		{"list", c.ListOffices},
		{"back", c.Back},
	})
}

type entry struct {
	name    string
	handler cli.CommandHandler
}

func register(menu *cli.Context, entries []entry) error {
	for _, e := range entries {
		if err := menu.AddCommand(e.name, e.handler); err != nil {
			return fmt.Errorf("failed to register %s: %w", e.name, err)
		}
	}
	return nil
}

func (c *Commands) say(text string) {
	c.deps.Out.PutMessage(text, assettypes.Neutral, true)
}

func (c *Commands) warn(text string) {
	c.deps.Out.PutMessage(text, assettypes.Warning, true)
}

func (c *Commands) fail(text string, err error) {
	c.logger.Error(text, "error", err)
	c.deps.Out.PutMessage(fmt.Sprintf("%s: %v", text, err), assettypes.Danger, true)
}
