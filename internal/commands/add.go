package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"assettracker/pkg/assettypes"
)

const addUsage = "Usage: 'add computer' or 'add cellphone'."

// variantPrompts lists the parameters collected for each variant.
var variantPrompts = map[assettypes.Kind][]struct {
	key    string
	prompt string
}{
	assettypes.KindComputer: {
		{"OS", "Please enter the OS of the computer."},
		{"RAM", "Please enter the amount of RAM in the computer."},
		{"Processor", "Please enter the processor."},
	},
	assettypes.KindCellphone: {
		{"PhoneOperator", "Please enter the name of the phone operator."},
		{"PhoneNumber", "Please enter the phone number."},
	},
}

// Add implements "add computer" and "add cellphone".
func (c *Commands) Add(_ string, args []string) bool {
	if len(args) != 1 {
		c.warn(addUsage)
		return false
	}
	kind, err := assettypes.ParseKind(args[0])
	if err != nil {
		c.warn(addUsage)
		return false
	}

	params, err := c.collectAsset(kind)
	if err != nil {
		if inputEnded(err) {
			c.say("Aborted.")
		} else {
			c.fail("Error: could not add asset", err)
		}
		return false
	}

	id, err := c.deps.Assets.AddFromParams(params)
	if err != nil {
		c.fail("Error: could not add asset", err)
		return false
	}

	c.logger.Info("Asset added", "asset", id, "kind", kind)
	c.deps.Out.PutMessage("Asset added to the system successfully.", assettypes.Success, true)
	return true
}

func (c *Commands) collectAsset(kind assettypes.Kind) (map[string]string, error) {
	params := map[string]string{"Type": string(kind)}

	office, err := c.askOffice()
	if err != nil {
		return nil, err
	}
	c.say(fmt.Sprintf("Location set: %s.", office))
	params["OfficeID"] = fmt.Sprint(office.ID)

	purchase, err := ask(c, "Enter date of purchase. The date should be in local time.", pastDate(c.deps.Now()))
	if err != nil {
		return nil, err
	}
	expiry := purchase.AddDate(3, 0, 0)
	c.say(fmt.Sprintf("The expiry date has been calculated to: %s (local time).", expiry.Format("2006-01-02")))
	params["PurchaseDate"] = assettypes.FormatDate(purchase)
	params["ExpiryDate"] = assettypes.FormatDate(expiry)

	p, err := ask(c, "Enter purchase price of asset, in USD.", price)
	if err != nil {
		return nil, err
	}
	params["Price"] = assettypes.FormatValue(p)

	params["ModelName"], err = ask(c, "Enter model name.", nonBlank("Name is blank. Please enter a valid model name."))
	if err != nil {
		return nil, err
	}

	for _, field := range variantPrompts[kind] {
		params[field.key], err = ask(c, field.prompt, nonBlank("Value cannot be blank."))
		if err != nil {
			return nil, err
		}
	}
	return params, nil
}

// askOffice reads country names until one matches an office. On a miss the
// known countries are listed, closest match first.
func (c *Commands) askOffice() (*assettypes.Office, error) {
	c.say("In which country is the office located?")
	for {
		line, err := c.deps.In.ReadEditableLineWithDefault("")
		if err != nil {
			return nil, err
		}

		office, err := c.deps.Offices.GetByName(strings.TrimSpace(line))
		if err == nil {
			return office, nil
		}
		if !errors.Is(err, assettypes.ErrNotFound) {
			return nil, err
		}

		c.deps.Out.PutMessage("Unknown country, please try again.", assettypes.Danger, true)
		options, err := c.officeOptions(strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		c.say("Available options: " + strings.Join(options, ", "))
	}
}

// officeOptions returns every office country, fuzzy matches of typed first.
func (c *Commands) officeOptions(typed string) ([]string, error) {
	offices, err := c.deps.Offices.GetAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(offices))
	for _, o := range offices {
		names = append(names, o.Location)
	}
	if typed == "" {
		return names, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(typed, names)
	sort.Sort(ranks)

	ordered := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, r := range ranks {
		ordered = append(ordered, r.Target)
		seen[r.Target] = true
	}
	for _, name := range names {
		if !seen[name] {
			ordered = append(ordered, name)
		}
	}
	return ordered, nil
}
