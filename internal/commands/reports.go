package commands

import (
	"fmt"
	"strings"
	"time"

	"assettracker/pkg/assettypes"
)

// Report summarizes asset ages and expiry.
type Report struct {
	Total              int
	Expired            int
	ExpiringIn3Months  int
	ExpiringIn6Months  int
	OlderThanFiveYears int
}

// BuildReport counts assets relative to now. ExpiringIn3Months excludes
// expired assets; ExpiringIn6Months excludes both of the former.
func BuildReport(assets []*assettypes.Asset, now time.Time) Report {
	threeMonths := now.AddDate(0, 3, 0)
	sixMonths := now.AddDate(0, 6, 0)

	r := Report{Total: len(assets)}
	for _, a := range assets {
		switch {
		case a.ExpiryDate.Before(now):
			r.Expired++
		case a.ExpiryDate.Before(threeMonths):
			r.ExpiringIn3Months++
		case a.ExpiryDate.Before(sixMonths):
			r.ExpiringIn6Months++
		}
		if a.PurchaseDate.AddDate(5, 0, 0).Before(now) {
			r.OlderThanFiveYears++
		}
	}
	return r
}

// Lines returns the report as sentences.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("A total of %d assets are being tracked.", r.Total),
		fmt.Sprintf("%d assets are past their expiry date.", r.Expired),
		fmt.Sprintf("%d assets will expire within 3 months.", r.ExpiringIn3Months),
		fmt.Sprintf("%d assets will expire within 3 to 6 months.", r.ExpiringIn6Months),
		fmt.Sprintf("%d assets are older than 5 years.", r.OlderThanFiveYears),
	}
}

// Markdown returns the report as a Markdown document.
func (r Report) Markdown() string {
	var b strings.Builder
	b.WriteString("## Statistics\n\n")
	for _, line := range r.Lines() {
		b.WriteString("- " + line + "\n")
	}
	return b.String()
}

// Reports implements "reports".
func (c *Commands) Reports(string, []string) bool {
	assets, err := c.deps.Assets.GetAll()
	if err != nil {
		c.fail("Error: could not load assets", err)
		return false
	}

	report := BuildReport(assets, c.deps.Now())
	if c.deps.Markdown != nil {
		for _, line := range strings.Split(c.deps.Markdown(report.Markdown()), "\n") {
			c.say(line)
		}
		return true
	}

	c.say("Statistics:")
	for _, line := range report.Lines() {
		c.say(line)
	}
	return true
}
