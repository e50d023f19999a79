package lister

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"assettracker/internal/logger"
	"assettracker/pkg/assettypes"
)

// DefaultPageSize is the number of rows per page when none is configured.
const DefaultPageSize = 20

const (
	columnWidth = 16
	idWidth     = 5
)

var headerColumns = []string{"Model", "Purchase Date", "Expiry Date", "Price", "Office Location", "Other info"}

// Messages shown while paging.
const (
	msgEmpty       = "No assets in database."
	msgPageHint    = "Enter a number to go to that page. Type 'up' or 'down' to scroll up or down."
	msgLastPage    = "No more assets."
	msgTopPage     = "You are already at the top page."
	msgInvalidPage = "Invalid page."
	msgAborted     = "Aborted."
)

// PriceFormatter converts a USD price into an office's local currency.
type PriceFormatter interface {
	Format(usd float64, culture string) (string, error)
}

// Lister pages through assets interactively.
type Lister struct {
	out      assettypes.OutputSink
	in       assettypes.InputSource
	offices  assettypes.OfficeRepository
	prices   PriceFormatter
	pageSize int
	now      func() time.Time
	logger   *log.Logger
}

// Option configures a Lister.
type Option func(*Lister)

// WithPageSize sets the rows per page. Values below one are ignored.
func WithPageSize(size int) Option {
	return func(l *Lister) {
		if size > 0 {
			l.pageSize = size
		}
	}
}

// WithClock sets the clock used to highlight rows.
func WithClock(now func() time.Time) Option {
	return func(l *Lister) {
		l.now = now
	}
}

// New creates a Lister.
func New(out assettypes.OutputSink, in assettypes.InputSource, offices assettypes.OfficeRepository, prices PriceFormatter, options ...Option) *Lister {
	l := &Lister{
		out:      out,
		in:       in,
		offices:  offices,
		prices:   prices,
		pageSize: DefaultPageSize,
		now:      time.Now,
		logger:   logger.NewStyledLogger("Lister"),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// List shows the assets matching pred. It returns false when the assets
// cannot be loaded or a page cannot be rendered.
func (l *Lister) List(assets assettypes.AssetRepository, pred assettypes.Predicate) bool {
	selected, err := assets.GetAllFiltered(pred)
	if err != nil {
		l.logger.Error("Failed to load assets", "error", err)
		l.out.PutMessage(fmt.Sprintf("Error: could not load assets: %v", err), assettypes.Danger, true)
		return false
	}
	return l.Show(NewView(selected, l.pageSize))
}

// Show runs the paging loop over an already materialized view.
func (l *Lister) Show(view *View) bool {
	if view.Len() == 0 {
		l.out.PutMessage(msgEmpty, assettypes.Success, true)
		return true
	}

	total := view.TotalPages()
	if total == 0 {
		if !l.render(view.Page(0)) {
			return false
		}
		l.out.PutMessage(fmt.Sprintf("Showing all %d assets.", view.Len()), assettypes.Neutral, true)
		return true
	}

	page := 0
	for {
		if !l.render(view.Page(page)) {
			return false
		}
		l.out.PutMessage(fmt.Sprintf("Displaying page %d of %d.", page+1, total), assettypes.Neutral, true)
		l.out.PutMessage(msgPageHint, assettypes.Neutral, true)

		defaultText := ""
		if page == 0 {
			defaultText = "down"
		}
		line, err := l.in.ReadEditableLineWithDefault(defaultText)
		if err != nil {
			l.logger.Debug("Paging input ended", "error", err)
			l.out.PutMessage(msgAborted, assettypes.Neutral, true)
			return true
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		switch choice {
		case "down":
			if page+1 >= total {
				l.out.PutMessage(msgLastPage, assettypes.Neutral, true)
				return true
			}
			page++
		case "up":
			if page == 0 {
				l.out.PutMessage(msgTopPage, assettypes.Warning, true)
				continue
			}
			page--
		default:
			n, err := strconv.Atoi(choice)
			if err != nil {
				l.out.PutMessage(msgAborted, assettypes.Neutral, true)
				return true
			}
			if n < 1 || n > total {
				l.out.PutMessage(msgInvalidPage, assettypes.Warning, true)
				continue
			}
			page = n - 1
		}
	}
}

type row struct {
	text     string
	severity assettypes.Severity
}

// render prints a header and the rows of one page. Rows are built before
// anything is printed so a failing row leaves no partial table.
func (l *Lister) render(assets []*assettypes.Asset) bool {
	now := l.now()
	offices := make(map[int]*assettypes.Office)

	rows := make([]row, 0, len(assets))
	for _, a := range assets {
		text, err := l.formatRow(a, offices)
		if err != nil {
			l.logger.Error("Failed to render asset", "asset", a.ID, "error", err)
			l.out.PutMessage(fmt.Sprintf("Error: could not display asset %d: %v", a.ID, err), assettypes.Danger, true)
			return false
		}
		rows = append(rows, row{text: text, severity: RowSeverity(a, now)})
	}

	l.out.PutMessage(Header(), assettypes.Neutral, true)
	for _, r := range rows {
		l.out.PutMessage(r.text, r.severity, true)
	}
	return true
}

func (l *Lister) formatRow(a *assettypes.Asset, cache map[int]*assettypes.Office) (string, error) {
	office, ok := cache[a.OfficeID]
	if !ok {
		var err error
		office, err = l.offices.Get(a.OfficeID)
		if err != nil {
			return "", err
		}
		cache[a.OfficeID] = office
	}

	price, err := l.prices.Format(a.Price, office.Culture)
	if err != nil {
		return "", err
	}

	cells := []string{
		pad(strconv.Itoa(a.ID), idWidth),
		pad(a.ModelName, columnWidth),
		pad(a.PurchaseDate.Format("2006-01-02"), columnWidth),
		pad(a.ExpiryDate.Format("2006-01-02"), columnWidth),
		pad(price, columnWidth),
		pad(office.String(), columnWidth),
	}
	for _, extra := range a.Extras() {
		cells = append(cells, pad(extra, columnWidth))
	}
	return strings.TrimRight(strings.Join(cells, ""), " "), nil
}

// Header returns the column header line.
func Header() string {
	var b strings.Builder
	b.WriteString(pad("Id", idWidth))
	for _, column := range headerColumns {
		b.WriteString(pad(column, columnWidth))
	}
	return strings.TrimRight(b.String(), " ")
}

// pad truncates s to leave at least one space and right-pads it to width cells.
func pad(s string, width int) string {
	if ansi.StringWidth(s) >= width {
		s = ansi.Truncate(s, width-1, "…")
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}
