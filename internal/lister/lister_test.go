package lister

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assettracker/internal/testutils"
	"assettracker/pkg/assettypes"
)

// usdPrices formats prices without conversion and knows only the standard cultures.
type usdPrices struct{}

func (usdPrices) Format(usd float64, culture string) (string, error) {
	switch culture {
	case "sv-SE", "ja-JP", "fr-FR":
		return fmt.Sprintf("USD %.2f", usd), nil
	}
	return "", fmt.Errorf("unknown culture %q", culture)
}

func numberedComputers(n int) []*assettypes.Asset {
	base := testutils.Date(2024, 6, 1)
	assets := make([]*assettypes.Asset, 0, n)
	for i := 1; i <= n; i++ {
		assets = append(assets, testutils.Computer(fmt.Sprintf("Model-%02d", i), 1, base.AddDate(0, 0, i), 100))
	}
	return assets
}

type fixture struct {
	lister *Lister
	assets *testutils.MemoryAssets
	in     *testutils.ScriptedInput
	out    *testutils.RecordingSink
}

func newFixture(pageSize int, assets []*assettypes.Asset, lines ...string) *fixture {
	f := &fixture{
		assets: testutils.NewMemoryAssets(assets...),
		in:     testutils.NewScriptedInput(lines...),
		out:    testutils.NewRecordingSink(),
	}
	f.lister = New(f.out, f.in, testutils.StandardOffices(), usdPrices{},
		WithPageSize(pageSize), WithClock(testutils.Clock(testutils.FixedNow)))
	return f
}

func (f *fixture) shownModels() map[string]bool {
	shown := make(map[string]bool)
	for _, line := range f.out.Lines() {
		fields := strings.Fields(line)
		if len(fields) > 1 && strings.HasPrefix(fields[1], "Model-") {
			shown[fields[1]] = true
		}
	}
	return shown
}

func TestViewPaging(t *testing.T) {
	view := NewView(numberedComputers(45), 20)

	assert.Equal(t, 45, view.Len())
	assert.Equal(t, 2, view.TotalPages())
	assert.Len(t, view.Page(0), 20)
	assert.Len(t, view.Page(1), 20)
	assert.Len(t, view.Page(2), 5)
	assert.Empty(t, view.Page(3))
	assert.Empty(t, view.Page(-1))
	assert.Equal(t, "Model-21", view.Page(1)[0].ModelName)
}

func TestViewTotalPagesTruncates(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{0, 0},
		{19, 0},
		{20, 1},
		{39, 1},
		{40, 2},
		{41, 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.count), func(t *testing.T) {
			assert.Equal(t, tt.expected, NewView(numberedComputers(tt.count), 20).TotalPages())
		})
	}
}

func TestSortOrder(t *testing.T) {
	day := testutils.Date(2024, 1, 1)
	phone := testutils.Cellphone("phone-office1", 1, day, 1)
	late := testutils.Computer("late-office1", 1, day.AddDate(0, 1, 0), 1)
	early := testutils.Computer("early-office1", 1, day, 1)
	other := testutils.Computer("office2", 2, day.AddDate(-1, 0, 0), 1)

	assets := []*assettypes.Asset{other, phone, late, early}
	Sort(assets)

	var models []string
	for _, a := range assets {
		models = append(models, a.ModelName)
	}
	assert.Equal(t, []string{"early-office1", "late-office1", "phone-office1", "office2"}, models)
}

func TestRowSeverity(t *testing.T) {
	now := testutils.FixedNow
	withExpiry := func(expiry string) *assettypes.Asset {
		a := testutils.Computer("x", 1, testutils.Date(2022, 1, 1), 1)
		var err error
		a.ExpiryDate, err = assettypes.ParseDate(expiry)
		require.NoError(t, err)
		return a
	}

	tests := []struct {
		expiry   string
		expected assettypes.Severity
	}{
		{"2024-06-01", assettypes.Danger},
		{"2025-02-01", assettypes.Danger},
		{"2025-04-01", assettypes.Danger},
		{"2025-04-02", assettypes.Warning},
		{"2025-06-30", assettypes.Warning},
		{"2025-07-02", assettypes.Neutral},
		{"2027-01-01", assettypes.Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.expiry, func(t *testing.T) {
			assert.Equal(t, tt.expected, RowSeverity(withExpiry(tt.expiry), now))
		})
	}
}

func TestListEmpty(t *testing.T) {
	f := newFixture(20, nil)

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	assert.Equal(t, []string{"No assets in database."}, f.out.Texts(assettypes.Success))
	assert.Empty(t, f.in.Prompts())
}

func TestListFewerThanOnePage(t *testing.T) {
	f := newFixture(20, numberedComputers(5))

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	lines := f.out.Lines()
	require.Len(t, lines, 7)
	assert.Equal(t, Header(), lines[0])
	assert.Equal(t, "Showing all 5 assets.", lines[6])
	assert.Len(t, f.shownModels(), 5)
	assert.False(t, f.out.Contains("of 0"))
	assert.Empty(t, f.in.Prompts())
}

// 45 assets with 20 per page: two pages, page 3 is rejected.
func TestListScenarioInvalidPage(t *testing.T) {
	f := newFixture(20, numberedComputers(45), "3", "2", "down")

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	assert.True(t, f.out.Contains("Displaying page 1 of 2."))
	assert.True(t, f.out.Contains("Displaying page 2 of 2."))
	assert.Equal(t, []string{"Invalid page."}, f.out.Texts(assettypes.Warning))
	assert.Equal(t, "No more assets.", f.out.Last().Text)
	assert.Equal(t, []string{"down", "down", ""}, f.in.Defaults())
}

// The trailing partial page is never reachable.
func TestListTruncatedPageCountBoundary(t *testing.T) {
	f := newFixture(20, numberedComputers(41), testutils.KeepDefault, "down")

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	shown := f.shownModels()
	assert.Len(t, shown, 40)
	assert.True(t, shown["Model-40"])
	assert.False(t, shown["Model-41"])
}

func TestListUpAtTopPage(t *testing.T) {
	f := newFixture(10, numberedComputers(30), "up", "down", "up", "quit")

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	var pages []string
	for _, line := range f.out.Lines() {
		if strings.HasPrefix(line, "Displaying page") {
			pages = append(pages, line)
		}
	}
	assert.Equal(t, []string{
		"Displaying page 1 of 3.",
		"Displaying page 1 of 3.",
		"Displaying page 2 of 3.",
		"Displaying page 1 of 3.",
	}, pages)
	assert.Equal(t, []string{"You are already at the top page."}, f.out.Texts(assettypes.Warning))
	assert.Equal(t, "Aborted.", f.out.Last().Text)
}

func TestListJumpToPage(t *testing.T) {
	f := newFixture(10, numberedComputers(30), " 3 ", "0", "DOWN")

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	assert.True(t, f.out.Contains("Displaying page 3 of 3."))
	assert.Equal(t, []string{"Invalid page."}, f.out.Texts(assettypes.Warning))
	assert.Equal(t, "No more assets.", f.out.Last().Text)
}

func TestListAbortsOnEndOfInput(t *testing.T) {
	f := newFixture(10, numberedComputers(30))

	assert.True(t, f.lister.List(f.assets, assettypes.All))
	assert.Equal(t, "Aborted.", f.out.Last().Text)
}

func TestListRowColors(t *testing.T) {
	now := testutils.FixedNow
	expired := testutils.Computer("expired", 1, now.AddDate(-4, 0, 0), 1)
	soon := testutils.Computer("soon", 1, now.AddDate(-3, 1, 0), 1)
	later := testutils.Computer("later", 1, now.AddDate(-3, 5, 0), 1)
	fresh := testutils.Computer("fresh", 1, now.AddDate(0, -1, 0), 1)
	f := newFixture(20, []*assettypes.Asset{expired, soon, later, fresh})

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	severities := make(map[string]assettypes.Severity)
	for _, m := range f.out.Messages {
		fields := strings.Fields(m.Text)
		if len(fields) > 1 {
			severities[fields[1]] = m.Severity
		}
	}
	assert.Equal(t, assettypes.Danger, severities["expired"])
	assert.Equal(t, assettypes.Danger, severities["soon"])
	assert.Equal(t, assettypes.Warning, severities["later"])
	assert.Equal(t, assettypes.Neutral, severities["fresh"])
}

func TestListRowColorsUseRenderTime(t *testing.T) {
	later := testutils.Date(2027, 5, 1)
	calls := 0
	clock := func() time.Time {
		calls++
		if calls == 1 {
			return testutils.FixedNow
		}
		return later
	}
	f := newFixture(20, numberedComputers(40), "down", "up", "q")
	f.lister = New(f.out, f.in, testutils.StandardOffices(), usdPrices{},
		WithPageSize(20), WithClock(clock))

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	var severities []assettypes.Severity
	for _, m := range f.out.Messages {
		fields := strings.Fields(m.Text)
		if len(fields) > 1 && fields[1] == "Model-01" {
			severities = append(severities, m.Severity)
		}
	}
	assert.Equal(t, []assettypes.Severity{assettypes.Neutral, assettypes.Danger}, severities)
	assert.Equal(t, 3, calls)
}

func TestListRowContent(t *testing.T) {
	phone := testutils.Cellphone("Pixel 7", 2, testutils.Date(2024, 3, 5), 599)
	f := newFixture(20, []*assettypes.Asset{phone})

	assert.True(t, f.lister.List(f.assets, assettypes.All))

	row := f.out.Lines()[1]
	assert.True(t, strings.HasPrefix(row, "1    Pixel 7"))
	for _, cell := range []string{"2024-03-05", "2027-03-05", "USD 599.00", "Tokyo", "Telia", "+46700000000"} {
		assert.Contains(t, row, cell)
	}
}

func TestListRenderFailureAborts(t *testing.T) {
	orphan := testutils.Computer("orphan", 99, testutils.Date(2024, 1, 1), 1)
	f := newFixture(20, append(numberedComputers(3), orphan))

	assert.False(t, f.lister.List(f.assets, assettypes.All))

	require.Len(t, f.out.Messages, 1)
	assert.Equal(t, assettypes.Danger, f.out.Messages[0].Severity)
	assert.Contains(t, f.out.Messages[0].Text, "could not display asset 4")
}

func TestListUnknownCultureAborts(t *testing.T) {
	offices := testutils.NewMemoryOffices(&assettypes.Office{Location: "Germany", Culture: "de-DE"})
	out := testutils.NewRecordingSink()
	l := New(out, testutils.NewScriptedInput(), offices, usdPrices{})

	ok := l.List(testutils.NewMemoryAssets(testutils.Computer("x", 1, testutils.Date(2024, 1, 1), 1)), assettypes.All)

	assert.False(t, ok)
	assert.Len(t, out.Texts(assettypes.Danger), 1)
}

type failingAssets struct {
	*testutils.MemoryAssets
}

func (failingAssets) GetAllFiltered(assettypes.Predicate) ([]*assettypes.Asset, error) {
	return nil, errors.New("disk on fire")
}

func TestListLoadFailure(t *testing.T) {
	f := newFixture(20, nil)

	assert.False(t, f.lister.List(failingAssets{f.assets}, assettypes.All))
	assert.Contains(t, f.out.Last().Text, "disk on fire")
}

func TestListAppliesPredicate(t *testing.T) {
	day := testutils.Date(2024, 6, 1)
	f := newFixture(20, []*assettypes.Asset{
		testutils.Computer("Model-A", 1, day, 1),
		testutils.Cellphone("Model-B", 1, day, 1),
	})

	assert.True(t, f.lister.List(f.assets, OfKind(assettypes.KindCellphone)))

	assert.Equal(t, map[string]bool{"Model-B": true}, f.shownModels())
}

func TestPad(t *testing.T) {
	assert.Equal(t, "Id   ", pad("Id", 5))
	assert.Equal(t, "1234 ", pad("1234", 5))
	assert.Equal(t, "A very long mo… ", pad("A very long model name", 16))
	assert.True(t, strings.HasSuffix(pad("exactly sixteen!", 16), "… "))
}

func TestHeader(t *testing.T) {
	header := Header()
	assert.True(t, strings.HasPrefix(header, "Id   Model"))
	assert.True(t, strings.HasSuffix(header, "Other info"))
}
