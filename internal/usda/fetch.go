package usda

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/vk/plantgen/internal/catalog"
	"github.com/vk/plantgen/internal/ctxlog"
)

// DefaultDelay is the pause after each successfully fetched symbol.
const DefaultDelay = 100 * time.Millisecond

// DefaultHabitat is the habitat recorded for every fetched plant.
const DefaultHabitat = "Virginia wetlands and adjacent areas"

// StatusNotIndicated marks a plant without a usable wetland indicator.
const StatusNotIndicated = "NI"

// ErrNoData is recorded for a symbol whose profile has no common name.
var ErrNoData = errors.New("no data")

// wetlandStatuses are the indicator codes of plants worth keeping.
var wetlandStatuses = map[string]bool{
	"OBL":  true,
	"FACW": true,
	"FAC":  true,
	"FACU": true,
	"UPL":  true,
}

var (
	italicTags      = regexp.MustCompile(`</?i>`)
	linnaeusSuffix  = regexp.MustCompile(` L\.$`)
	authoritySuffix = regexp.MustCompile(` \(.*\)$`)
	nonAlnumRuns    = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDashes      = regexp.MustCompile(`^-+|-+$`)
)

// Record is a fetched plant. The embedded catalog fields are inlined so a
// file of records loads back as an ordinary catalog.
type Record struct {
	catalog.Plant `yaml:",inline"`
	Symbol        string `yaml:"symbol"`
	WetlandStatus string `yaml:"wetland_status"`
	Native        bool   `yaml:"native"`
	Description   string `yaml:"description"`
	Habitat       string `yaml:"habitat"`
}

// SymbolError records a symbol that could not be fetched.
type SymbolError struct {
	Symbol string
	Err    error
}

func (e SymbolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Symbol, e.Err)
}

func (e SymbolError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a fetch run.
type Result struct {
	Records []Record
	Errors  []SymbolError
	// Excluded lists symbols dropped for lacking a wetland indicator, for a
	// common name with no usable id, or for repeating an id already fetched.
	Excluded []string
}

// Catalog returns the records as plain catalog entries.
func (r *Result) Catalog() catalog.Catalog {
	plants := make(catalog.Catalog, 0, len(r.Records))
	for _, rec := range r.Records {
		plants = append(plants, rec.Plant)
	}
	return plants
}

// Fetcher walks a list of symbols and collects wetland plant records.
type Fetcher struct {
	client *Client
	delay  time.Duration
	out    io.Writer
}

// NewFetcher creates a Fetcher. Progress lines go to out; a nil out
// discards them.
func NewFetcher(client *Client, delay time.Duration, out io.Writer) *Fetcher {
	if out == nil {
		out = io.Discard
	}
	return &Fetcher{client: client, delay: delay, out: out}
}

// Fetch queries every symbol in order. Per-symbol failures are collected in
// the result; the returned error is non-nil only when ctx is cancelled.
func (f *Fetcher) Fetch(ctx context.Context, symbols []string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	res := &Result{}
	seen := make(map[string]string)

	fmt.Fprintf(f.out, "Fetching %d plants from USDA...\n", len(symbols))
	for i, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		fmt.Fprintf(f.out, "[%d/%d] Fetching %s...\n", i+1, len(symbols), symbol)

		profile, err := f.client.Profile(ctx, symbol)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			logger.Warn("Profile request failed.", "symbol", symbol, "error", err)
			res.Errors = append(res.Errors, SymbolError{Symbol: symbol, Err: err})
			continue
		}
		if strings.TrimSpace(profile.CommonName) == "" {
			res.Errors = append(res.Errors, SymbolError{Symbol: symbol, Err: ErrNoData})
			continue
		}

		wetland, err := f.client.Wetland(ctx, symbol)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			logger.Debug("Wetland request failed, treating as not indicated.", "symbol", symbol, "error", err)
		}

		rec, ok := NewRecord(symbol, profile, wetland)
		if !ok {
			logger.Debug("Plant has no wetland indicator, excluded.", "symbol", symbol, "status", rec.WetlandStatus)
			res.Excluded = append(res.Excluded, symbol)
			continue
		}
		if !catalog.IsSlug(rec.ID) {
			logger.Warn("Common name yields no usable id, excluded.", "symbol", symbol, "common_name", profile.CommonName)
			res.Excluded = append(res.Excluded, symbol)
			continue
		}
		if first, dup := seen[rec.ID]; dup {
			logger.Warn("Duplicate plant id, excluded.", "symbol", symbol, "id", rec.ID, "first_symbol", first)
			res.Excluded = append(res.Excluded, symbol)
			continue
		}
		seen[rec.ID] = symbol
		res.Records = append(res.Records, rec)

		if err := sleep(ctx, f.delay); err != nil {
			return res, err
		}
	}

	SortRecords(res.Records)
	logger.Info("🏁 USDA fetch finished.",
		"symbols", len(symbols),
		"records", len(res.Records),
		"errors", len(res.Errors),
		"excluded", len(res.Excluded),
	)
	return res, nil
}

// NewRecord converts the API responses for symbol into a Record. It reports
// false when the plant's wetland status is not one that is kept.
func NewRecord(symbol string, p *Profile, wetland []WetlandRecord) (Record, bool) {
	status := WetlandStatus(wetland)
	rec := Record{
		Plant: catalog.Plant{
			ID:         Slug(p.CommonName),
			Name:       CommonName(p.CommonName),
			Scientific: CleanScientificName(p.ScientificName),
			Category:   CategoryFromHabits(p.GrowthHabits),
		},
		Symbol:        symbol,
		WetlandStatus: status,
		Native:        IsNative(p.NativeStatuses),
		Description:   Description(p.GrowthHabits, p.Durations),
		Habitat:       DefaultHabitat,
	}
	return rec, wetlandStatuses[status]
}

// WetlandStatus picks the indicator for the Eastern Mountains and Piedmont
// region, then the Atlantic and Gulf Coastal Plain, then the first record.
func WetlandStatus(records []WetlandRecord) string {
	if len(records) == 0 {
		return StatusNotIndicated
	}
	pick := &records[0]
	if r := findRegion(records, "EMP"); r != nil {
		pick = r
	} else if r := findRegion(records, "AGCP"); r != nil {
		pick = r
	}
	if pick.Indicator == "" {
		return StatusNotIndicated
	}
	return pick.Indicator
}

func findRegion(records []WetlandRecord, region string) *WetlandRecord {
	for i := range records {
		if records[i].Region == region {
			return &records[i]
		}
	}
	return nil
}

// CleanScientificName strips italic markup, a trailing Linnaeus
// abbreviation and a trailing parenthesised authority.
func CleanScientificName(name string) string {
	name = italicTags.ReplaceAllString(name, "")
	name = linnaeusSuffix.ReplaceAllString(name, "")
	name = authoritySuffix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// CategoryFromHabits maps the first USDA growth habit to a category.
func CategoryFromHabits(habits []string) catalog.Category {
	if len(habits) == 0 {
		return catalog.CategoryHerb
	}
	h := strings.ToLower(habits[0])
	switch {
	case strings.Contains(h, "tree"):
		return catalog.CategoryTree
	case strings.Contains(h, "shrub"):
		return catalog.CategoryShrub
	case strings.Contains(h, "vine"):
		return catalog.CategoryVine
	case strings.Contains(h, "fern"):
		return catalog.CategoryFern
	case strings.Contains(h, "grass"), strings.Contains(h, "sedge"),
		strings.Contains(h, "rush"), strings.Contains(h, "graminoid"):
		return catalog.CategoryGrass
	default:
		return catalog.CategoryHerb
	}
}

// Slug derives a plant id from the full common name. Letters outside a-z
// are dropped, so the result may be empty.
func Slug(commonName string) string {
	s := nonAlnumRuns.ReplaceAllString(strings.ToLower(commonName), "-")
	return edgeDashes.ReplaceAllString(s, "")
}

// CommonName returns the display name: the text before the first comma.
func CommonName(commonName string) string {
	name, _, _ := strings.Cut(commonName, ",")
	return strings.TrimSpace(name)
}

// IsNative reports whether the plant counts as native to the lower 48
// states. A plant without any status records is assumed native.
func IsNative(statuses []NativeStatus) bool {
	if statuses == nil {
		return true
	}
	for _, s := range statuses {
		if s.Region == "L48" && s.Status == "N" {
			return true
		}
	}
	return false
}

// Description builds a short description from the first growth habit and
// duration.
func Description(habits, durations []string) string {
	habit := "Plant"
	if len(habits) > 0 && habits[0] != "" {
		habit = habits[0]
	}
	duration := ""
	if len(durations) > 0 {
		duration = durations[0]
	}
	return strings.TrimSpace(fmt.Sprintf("%s species. %s.", habit, duration))
}

// SortRecords orders records by category, then case-insensitively by name.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if ra, rb := a.Category.Rank(), b.Category.Rank(); ra != rb {
			return ra < rb
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		return a.Name < b.Name
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
