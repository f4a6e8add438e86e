package cssom

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Factory creates stylesheet objects on top of a platform.
//
// A factory owns the cache for the document snapshot (see FromDocument).
// Factories are safe for concurrent use, as long as the platform is.
type Factory struct {
	platform Platform
	snapshot *snapshotCell
}

// NewFactory creates a stylesheet factory for a platform.
func NewFactory(platform Platform) *Factory {
	if platform == nil {
		panic("cssom: factory needs a platform")
	}
	return &Factory{
		platform: platform,
		snapshot: &snapshotCell{},
	}
}

// FromString creates a new constructable stylesheet and synchronously loads
// it with cssText. CSS text is not pre-validated; if the platform rejects
// it, FromString returns an error matching ErrStylesheetParse and no sheet.
func (f *Factory) FromString(cssText string) (StyleSheet, error) {
	sheet := f.platform.CreateStyleSheet()
	if err := sheet.ReplaceSync(cssText); err != nil {
		tracer().Debugf("platform rejected CSS text: %v", err)
		if errors.Is(err, ErrStylesheetParse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStylesheetParse, err)
	}
	tracer().Debugf("created stylesheet from %d bytes of CSS text", len(cssText))
	return sheet, nil
}

// FromDocument returns a snapshot of all stylesheets currently attached to
// the document, each re-materialized as an independent constructable
// stylesheet.
//
// The snapshot is computed on first call only. Subsequent calls return the
// identical *Snapshot, without re-reading the document. Stylesheets denying
// access to their rules are skipped.
func (f *Factory) FromDocument() *Snapshot {
	return f.snapshot.get(f.takeSnapshot)
}

func (f *Factory) takeSnapshot() *Snapshot {
	docsheets := f.platform.DocumentStyleSheets()
	tracer().Debugf("taking snapshot of %d document stylesheets", len(docsheets))
	snap := &Snapshot{sheets: make([]StyleSheet, 0, len(docsheets))}
	for i, orig := range docsheets {
		rules, err := orig.CSSRules()
		if err != nil {
			tracer().Infof("skipping document stylesheet #%d: %v", i, err)
			snap.skipped = append(snap.skipped, err)
			continue
		}
		sheet, err := f.FromString(strings.Join(rules, ""))
		if err != nil {
			tracer().Infof("skipping document stylesheet #%d: %v", i, err)
			snap.skipped = append(snap.skipped, err)
			continue
		}
		snap.sheets = append(snap.sheets, sheet)
	}
	return snap
}

// --- Snapshot --------------------------------------------------------------

// Snapshot is a one-time copy of a document's stylesheets. Each copy is
// independent from its original: changing the original later does not
// affect the snapshot.
type Snapshot struct {
	sheets  []StyleSheet
	skipped []error
}

// Len returns the number of stylesheets in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.sheets)
}

// At returns the i-th stylesheet of the snapshot, in document order.
func (s *Snapshot) At(i int) StyleSheet {
	return s.sheets[i]
}

// Sheets returns the stylesheets of the snapshot. The slice is a copy,
// the stylesheets are not.
func (s *Snapshot) Sheets() []StyleSheet {
	sheets := make([]StyleSheet, len(s.sheets))
	copy(sheets, s.sheets)
	return sheets
}

// Skipped returns the errors of document stylesheets which have been left
// out of the snapshot, usually matching ErrStylesheetAccess.
// The slice is a copy.
func (s *Snapshot) Skipped() []error {
	skipped := make([]error, len(s.skipped))
	copy(skipped, s.skipped)
	return skipped
}

// snapshotCell is a single-initialization cell. It is filled on first get
// and never reset.
type snapshotCell struct {
	once sync.Once
	snap *Snapshot
}

func (c *snapshotCell) get(compute func() *Snapshot) *Snapshot {
	c.once.Do(func() {
		c.snap = compute()
	})
	return c.snap
}
