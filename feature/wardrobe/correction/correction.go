package correction

import (
	"wardrobe-manager/feature/wardrobe/models"

	"go.uber.org/zap"
)

// Range is an inclusive id interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether id lies within the range.
func (r Range) Contains(id int) bool {
	return id >= r.Min && id <= r.Max
}

// Reason explains the outcome of a correction.
type Reason string

const (
	ReasonKept      Reason = "kept"
	ReasonDenied    Reason = "denied"
	ReasonAllowList Reason = "allow-list"
	ReasonRange     Reason = "range"
)

// Decision is the outcome of correcting one (category, id) pair.
type Decision struct {
	Category string
	Drop     bool
	Reason   Reason
}

// Tables are the curated rule data.
type Tables struct {
	Priority   []string
	AllowLists map[string][]int
	Ranges     map[string][]Range
	DenyList   []int
}

// DefaultTables returns the built-in rule data.
func DefaultTables() Tables {
	return Tables{
		Priority:   Priority,
		AllowLists: AllowLists,
		Ranges:     Ranges,
		DenyList:   DenyList,
	}
}

// Layer repairs category assignments. Decisions depend only on the declared
// category and the item id, never on visiting order or earlier corrections.
type Layer struct {
	priority []string
	allow    map[string]map[int]struct{}
	ranges   map[string][]Range
	deny     map[int]struct{}
	logger   *zap.Logger
}

// NewLayer indexes the tables for constant-time lookups.
func NewLayer(t Tables, logger *zap.Logger) *Layer {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Layer{
		priority: append([]string(nil), t.Priority...),
		allow:    make(map[string]map[int]struct{}, len(t.AllowLists)),
		ranges:   t.Ranges,
		deny:     make(map[int]struct{}, len(t.DenyList)),
		logger:   logger,
	}
	for code, ids := range t.AllowLists {
		set := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		l.allow[code] = set
	}
	for _, id := range t.DenyList {
		l.deny[id] = struct{}{}
	}
	return l
}

// Denied reports whether id is on the deny-list.
func (l *Layer) Denied(id int) bool {
	_, ok := l.deny[id]
	return ok
}

// Correct decides the category of an item declared under code.
func (l *Layer) Correct(code string, id int) Decision {
	if l.Denied(id) {
		return Decision{Category: code, Drop: true, Reason: ReasonDenied}
	}

	if l.allowed(code, id) {
		return Decision{Category: code, Reason: ReasonKept}
	}
	for _, other := range l.priority {
		if other != code && l.allowed(other, id) {
			return Decision{Category: other, Reason: ReasonAllowList}
		}
	}

	if l.inRange(code, id) {
		return Decision{Category: code, Reason: ReasonKept}
	}
	for _, other := range l.priority {
		if l.inRange(other, id) {
			return Decision{Category: other, Reason: ReasonRange}
		}
	}

	return Decision{Category: code, Reason: ReasonKept}
}

// Apply corrects items and drops denied ones. The input is not modified.
func (l *Layer) Apply(items []models.RawItem) []models.RawItem {
	out := make([]models.RawItem, 0, len(items))
	for _, item := range items {
		d := l.Correct(item.CategoryCode, item.ItemID)
		if d.Drop {
			l.logger.Debug("Dropping denied item",
				zap.String("category", item.CategoryCode),
				zap.Int("id", item.ItemID))
			continue
		}
		if d.Category != item.CategoryCode {
			l.logger.Debug("Corrected item category",
				zap.Int("id", item.ItemID),
				zap.String("from", item.CategoryCode),
				zap.String("to", d.Category),
				zap.String("reason", string(d.Reason)))
			if item.OriginalCategory == "" {
				item.OriginalCategory = item.CategoryCode
			}
			item.CategoryCode = d.Category
		}
		out = append(out, item)
	}
	return out
}

func (l *Layer) allowed(code string, id int) bool {
	_, ok := l.allow[code][id]
	return ok
}

func (l *Layer) inRange(code string, id int) bool {
	for _, r := range l.ranges[code] {
		if r.Contains(id) {
			return true
		}
	}
	return false
}
