package eventstore

import (
	"cmp"
	"slices"
	"strings"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

// Filter selects a dynamic event stream. An event matches when it matches any of the items.
// A Filter without items matches every event.
type Filter struct {
	items []FilterItem
}

// Items returns the alternatives of this filter.
func (f Filter) Items() []FilterItem {
	return f.items
}

// IsEmpty reports whether the filter matches every event.
func (f Filter) IsEmpty() bool {
	return len(f.items) == 0
}

// String renders the filter for log output, e.g. (LibraryOpened|LibraryClosed & SessionID=42).
func (f Filter) String() string {
	if f.IsEmpty() {
		return "(*)"
	}

	parts := make([]string, 0, len(f.items))
	for _, item := range f.items {
		parts = append(parts, item.String())
	}

	return strings.Join(parts, " OR ")
}

// FilterItem is one alternative of a Filter: any of its event types AND its predicates,
// where the predicates are combined with OR unless AllPredicatesMustMatch.
// An item without event types matches every event type; an item without predicates every payload.
type FilterItem struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (fi FilterItem) EventTypes() []FilterEventTypeString {
	return fi.eventTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

func (fi FilterItem) isEmpty() bool {
	return len(fi.eventTypes) == 0 && len(fi.predicates) == 0
}

func (fi FilterItem) String() string {
	var sb strings.Builder

	sb.WriteString("(")
	sb.WriteString(strings.Join(fi.eventTypes, "|"))

	if len(fi.predicates) > 0 {
		if len(fi.eventTypes) > 0 {
			sb.WriteString(" & ")
		}

		joiner := "|"
		if fi.allPredicatesMustMatch {
			joiner = "&"
		}

		predicates := make([]string, 0, len(fi.predicates))
		for _, p := range fi.predicates {
			predicates = append(predicates, p.key+"="+p.val)
		}

		sb.WriteString(strings.Join(predicates, joiner))
	}

	sb.WriteString(")")

	return sb.String()
}

// FilterPredicate requires the top-level JSON payload field key to be the string val.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

// P creates a FilterPredicate.
func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

// FilterBuilder starts building a Filter.
type FilterBuilder struct {
	items []FilterItem
}

// BuildEventFilter creates a FilterBuilder. Finish it with MatchingAnyEvent or Matching()...Finalize().
func BuildEventFilter() FilterBuilder {
	return FilterBuilder{}
}

// MatchingAnyEvent returns a Filter that matches every event.
func (fb FilterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

// Matching starts the first FilterItem.
func (fb FilterBuilder) Matching() FilterItemBuilder {
	return FilterItemBuilder{items: slices.Clone(fb.items)}
}

// FilterItemBuilder adds conditions to the current FilterItem.
//
// Input is sanitized: empty event types and partial predicates (empty key or val) are dropped,
// the rest is sorted and de-duplicated, so equal filters always produce equal queries.
type FilterItemBuilder struct {
	items   []FilterItem
	current FilterItem
}

// AnyEventTypeOf restricts the current item to any of the event types.
func (b FilterItemBuilder) AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterItemBuilder {
	all := append([]FilterEventTypeString{eventType}, eventTypes...)
	all = append(all, b.current.eventTypes...)
	all = slices.DeleteFunc(all, func(e FilterEventTypeString) bool { return e == "" })
	slices.Sort(all)

	b.current.eventTypes = slices.Clip(slices.Compact(all))

	return b
}

// AndAnyPredicateOf requires at least one of the predicates to match.
func (b FilterItemBuilder) AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder {
	b.current.allPredicatesMustMatch = false
	b.current.predicates = sanitizePredicates(append([]FilterPredicate{predicate}, predicates...))

	return b
}

// AndAllPredicatesOf requires every predicate to match.
func (b FilterItemBuilder) AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder {
	b.current.allPredicatesMustMatch = true
	b.current.predicates = sanitizePredicates(append([]FilterPredicate{predicate}, predicates...))

	return b
}

// OrMatching closes the current item and starts an alternative one.
func (b FilterItemBuilder) OrMatching() FilterItemBuilder {
	return FilterItemBuilder{items: b.appendCurrent()}
}

// Finalize returns the Filter. Items without any condition are dropped.
func (b FilterItemBuilder) Finalize() Filter {
	return Filter{items: b.appendCurrent()}
}

func (b FilterItemBuilder) appendCurrent() []FilterItem {
	items := slices.Clone(b.items)
	if !b.current.isEmpty() {
		items = append(items, b.current)
	}

	return items
}

func sanitizePredicates(predicates []FilterPredicate) []FilterPredicate {
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool { return p.key == "" || p.val == "" })
	slices.SortFunc(predicates, func(a, b FilterPredicate) int {
		return cmp.Or(cmp.Compare(a.key, b.key), cmp.Compare(a.val, b.val))
	})

	return slices.Clip(slices.Compact(predicates))
}
