// Package query applies folder and domain filters and stable sorting over a
// flattened bookmark list. Apply never mutates its input; it returns a new
// slice.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MattThePerson/bookmarks-getter/internal/types"
)

// ErrInvalidSortAttribute is returned when SortBy names an attribute that
// does not exist on a Bookmark.
var ErrInvalidSortAttribute = errors.New("invalid sort attribute")

// Options selects which bookmarks to keep and how to order them.
type Options struct {
	// Folder filters by location, case-insensitive. A multi-segment value
	// (containing "/") matches as a substring of the location; a
	// single-segment value must match one location segment exactly.
	Folder string
	// Domains keeps bookmarks whose url contains at least one of the given
	// strings, case-insensitive.
	Domains []string
	// SortBy re-sorts by the named bookmark attribute after the date_added
	// pre-sort. Valid names are the JSON field names of the Bookmark record.
	SortBy string
	// Reverse flips both the pre-sort and the SortBy sort to descending.
	Reverse bool
}

// Apply filters and sorts bookmarks per opts. The list is always pre-sorted
// by date_added (the fixed-width readable format sorts chronologically as a
// string); a SortBy re-sort is stable, so the date_added order remains the
// tie-break for equal keys.
func Apply(bookmarks []types.Bookmark, opts Options) ([]types.Bookmark, error) {
	result := make([]types.Bookmark, len(bookmarks))
	copy(result, bookmarks)

	if opts.Folder != "" {
		result = filterByFolder(result, opts.Folder)
	}
	if len(opts.Domains) > 0 {
		result = filterByDomains(result, opts.Domains)
	}

	sortByAttribute(result, func(b types.Bookmark) string { return b.DateAdded }, opts.Reverse)

	if opts.SortBy != "" {
		key, ok := attributeKey(opts.SortBy)
		if !ok {
			return nil, fmt.Errorf("%w: unable to sort bookmarks by %q attribute", ErrInvalidSortAttribute, opts.SortBy)
		}
		sortByAttribute(result, key, opts.Reverse)
	}

	return result, nil
}

// filterByFolder keeps bookmarks matching the folder query. Multi-segment
// queries match as a substring of the lower-cased location; single-segment
// queries must equal one of the location's "/"-separated segments.
func filterByFolder(bookmarks []types.Bookmark, folder string) []types.Bookmark {
	folder = strings.ToLower(folder)
	multiSegment := strings.Contains(folder, "/")

	kept := bookmarks[:0]
	for _, bm := range bookmarks {
		location := strings.ToLower(bm.Location)
		if multiSegment {
			if strings.Contains(location, folder) {
				kept = append(kept, bm)
			}
			continue
		}
		for _, segment := range strings.Split(location, "/") {
			if segment == folder {
				kept = append(kept, bm)
				break
			}
		}
	}
	return kept
}

// filterByDomains keeps bookmarks whose url contains at least one of the
// given domain strings, case-insensitive.
func filterByDomains(bookmarks []types.Bookmark, domains []string) []types.Bookmark {
	kept := bookmarks[:0]
	for _, bm := range bookmarks {
		url := strings.ToLower(bm.Url)
		for _, domain := range domains {
			if strings.Contains(url, strings.ToLower(domain)) {
				kept = append(kept, bm)
				break
			}
		}
	}
	return kept
}

// sortByAttribute stable-sorts ascending by key, or descending when reverse
// is set. Stability keeps equal keys in their prior order either way.
func sortByAttribute(bookmarks []types.Bookmark, key func(types.Bookmark) string, reverse bool) {
	sort.SliceStable(bookmarks, func(i, j int) bool {
		if reverse {
			return key(bookmarks[i]) > key(bookmarks[j])
		}
		return key(bookmarks[i]) < key(bookmarks[j])
	})
}

// attributeKey maps a sort attribute name to its accessor. Names follow the
// Bookmark record's JSON field names.
func attributeKey(attr string) (func(types.Bookmark) string, bool) {
	switch attr {
	case "id":
		return func(b types.Bookmark) string { return b.Id }, true
	case "name":
		return func(b types.Bookmark) string { return b.Name }, true
	case "type":
		return func(b types.Bookmark) string { return b.Type }, true
	case "url":
		return func(b types.Bookmark) string { return b.Url }, true
	case "location":
		return func(b types.Bookmark) string { return b.Location }, true
	case "date_added":
		return func(b types.Bookmark) string { return b.DateAdded }, true
	case "date_last_used":
		return func(b types.Bookmark) string { return b.DateLastUsed }, true
	case "date_modified":
		return func(b types.Bookmark) string { return b.DateModified }, true
	default:
		return nil, false
	}
}
