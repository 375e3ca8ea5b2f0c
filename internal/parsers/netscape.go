package parsers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MattThePerson/bookmarks-getter/internal/types"
)

// ReadNetscapeExport loads a bookmarks HTML export file (the Netscape
// format Chromium's bookmark manager writes) and flattens it into the same
// ordered list the JSON parser produces. In this format a DT holding an H3
// is a folder whose nested DL is recursed, and a DT holding an A is a
// bookmark entry.
//
// The export carries no ids and no usage data, so Id is assigned
// sequentially in traversal order and DateLastUsed is left empty. ADD_DATE
// attributes are Unix seconds; LAST_MODIFIED maps to DateModified when
// present. The toolbar folder Chromium wraps the export in (marked with
// PERSONAL_TOOLBAR_FOLDER) is treated as the root rather than a location
// segment, matching the JSON parser's view of the bookmark bar.
func ReadNetscapeExport(path string) ([]types.Bookmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read bookmarks export %q: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("unable to parse bookmarks export %q: %w", path, err)
	}

	root := doc.Find("dl").First()
	if root.Length() == 0 {
		return nil, fmt.Errorf("bookmarks export %q has no bookmark list", path)
	}

	var bookmarks []types.Bookmark
	nextID := 1
	if err := walkNetscapeList(root, "", &bookmarks, &nextID); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func walkNetscapeList(list *goquery.Selection, location string, out *[]types.Bookmark, nextID *int) error {
	var walkErr error
	list.ChildrenFiltered("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		if h3 := dt.ChildrenFiltered("h3").First(); h3.Length() > 0 {
			childLocation := folderLocation(location, h3)
			if nested := dt.ChildrenFiltered("dl").First(); nested.Length() > 0 {
				if err := walkNetscapeList(nested, childLocation, out, nextID); err != nil {
					walkErr = err
					return false
				}
			}
			return true
		}

		if a := dt.ChildrenFiltered("a").First(); a.Length() > 0 {
			bm, err := bookmarkFromAnchor(a, location, *nextID)
			if err != nil {
				walkErr = err
				return false
			}
			*nextID++
			*out = append(*out, bm)
		}
		return true
	})
	return walkErr
}

// folderLocation extends the location by a folder's name, except for the
// toolbar wrapper folder, which stands in for the root.
func folderLocation(location string, h3 *goquery.Selection) string {
	if _, isToolbar := h3.Attr("personal_toolbar_folder"); isToolbar {
		return location
	}
	name := strings.TrimSpace(h3.Text())
	if location == "" {
		return name
	}
	return location + "/" + name
}

func bookmarkFromAnchor(a *goquery.Selection, location string, id int) (types.Bookmark, error) {
	href, ok := a.Attr("href")
	if !ok || href == "" {
		return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record: anchor %q has no href", strings.TrimSpace(a.Text()))
	}

	addDate, ok := a.Attr("add_date")
	if !ok || addDate == "" {
		return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record: anchor %q has no add_date", strings.TrimSpace(a.Text()))
	}
	dateAdded, err := UnixEpochReadable(addDate)
	if err != nil {
		return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record %q: %w", strings.TrimSpace(a.Text()), err)
	}

	dateModified := ""
	if lastModified, ok := a.Attr("last_modified"); ok && lastModified != "" {
		dateModified, err = UnixEpochReadable(lastModified)
		if err != nil {
			return types.Bookmark{}, fmt.Errorf("cannot construct bookmark record %q: %w", strings.TrimSpace(a.Text()), err)
		}
	}

	return types.Bookmark{
		Id:           strconv.Itoa(id),
		Name:         strings.TrimSpace(a.Text()),
		Type:         nodeTypeURL,
		Url:          href,
		Location:     location,
		DateAdded:    dateAdded,
		DateModified: dateModified,
	}, nil
}
