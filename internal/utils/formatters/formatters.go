// Package formatters provides JSON formatting and pretty printing for
// bookmark lists.
package formatters

import (
	"encoding/json"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"

	"github.com/MattThePerson/bookmarks-getter/internal/types"
)

// marshalIndent is used by FormatBookmarksAsJson; tests may override to
// simulate marshal failure.
var marshalIndent = json.MarshalIndent

// formatterMarshal is used by PrintPrettyJson; tests may override to
// simulate formatter marshal failure.
var formatterMarshal = func(f *colorjson.Formatter, obj interface{}) ([]byte, error) { return f.Marshal(obj) }

// FormatBookmarksAsJson renders a bookmark list as a pretty-printed JSON
// array. An empty or nil list renders as "[]" rather than "null".
func FormatBookmarksAsJson(bookmarks []types.Bookmark) (string, error) {
	if len(bookmarks) == 0 {
		return "[]", nil
	}
	jsonData, err := marshalIndent(bookmarks, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal bookmarks: %w", err)
	}
	return string(jsonData), nil
}

// PrintJson prints a given JSON-formatted string to the standard output.
func PrintJson(data string) {
	fmt.Println(data)
}

// PrintPrettyJson takes a JSON string, unmarshals it into an object, and
// prints it with colorized formatting. Optionally, alternate colors can be
// used for keys and strings if useAltColors is provided and set to true.
// Returns an error if JSON unmarshalling or formatting fails.
func PrintPrettyJson(data string, useAltColors ...bool) error {
	var obj interface{}

	if err := json.Unmarshal([]byte(data), &obj); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	f := colorjson.NewFormatter()
	f.Indent = 4

	if len(useAltColors) > 0 && useAltColors[0] {
		f.KeyColor = color.New(color.FgHiCyan)
		f.StringColor = color.New(color.FgHiMagenta)
	}

	s, err := formatterMarshal(f, obj)
	if err != nil {
		return fmt.Errorf("failed to marshal formatted JSON: %w", err)
	}

	fmt.Println(string(s))
	return nil
}
