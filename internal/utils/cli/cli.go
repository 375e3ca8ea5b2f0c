// Package cli provides Cobra flag registration helpers.
package cli

import (
	"reflect"

	"github.com/spf13/cobra"
)

// RegisterFlag registers a command-line flag for a Cobra command based on the
// provided name, shorthand, default value, usage description, and target
// variable. It supports the bool, string, and string slice flags this CLI
// uses, ensuring the target is a pointer. An unsupported value type panics
// at startup.
func RegisterFlag(cmd *cobra.Command, name, shorthand string, value interface{}, usage string, target interface{}) {
	targetValue := reflect.ValueOf(target)

	// Ensure target is a pointer
	if targetValue.Kind() != reflect.Ptr {
		panic("target must be a pointer")
	}

	// Format the usage string, adding the implicit default for bool flags
	switch v := value.(type) {
	case bool:
		if !v {
			usage += "\n (default false)"
		} else {
			usage += "\n"
		}
	case string, []string:
		usage += "\n"
	default:
		panic("unsupported flag type")
	}

	// Register the flag based on the target's element type
	switch elem := targetValue.Elem(); elem.Kind() {
	case reflect.Bool:
		cmd.Flags().BoolVarP(target.(*bool), name, shorthand, value.(bool), usage)
	case reflect.String:
		cmd.Flags().StringVarP(target.(*string), name, shorthand, value.(string), usage)
	case reflect.Slice:
		if elem.Type().Elem().Kind() == reflect.String {
			cmd.Flags().StringSliceVarP(target.(*[]string), name, shorthand, value.([]string), usage)
		} else {
			panic("unsupported slice type")
		}
	default:
		panic("unsupported flag type")
	}
}
