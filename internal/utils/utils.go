// Package utils provides filesystem helpers.
package utils

import (
	"os"
)

// EnsureDirExists checks if a directory exists at the given path and creates it
// if it does not. Returns an error if the directory cannot be created or accessed.
func EnsureDirExists(path string) error {
	// Check if the directory exists
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		// Create the directory if it doesn't exist
		err := os.MkdirAll(path, os.ModePerm)
		if err != nil {
			return err
		}

	} else if err != nil {
		return err
	}
	return nil
}
