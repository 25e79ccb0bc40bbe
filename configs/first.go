package configs

import (
	"errors"
)

// First decodes the value at path from the first file holding it.
// A missing value is not an error; the zero value is returned.
func First[T any](loader Loader, path string) (T, error) {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, nil
		}
		return value, err
	}
	return value, nil
}
