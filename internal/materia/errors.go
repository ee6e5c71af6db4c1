package materia

import "errors"

// ErrUnknownSource is returned when a source id is not in the catalog.
var ErrUnknownSource = errors.New("unknown source")
