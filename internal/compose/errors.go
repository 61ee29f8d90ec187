package compose

import (
	"errors"
	"fmt"
	"strings"
)

var errMissingManifest = errors.New("manifest.json not found in project")

// ManifestError reports that the project's manifest.json could not be
// parsed. The composition call returns the input project untouched.
type ManifestError struct {
	Err error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("project manifest is not valid JSON: %v", e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// UnknownFeatureError reports selection ids absent from the catalog.
// Nothing is applied when this is returned: a misspelled id fails the
// whole call instead of being silently dropped.
type UnknownFeatureError struct {
	IDs []string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature id(s): %s", strings.Join(e.IDs, ", "))
}
