package bemgen

import "errors"

var (
	// ErrInvalidManifest is returned when a manifest is not a mapping with a
	// "blocks" sequence.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrInvalidCall is returned for a call that is neither a shorthand
	// string, null, nor a flag mapping.
	ErrInvalidCall = errors.New("invalid call")
	// ErrNoManifests is returned when the manifest patterns match no files.
	ErrNoManifests = errors.New("no manifests matched")
)
