package texture

import "errors"

var (
	// ErrUnreadable indicates the texture file could not be opened or read.
	ErrUnreadable = errors.New("texture: cannot read texture file")

	// ErrMalformed indicates content that does not describe a character grid.
	ErrMalformed = errors.New("texture: malformed texture map")

	// ErrUnknownSource indicates an unrecognized glyph source name.
	ErrUnknownSource = errors.New("texture: unknown glyph source")
)
