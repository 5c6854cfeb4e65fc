package definition

import "errors"

var (
	ErrFailedToReadFile  = errors.New("failed to read definition file")
	ErrFailedToParseYAML = errors.New("failed to parse definition YAML")
	ErrEmptyDefinition   = errors.New("definition is empty")
	ErrInvalidDefinition = errors.New("invalid definition")
)
