package recordkit

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the engine Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
