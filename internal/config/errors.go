package config

import "errors"

// ErrInvalidLogFormat indicates that LOG_FORMAT is set to something other
// than "text" or "json".
var ErrInvalidLogFormat = errors.New("LOG_FORMAT must be \"text\" or \"json\"")
