package anniversary

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument = errors.New("illegal argument")
	ErrCronParse       = errors.New("parse cron expression")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// CronParseError returns a cron parse error with a custom error message,
// which unwraps to ErrCronParse. It is exported for period implementations
// that parse schedule expressions.
func CronParseError(message string) error {
	return fmt.Errorf("%w: %s", ErrCronParse, message)
}
