package specfile

import (
	"errors"
	"fmt"
)

var (
	ErrNoSource             = errors.New("no source data provided")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrDecode               = errors.New("failed to decode machine description")
)

func fileError(err error, path string) error {
	return fmt.Errorf("%w: %s", err, path)
}
