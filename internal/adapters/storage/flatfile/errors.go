package flatfile

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jsamuelsen11/go-content-blueprints/internal/domain"
)

// translateFSError maps filesystem errors to domain errors so callers can use
// errors.Is against the domain sentinels.
func translateFSError(err error) error {
	if err == nil {
		return nil
	}

	var pathErr *fs.PathError
	path := ""
	if errors.As(err, &pathErr) {
		path = pathErr.Path
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: permission denied: %w", path, domain.ErrUnavailable)
	default:
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
}
