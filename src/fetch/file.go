package fetch

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads a fragment from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return s.Path }

func (s FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("fetch: read %s: %w", s.Path, err)
	}
	return string(data), nil
}
