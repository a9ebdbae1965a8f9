package sponsors

import (
	"fmt"
	"io"
	"net/http"
)

// maxResponseBytes caps a single API response page.
const maxResponseBytes int64 = 4 << 20

// readResponse reads at most limit bytes of resp's body (maxResponseBytes
// when limit is zero) and rejects larger bodies.
func readResponse(resp *http.Response, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = maxResponseBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("response exceeds %d bytes", limit)
	}
	return data, nil
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
