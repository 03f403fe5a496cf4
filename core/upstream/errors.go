package upstream

import "fmt"

// Error describes a failed upstream call. The upstream body is retained so
// handlers can echo the details back to the caller.
type Error struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.Service, e.StatusCode, e.Body)
}
