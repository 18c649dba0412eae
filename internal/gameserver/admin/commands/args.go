package commands

import (
	"fmt"
	"strconv"
)

// usageError reports a wrong argument count.
func usageError(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

func parseInt32(what, s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return int32(n), nil
}
