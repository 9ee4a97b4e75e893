package parse

import (
	"fmt"
	"regexp"
	"strconv"
)

var slotRe = regexp.MustCompile(`^\s*(\d{1,2}):(\d{1,2})\s*$`)

// Slot parses the wire form "start:end" of a half-open hour slot. The start
// must precede the end; range checks against the day window belong to the
// booking core.
func Slot(raw string) (start, end int, err error) {
	m := slotRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, fmt.Errorf("unable to parse slot: %q", raw)
	}
	start, _ = strconv.Atoi(m[1])
	end, _ = strconv.Atoi(m[2])
	if start >= end {
		return 0, 0, fmt.Errorf("slot start must precede end: %q", raw)
	}
	return start, end, nil
}
