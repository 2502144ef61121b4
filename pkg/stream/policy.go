package stream

import (
	"fmt"
	"strings"
)

// Policy decides what happens to a classified line the renderer rejects
// because of an unknown severity letter. Only PolicySkip and PolicyAbort drop
// the line; PolicyAbort also ends the stream.
type Policy int

const (
	// PolicyRaw writes the original line unmodified, so a record with a
	// severity letter outside V, D, I, W and E stays visible instead of being
	// dropped. It is the default.
	PolicyRaw Policy = iota
	// PolicySkip drops the line and continues.
	PolicySkip
	// PolicyAbort stops the stream.
	PolicyAbort
)

var policyNames = map[Policy]string{
	PolicyRaw:   "raw",
	PolicySkip:  "skip",
	PolicyAbort: "abort",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy accepts raw, skip or abort (case-insensitive). Empty means raw.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "":
		return PolicyRaw, nil
	case "skip":
		return PolicySkip, nil
	case "abort":
		return PolicyAbort, nil
	default:
		return PolicyRaw, fmt.Errorf("unknown severity policy %q (expected raw, skip, abort)", s)
	}
}
