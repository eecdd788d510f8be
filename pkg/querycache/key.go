package querycache

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key identifies one cached read as an ordered list of segments, for example
// Key{"bookings", "calendar", 42, DateRange{...}}. Segments must be
// JSON-encodable; two keys are equal when every segment encodes identically,
// so structurally equal structs and maps share an entry.
type Key []any

// encode canonicalizes every segment.
func (k Key) encode() ([]string, error) {
	segs := make([]string, len(k))
	for i, seg := range k {
		b, err := json.Marshal(seg)
		if err != nil {
			return nil, fmt.Errorf("querycache: key segment %d: %w", i, err)
		}
		segs[i] = string(b)
	}
	return segs, nil
}

// String returns the canonical form of the key (a JSON array).
func (k Key) String() string {
	segs, err := k.encode()
	if err != nil {
		return fmt.Sprintf("%v", []any(k))
	}
	return joinSegments(segs)
}

// Append returns a new key with extra segments. The receiver is not modified.
func (k Key) Append(segs ...any) Key {
	out := make(Key, 0, len(k)+len(segs))
	out = append(out, k...)
	return append(out, segs...)
}

func joinSegments(segs []string) string {
	return "[" + strings.Join(segs, ",") + "]"
}

// hasPrefix reports whether segs starts with every segment of prefix.
func hasPrefix(segs, prefix []string) bool {
	if len(prefix) > len(segs) {
		return false
	}
	for i := range prefix {
		if segs[i] != prefix[i] {
			return false
		}
	}
	return true
}
