package hookline

import "strings"

// Wildcard is the universal pattern. Handlers registered under it receive
// every event regardless of type, before any pattern-matched handlers.
const Wildcard = "*"

// Matches reports whether an event type name matches a subscription pattern.
//
// Supported patterns:
//
//	"im.message.receive_v1"  → exact match
//	"im.message.*"           → matches any type under the im.message prefix
//	"*"                      → matches everything
//
// Matching is case-sensitive and performs no normalization. A prefix
// pattern requires a trailing segment: "im.message.*" matches
// "im.message.receive_v1" but not "im.message" itself. Malformed patterns
// are not rejected; they simply never match.
func Matches(pattern, eventType string) bool {
	if pattern == Wildcard {
		return true
	}

	if pattern == eventType {
		return true
	}

	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		return strings.HasPrefix(eventType, prefix+".")
	}

	return false
}
