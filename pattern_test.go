package hookline

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		eventType string
		want      bool
	}{
		{"wildcard matches anything", "*", "im.message.receive_v1", true},
		{"wildcard matches empty type", "*", "", true},
		{"exact match", "im.message.receive_v1", "im.message.receive_v1", true},
		{"exact mismatch", "im.message.receive_v1", "im.message.read_v1", false},
		{"prefix matches child", "im.message.*", "im.message.receive_v1", true},
		{"prefix matches deep child", "im.*", "im.message.receive_v1", true},
		{"prefix does not match bare prefix", "im.message.*", "im.message", false},
		{"prefix does not match sibling", "im.message.*", "im.chat.updated_v1", false},
		{"prefix does not match partial segment", "im.mess.*", "im.message.receive_v1", false},
		{"empty pattern matches empty type", "", "", true},
		{"empty pattern does not match nonempty type", "", "im.message.receive_v1", false},
		{"case sensitive", "im.Message.*", "im.message.receive_v1", false},
		{"no trimming", " im.message.receive_v1", "im.message.receive_v1", false},
		{"degenerate dot-star matches leading dot", ".*", ".weird", true},
		{"degenerate dot-star rejects normal type", ".*", "im.message.receive_v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.pattern, tt.eventType); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.eventType, got, tt.want)
			}
		})
	}
}
