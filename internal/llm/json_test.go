package llm

import "testing"

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"raw json", `{"a":1}`, `{"a":1}`},
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"fenced array", "```json\n[1,2,3]\n```", `[1,2,3]`},
		{"unfenced prose untouched", "not json at all", "not json at all"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanJSON(tc.input); got != tc.want {
				t.Errorf("CleanJSON(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
