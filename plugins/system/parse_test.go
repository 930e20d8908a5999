package system

import "testing"

func TestKVLookup(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		lines []string
		want  string
	}{
		{
			name:  "colon-separated",
			key:   "model name",
			lines: []string{"foo: bar", "model name : X Y Z"},
			want:  "X Y Z",
		},
		{
			name:  "absent-key",
			key:   "missing",
			lines: []string{"foo: bar", "model name : X Y Z"},
			want:  "",
		},
		{
			name:  "equals-separated",
			key:   "hw.machine",
			lines: []string{"hw.machine = amd64"},
			want:  "amd64",
		},
		{
			name:  "case-insensitive",
			key:   "cpu mhz",
			lines: []string{"cpu MHz\t\t: 2400.00"},
			want:  "2400.00",
		},
		{
			name:  "leading-whitespace",
			key:   "enable",
			lines: []string{"  enable:run"},
			want:  "run",
		},
		{
			name:  "first-match-wins",
			key:   "processor",
			lines: []string{"processor : 0", "processor : 1"},
			want:  "0",
		},
		{
			name:  "key-not-prefix-of-longer-key",
			key:   "cpu",
			lines: []string{"cpu MHz : 2400.00", "cpu : TI UltraSparc IIi"},
			want:  "TI UltraSparc IIi",
		},
		{
			name:  "no-lines",
			key:   "anything",
			lines: nil,
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kvLookup(tt.key, tt.lines); got != tt.want {
				t.Errorf("kvLookup(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestCountMatching(t *testing.T) {
	lines := []string{"0 on-line", "1 on-line", "2 faulted"}
	if got := countMatching("on-line", lines); got != 2 {
		t.Errorf("countMatching = %d, want 2", got)
	}
	if got := countMatching("on-line", nil); got != 0 {
		t.Errorf("countMatching(nil) = %d, want 0", got)
	}
}

func TestFirstMatching(t *testing.T) {
	lines := []string{"proc0 Defined", "proc1 Available"}
	got, ok := firstMatching("Available", lines)
	if !ok || got != "proc1 Available" {
		t.Errorf("firstMatching = %q, %v", got, ok)
	}
	if _, ok := firstMatching("Available", nil); ok {
		t.Error("firstMatching(nil) reported a match")
	}
}
