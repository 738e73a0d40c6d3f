package keyword

import "testing"

func TestMatchLongest(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "longest wins over shorter prefix",
			s:          "intel-19-foo",
			candidates: []string{"intel", "intel-19"},
			want:       "intel-19",
			wantOK:     true,
		},
		{
			name:       "order of the list does not change the winner",
			s:          "intel-19-foo",
			candidates: []string{"intel-19", "intel"},
			want:       "intel-19",
			wantOK:     true,
		},
		{
			name:       "equal lengths keep original order",
			s:          "aaa-bbb",
			candidates: []string{"aaa", "bbb"},
			want:       "aaa",
			wantOK:     true,
		},
		{
			name:       "match anywhere in the string",
			s:          "prefix-intel-suffix",
			candidates: []string{"intel"},
			want:       "intel",
			wantOK:     true,
		},
		{
			name:       "no match",
			s:          "totally-bogus",
			candidates: []string{"intel", "gnu"},
			wantOK:     false,
		},
		{
			name:       "empty candidate list",
			s:          "anything",
			candidates: nil,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchLongest(tt.s, tt.candidates)
			if ok != tt.wantOK {
				t.Fatalf("matchLongest(%q) ok = %v, want %v", tt.s, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("matchLongest(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestMatchLongest_DoesNotMutateInput(t *testing.T) {
	candidates := []string{"a", "bbb", "cc"}
	matchLongest("bbb", candidates)

	want := []string{"a", "bbb", "cc"}
	for i := range want {
		if candidates[i] != want[i] {
			t.Fatalf("input slice mutated: %v", candidates)
		}
	}
}
