package system

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZebulonRouseFrantzich/loadenv/internal/config"
	"github.com/ZebulonRouseFrantzich/loadenv/internal/testutil"
)

// MockDetector is a test implementation of Detector.
type MockDetector struct {
	hostname string
	err      error
}

// NewMockDetector creates a mock detector with specified return values.
func NewMockDetector(hostname string, err error) Detector {
	return &MockDetector{hostname: hostname, err: err}
}

// Hostname returns the pre-configured hostname and error.
func (m *MockDetector) Hostname(ctx context.Context) (string, error) {
	return m.hostname, m.err
}

const supportedSystems = `[machine-type-1]
mutrino
.*eclipse.*

[machine-type-4]
stria

[ride]
white
ride
`

func loadSystems(t *testing.T, contents string) *config.Store {
	t.Helper()

	path := testutil.WriteINI(t, "supported-systems.ini", contents)
	store, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}

func TestFromHostname(t *testing.T) {
	store := loadSystems(t, supportedSystems)

	tests := []struct {
		hostname string
		want     string
		found    bool
	}{
		{"mutrino", "machine-type-1", true},
		{"eclipse-login1", "machine-type-1", true},
		{"stria", "machine-type-4", true},
		{"white23", "ride", true},
		{"unknown-host", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.hostname, func(t *testing.T) {
			got, found, err := FromHostname(tt.hostname, store)
			if err != nil {
				t.Fatalf("FromHostname() error = %v", err)
			}
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("system = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromHostname_FirstSectionWins(t *testing.T) {
	store := loadSystems(t, `[first]
node.*

[second]
node01
`)

	got, found, err := FromHostname("node01", store)
	if err != nil {
		t.Fatalf("FromHostname() error = %v", err)
	}
	if !found || got != "first" {
		t.Errorf("system = %q (found %v), want first", got, found)
	}
}

func TestFromHostname_BadPattern(t *testing.T) {
	store := loadSystems(t, `[broken]
*badpattern
`)

	_, _, err := FromHostname("anything", store)
	var badErr *BadPatternError
	if !errors.As(err, &badErr) {
		t.Fatalf("error = %v, want *BadPatternError", err)
	}
	if badErr.System != "broken" {
		t.Errorf("System = %q, want broken", badErr.System)
	}
	if !strings.Contains(badErr.Diagnostic().Text, "'*badpattern'") {
		t.Errorf("diagnostic missing pattern: %q", badErr.Diagnostic().Text)
	}
}

func TestFromBuildName(t *testing.T) {
	store := loadSystems(t, supportedSystems)

	tests := []struct {
		name      string
		buildName string
		want      string
		found     bool
	}{
		{"named system", "machine-type-1-intel-openmp", "machine-type-1", true},
		{"no system", "intel-hsw-openmp", "", false},
		{"system mid-string", "Pullrequest-ride-cuda-9.2", "ride", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := FromBuildName(tt.buildName, store)
			if err != nil {
				t.Fatalf("FromBuildName() error = %v", err)
			}
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("system = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromBuildName_Ambiguous(t *testing.T) {
	store := loadSystems(t, supportedSystems)

	_, _, err := FromBuildName("machine-type-1-ride-intel", store)
	var ambErr *AmbiguousSystemError
	if !errors.As(err, &ambErr) {
		t.Fatalf("error = %v, want *AmbiguousSystemError", err)
	}
	if len(ambErr.Matches) != 2 {
		t.Fatalf("Matches = %v, want 2 systems", ambErr.Matches)
	}

	rendered := ambErr.Diagnostic().String()
	if !strings.Contains(rendered, "Cannot specify more than one system name") {
		t.Errorf("diagnostic missing summary:\n%s", rendered)
	}
	if !strings.Contains(rendered, "|   - machine-type-1") ||
		!strings.Contains(rendered, "|   - ride") {
		t.Errorf("diagnostic missing listed systems:\n%s", rendered)
	}
}

func TestDetermine(t *testing.T) {
	tests := []struct {
		name      string
		hostname  string
		buildName string
		force     bool
		want      string
		wantErr   any
	}{
		{
			name:      "hostname only",
			hostname:  "mutrino",
			buildName: "intel-hsw-openmp",
			want:      "machine-type-1",
		},
		{
			name:      "build name only",
			hostname:  "laptop",
			buildName: "ride-cuda-9.2",
			want:      "ride",
		},
		{
			name:      "hostname and build name agree",
			hostname:  "white23",
			buildName: "ride-cuda-9.2",
			want:      "ride",
		},
		{
			name:      "mismatch without force",
			hostname:  "mutrino",
			buildName: "ride-cuda-9.2",
			wantErr:   new(*MismatchError),
		},
		{
			name:      "mismatch with force",
			hostname:  "mutrino",
			buildName: "ride-cuda-9.2",
			force:     true,
			want:      "ride",
		},
		{
			name:      "no system anywhere",
			hostname:  "laptop",
			buildName: "intel-hsw-openmp",
			wantErr:   new(*UnknownSystemError),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := loadSystems(t, supportedSystems)
			det := NewMockDetector(tt.hostname, nil)

			got, err := Determine(context.Background(), det, store, tt.buildName, tt.force)
			if tt.wantErr != nil {
				if !errors.As(err, tt.wantErr) {
					t.Fatalf("error = %v, want %T", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Determine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("system = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermine_DetectorError(t *testing.T) {
	store := loadSystems(t, supportedSystems)
	wantErr := errors.New("no host info")
	det := NewMockDetector("", wantErr)

	_, err := Determine(context.Background(), det, store, "intel-hsw-openmp", false)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestMismatchErrorDiagnostic(t *testing.T) {
	err := &MismatchError{
		Hostname:        "mutrino",
		HostSystem:      "machine-type-1",
		RequestedSystem: "ride",
		Filename:        "supported-systems.ini",
	}

	text := err.Diagnostic().Text
	for _, want := range []string{
		"Hostname 'mutrino' matched to system 'machine-type-1'",
		"you specified 'ride' in the build name",
		"add the --force flag",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("diagnostic missing %q:\n%s", want, text)
		}
	}
}
