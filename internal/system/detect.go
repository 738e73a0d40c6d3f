// Package system determines which supported system the current
// invocation targets.
//
// A system can be named two ways: by matching the machine's hostname
// against the regular-expression keys of the supported-systems file,
// or by embedding a system name in the build name itself. When both
// name a system and they disagree, the user must pass --force to let
// the build name win.
package system

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

// Detector supplies the machine's identity. The gopsutil-backed
// implementation is the production one; tests substitute their own.
type Detector interface {
	Hostname(ctx context.Context) (string, error)
}

// RealDetector implements Detector using gopsutil host information.
type RealDetector struct{}

// NewDetector creates a new host identity detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Hostname returns the machine's hostname.
func (d *RealDetector) Hostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("host detection failed: %w", err)
	}
	return info.Hostname, nil
}
