package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/armcalc/internal/sysmon"
)

const (
	// CurrentProfileVersion is bumped on breaking changes of the format.
	CurrentProfileVersion = 1
	// DefaultProfileFileName is the profile file name in the home directory.
	DefaultProfileFileName = ".armcalc_calibration.json"
)

// Profile caches a calibrated repeat count with the hardware it was
// measured on.
type Profile struct {
	CPUModel  string `json:"cpu_model"`
	NumCPU    int    `json:"num_cpu"`
	GOARCH    string `json:"goarch"`
	GOOS      string `json:"goos"`
	GoVersion string `json:"go_version"`

	Repeat    int           `json:"repeat"`
	Target    time.Duration `json:"target_ns"`
	Candidate uint64        `json:"candidate"`
	Steps     []Step        `json:"steps,omitempty"`

	CalibratedAt   time.Time `json:"calibrated_at"`
	ProfileVersion int       `json:"profile_version"`
}

// GetDefaultProfilePath returns ~/.armcalc_calibration.json, or the bare
// file name when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// NewProfile records res against the current hardware.
func NewProfile(res Result, candidate uint64, target time.Duration) *Profile {
	return &Profile{
		CPUModel:       sysmon.CPUModel(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		Repeat:         res.Repeat,
		Target:         target,
		Candidate:      candidate,
		Steps:          res.Steps,
		CalibratedAt:   time.Now(),
		ProfileVersion: CurrentProfileVersion,
	}
}

// LoadProfile reads a profile; an empty path means the default path.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}

// SaveProfile writes the profile; an empty path means the default path.
func (p *Profile) SaveProfile(path string) error {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// IsValid reports whether the profile was produced by this format version
// on matching hardware for the given target, with a usable repeat count.
func (p *Profile) IsValid(target time.Duration) bool {
	if p == nil || p.ProfileVersion != CurrentProfileVersion || p.Repeat <= 0 {
		return false
	}
	return p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.GoVersion == runtime.Version() &&
		p.Target == target
}

// IsStale reports whether the profile is older than maxAge.
func (p *Profile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}
