package calibration

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// CurrentProfileVersion is bumped when the profile layout changes.
	CurrentProfileVersion = 1
	// DefaultProfileFileName is the profile file in the user's home.
	DefaultProfileFileName = ".bigcalc_calibration.toml"
	// MaxProfileAge is how long a saved cutoff is trusted.
	MaxProfileAge = 90 * 24 * time.Hour
)

// Profile is a cached calibration result tied to the machine that
// produced it.
type Profile struct {
	ProfileVersion  int       `toml:"profile_version"`
	CalibratedAt    time.Time `toml:"calibrated_at"`
	NumCPU          int       `toml:"num_cpu"`
	GOARCH          string    `toml:"goarch"`
	GOOS            string    `toml:"goos"`
	GoVersion       string    `toml:"go_version"`
	WordSize        int       `toml:"word_size"`
	KaratsubaCutoff int       `toml:"karatsuba_cutoff"`
	OperandLimbs    int       `toml:"operand_limbs"`
	CalibrationTime string    `toml:"calibration_time"`
}

// NewProfile returns a profile describing the current machine, without
// calibration results.
func NewProfile() *Profile {
	return &Profile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
	}
}

// GetDefaultProfilePath returns the profile path in the home directory, or
// in the working directory when home is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// SaveProfile writes the profile to path.
func (p *Profile) SaveProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*Profile, error) {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path. When it is missing or
// unreadable a fresh profile is returned and loaded is false.
func LoadOrCreateProfile(path string) (profile *Profile, loaded bool) {
	p, err := loadProfile(path)
	if err != nil {
		return NewProfile(), false
	}
	return p, true
}

// IsValid reports whether the profile was produced on this machine layout
// by this profile version and holds a usable cutoff.
func (p *Profile) IsValid() bool {
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63) &&
		p.KaratsubaCutoff >= 1
}

// IsStale reports whether the profile is older than maxAge.
func (p *Profile) IsStale(maxAge time.Duration) bool {
	return time.Since(p.CalibratedAt) > maxAge
}

// String summarizes the profile on one line.
func (p *Profile) String() string {
	return fmt.Sprintf("karatsuba cutoff %d limbs (measured on %d-limb operands, %s/%s, %d CPUs, %s)",
		p.KaratsubaCutoff, p.OperandLimbs, p.GOOS, p.GOARCH, p.NumCPU, p.CalibratedAt.Format(time.RFC3339))
}
