package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PackageVersion is a NuGet package version: one to four numeric parts
// followed by optional pre-release and build labels
// (major.minor.patch.revision-preRelease+build).
type PackageVersion struct {
	Major      int
	Minor      int
	Patch      int
	Revision   int
	PreRelease string
	Build      string
}

var (
	// versionRegex matches package version strings with optional "v" prefix.
	// It captures:
	//   1-4. Numeric parts (parts 2 to 4 optional)
	//   5. (optional) Pre-release label
	//   6. (optional) Build metadata
	versionRegex = regexp.MustCompile(
		`^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?` + // numeric parts
			`(?:-([0-9A-Za-z\-\.]+))?` + // optional pre-release
			`(?:\+([0-9A-Za-z\-\.]+))?$`, // optional build metadata
	)

	// errInvalidVersion is returned when a version string is not a package version.
	errInvalidVersion = errors.New("invalid version format")
)

// maxVersionLength is the maximum allowed length for a version string.
const maxVersionLength = 128

// ParseVersion parses a package version.
//
// Supported formats:
//   - "1.2.3" (basic version)
//   - "2020.11.18" (date-coded version)
//   - "1.2" or "1" (missing parts are zero)
//   - "1.2.3.4" (with revision)
//   - "v1.2.3-rc.1+build.456" (prefix, pre-release and build metadata)
func ParseVersion(s string) (PackageVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return PackageVersion{}, fmt.Errorf("%w: version string exceeds maximum length of %d", errInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return PackageVersion{}, fmt.Errorf("%w: %q", errInvalidVersion, s)
	}

	var nums [4]int
	for i := range nums {
		if matches[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return PackageVersion{}, fmt.Errorf("%w: %s", errInvalidVersion, err.Error())
		}
		nums[i] = n
	}

	return PackageVersion{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		Revision:   nums[3],
		PreRelease: matches[5],
		Build:      matches[6],
	}, nil
}

// IsValid reports whether s parses as a package version.
func IsValid(s string) bool {
	_, err := ParseVersion(s)
	return err == nil
}

// Normalize returns the form NuGet uses in archive file names:
// leading zeros dropped, at least three parts, a zero revision omitted and
// build metadata removed. Strings that do not parse are returned trimmed.
func Normalize(s string) string {
	v, err := ParseVersion(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return v.String()
}

// String returns the normalized representation of the version.
func (v PackageVersion) String() string {
	var sb strings.Builder
	sb.Grow(24)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.Revision != 0 {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(v.Revision))
	}
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	return sb.String()
}

// Compare compares two package versions.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
// Pre-release versions have lower precedence than the associated release
// (e.g., 1.0.0-alpha < 1.0.0). Labels compare case-insensitively and build
// metadata is ignored.
func (v PackageVersion) Compare(other PackageVersion) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	if c := compareInt(v.Revision, other.Revision); c != 0 {
		return c
	}

	switch {
	case v.PreRelease == "" && other.PreRelease == "":
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return comparePreRelease(strings.ToLower(v.PreRelease), strings.ToLower(other.PreRelease))
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	n := min(len(aIDs), len(bIDs))
	for i := range n {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}

	// If equal so far, shorter list has lower precedence.
	return compareInt(len(aIDs), len(bIDs))
}

func compareIdentifier(a, b string) int {
	aNum, aIsNum := parseNumericIdentifier(a)
	bNum, bIsNum := parseNumericIdentifier(b)

	switch {
	case aIsNum && bIsNum:
		return compareInt(aNum, bNum)
	case aIsNum && !bIsNum:
		return -1 // numeric < non-numeric
	case !aIsNum && bIsNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Numeric identifiers: only digits, no leading zeros unless exactly "0".
func parseNumericIdentifier(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
