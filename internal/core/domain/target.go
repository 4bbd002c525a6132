package domain

import (
	"path"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	targetPrefix    = "//"
	flavorSeparator = "#"
	flavorDelimiter = ","
)

// BuildTarget identifies a single action in the build graph.
// The textual form is //base/path:short#flavor1,flavor2.
type BuildTarget struct {
	// BaseName is the package part, always starting with "//".
	BaseName string
	// ShortName is the rule name inside the package.
	ShortName string
	// Flavors is the sorted, deduplicated set of flavors.
	Flavors []string
}

// NewBuildTarget creates a validated build target.
func NewBuildTarget(baseName, shortName string, flavors ...string) (BuildTarget, error) {
	t := BuildTarget{BaseName: baseName, ShortName: shortName}
	if err := validateBaseName(baseName); err != nil {
		return BuildTarget{}, err
	}
	if err := validateName(shortName, "short_name"); err != nil {
		return BuildTarget{}, zerr.With(err, "target", baseName+":"+shortName)
	}
	for _, f := range flavors {
		if err := validateName(f, "flavor"); err != nil {
			return BuildTarget{}, zerr.With(err, "target", baseName+":"+shortName)
		}
	}
	t.Flavors = normalizeFlavors(flavors)
	return t, nil
}

// ParseBuildTarget parses the textual form of a build target.
func ParseBuildTarget(s string) (BuildTarget, error) {
	name, flavorList, hasFlavors := strings.Cut(s, flavorSeparator)
	idx := strings.LastIndex(name, ":")
	if idx < 0 {
		return BuildTarget{}, zerr.With(zerr.Wrap(ErrInvalidBuildTarget, "missing ':'"), "target", s)
	}

	var flavors []string
	if hasFlavors {
		if flavorList == "" {
			return BuildTarget{}, zerr.With(zerr.Wrap(ErrInvalidBuildTarget, "empty flavor list"), "target", s)
		}
		flavors = strings.Split(flavorList, flavorDelimiter)
	}

	t, err := NewBuildTarget(name[:idx], name[idx+1:], flavors...)
	if err != nil {
		return BuildTarget{}, zerr.With(err, "input", s)
	}
	return t, nil
}

// BasePath returns the package path relative to the project root.
func (t BuildTarget) BasePath() string {
	return strings.TrimPrefix(t.BaseName, targetPrefix)
}

// ShortNameAndFlavorPostfix returns the short name followed by "#flavors" when flavored.
func (t BuildTarget) ShortNameAndFlavorPostfix() string {
	if len(t.Flavors) == 0 {
		return t.ShortName
	}
	return t.ShortName + flavorSeparator + strings.Join(t.Flavors, flavorDelimiter)
}

// FullyQualifiedName returns the canonical textual form of the target.
func (t BuildTarget) FullyQualifiedName() string {
	return t.BaseName + ":" + t.ShortNameAndFlavorPostfix()
}

// String implements fmt.Stringer.
func (t BuildTarget) String() string {
	return t.FullyQualifiedName()
}

// IsFlavored reports whether the target carries any flavor.
func (t BuildTarget) IsFlavored() bool {
	return len(t.Flavors) > 0
}

// HasFlavor reports whether the target carries the given flavor.
func (t BuildTarget) HasFlavor(flavor string) bool {
	_, found := slices.BinarySearch(t.Flavors, flavor)
	return found
}

// WithFlavors returns a copy of the target with the given flavors added.
func (t BuildTarget) WithFlavors(flavors ...string) BuildTarget {
	merged := make([]string, 0, len(t.Flavors)+len(flavors))
	merged = append(merged, t.Flavors...)
	merged = append(merged, flavors...)
	return BuildTarget{
		BaseName:  t.BaseName,
		ShortName: t.ShortName,
		Flavors:   normalizeFlavors(merged),
	}
}

// Unflavored returns the target without any flavors.
func (t BuildTarget) Unflavored() BuildTarget {
	return BuildTarget{BaseName: t.BaseName, ShortName: t.ShortName}
}

func normalizeFlavors(flavors []string) []string {
	if len(flavors) == 0 {
		return nil
	}
	sorted := slices.Clone(flavors)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

func validateBaseName(baseName string) error {
	if !strings.HasPrefix(baseName, targetPrefix) {
		return zerr.With(zerr.Wrap(ErrInvalidBuildTarget, "base name must start with //"), "base_name", baseName)
	}
	p := strings.TrimPrefix(baseName, targetPrefix)
	if p == "" {
		return nil
	}
	if strings.ContainsAny(p, ":#,\\") {
		return zerr.With(zerr.Wrap(ErrInvalidBuildTarget, "base name contains a reserved character"), "base_name", baseName)
	}
	if path.Clean(p) != p || strings.HasPrefix(p, "/") || p == "." {
		return zerr.With(zerr.Wrap(ErrInvalidBuildTarget, "base name is not a clean relative path"), "base_name", baseName)
	}
	for seg := range strings.SplitSeq(p, "/") {
		if seg == ".." {
			return zerr.With(zerr.Wrap(ErrInvalidBuildTarget, "base name escapes the project root"), "base_name", baseName)
		}
	}
	return nil
}

func validateName(name, field string) error {
	if name == "" {
		return zerr.With(zerr.Wrap(ErrInvalidBuildTarget, field+" is empty"), "field", field)
	}
	if strings.ContainsAny(name, "/:#,\\ \t\n") || name == "." || name == ".." {
		return zerr.With(zerr.Wrap(ErrInvalidBuildTarget, field+" contains a reserved character"), field, name)
	}
	return nil
}
