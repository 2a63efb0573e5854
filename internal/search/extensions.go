package search

import (
	"fmt"
	"regexp"
	"strings"

	"fileseek/internal/domain"
)

// Preset is a named, predefined set of file extensions used as a quick
// filter.
type Preset string

const (
	PresetAll       Preset = "All"
	PresetImages    Preset = "Images"
	PresetDocuments Preset = "Documents"
	PresetCode      Preset = "Code"
)

// Presets lists the available presets in display order.
var Presets = []Preset{PresetAll, PresetImages, PresetDocuments, PresetCode}

var presetExtensions = map[Preset][]string{
	PresetAll:       {},
	PresetImages:    {"jpg", "jpeg", "png", "gif", "bmp", "webp"},
	PresetDocuments: {"pdf", "doc", "docx", "txt", "md", "rtf"},
	PresetCode:      {"py", "js", "ts", "java", "c", "cpp", "h", "hpp", "go", "rs"},
}

// PresetExtensions resolves a preset to its extension set. PresetAll
// resolves to the empty set, which means no filter.
func PresetExtensions(p Preset) (domain.ExtensionSet, error) {
	exts, ok := presetExtensions[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, p)
	}
	return domain.NewExtensionSet(exts...), nil
}

// PresetText renders a preset as the comma-separated text shown in the
// extensions field when the preset is selected.
func PresetText(p Preset) string {
	return strings.Join(presetExtensions[p], ",")
}

// PresetByName returns the preset matching name, defaulting to PresetAll.
func PresetByName(name string) Preset {
	for _, p := range Presets {
		if strings.EqualFold(string(p), name) {
			return p
		}
	}
	return PresetAll
}

// Extensions are plain alphanumeric names like "txt" or "jpeg".
var extensionPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ParseExtensions parses a free-text, comma-separated extension list into a
// set. Parts are trimmed, leading dots stripped and names lower-cased.
// Empty input yields an empty set (no filter). Parts that are not purely
// alphanumeric make the whole input invalid.
func ParseExtensions(text string) (domain.ExtensionSet, error) {
	parts := make([]string, 0)
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), ".")
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return domain.NewExtensionSet(), nil
	}

	var invalid []string
	for _, part := range parts {
		if !extensionPattern.MatchString(part) {
			invalid = append(invalid, part)
		}
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, strings.Join(invalid, ", "))
	}

	return domain.NewExtensionSet(parts...), nil
}
