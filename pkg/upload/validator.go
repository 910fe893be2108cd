package upload

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxNameLength bounds sanitized filenames.
const MaxNameLength = 255

// Options constrains what an upload may be. Zero values disable the
// corresponding check; the extension deny-list always applies.
type Options struct {
	AllowedTypes []string `mapstructure:"allowed_types" json:"allowed_types"`
	MaxSize      int64    `mapstructure:"max_size" json:"max_size"`
}

// Result carries the validation verdict. Errors preserves check order
// (type, size, extension) so messages are deterministic.
type Result struct {
	Valid         bool     `json:"is_valid"`
	Errors        []string `json:"errors"`
	SanitizedName string   `json:"sanitized_name"`
}

// blockedExtensions are rejected regardless of the caller's allow-list.
var blockedExtensions = map[string]struct{}{
	".exe": {}, ".bat": {}, ".cmd": {}, ".scr": {}, ".vbs": {},
	".js": {}, ".jar": {}, ".com": {}, ".pif": {},
}

var (
	unsafeNameCharRe = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	underscoreRunRe  = regexp.MustCompile(`_+`)
)

// ValidateFile sanitizes the filename and checks MIME type, size and
// extension against the options. It never fails; violations accumulate as
// human-readable errors.
func ValidateFile(name, mimeType string, size int64, opts Options) Result {
	result := Result{
		Errors:        []string{},
		SanitizedName: SanitizeName(name),
	}

	if len(opts.AllowedTypes) > 0 && !containsType(opts.AllowedTypes, mimeType) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("file type %q is not allowed", mimeType))
	}

	if opts.MaxSize > 0 && size > opts.MaxSize {
		result.Errors = append(result.Errors,
			fmt.Sprintf("file exceeds maximum size of %d bytes", opts.MaxSize))
	}

	if ext := strings.ToLower(filepath.Ext(result.SanitizedName)); ext != "" {
		if _, blocked := blockedExtensions[ext]; blocked {
			result.Errors = append(result.Errors,
				fmt.Sprintf("file extension %q is not allowed", ext))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// SanitizeName replaces every character outside [A-Za-z0-9._-] with an
// underscore, collapses underscore runs and truncates to MaxNameLength.
func SanitizeName(name string) string {
	sanitized := unsafeNameCharRe.ReplaceAllString(name, "_")
	sanitized = underscoreRunRe.ReplaceAllString(sanitized, "_")
	if len(sanitized) > MaxNameLength {
		sanitized = sanitized[:MaxNameLength]
	}
	return sanitized
}

func containsType(allowed []string, mimeType string) bool {
	for _, t := range allowed {
		if strings.EqualFold(t, mimeType) {
			return true
		}
	}
	return false
}
