// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-clientlib/internal/fileutil"
)

// appName is the directory under the user config dir searched for configs.
const appName = "go-clientlib"

// UserConfigDir locates the user config directory.
var UserConfigDir = os.UserConfigDir

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-clientlib/.
func ForConfigNotFound(name string) string {
	hint := "use --config /path/to/file.yaml"

	if dir, err := UserConfigDir(); err == nil && name != "" && !fileutil.IsFilePath(name) {
		hint += " or create " + filepath.Join(dir, appName, name+".yaml")
	}

	return format(hint)
}

// ForMissingCategories returns hints for includes rendered without categories.
func ForMissingCategories() string {
	return formatHints([]string{
		"pass categories as arguments or with --categories a,b",
		"run 'clientlib categories' to list them",
	})
}

// ForContentRoot returns hints for an unusable content.root.
func ForContentRoot() string {
	return format("content.root must be an existing directory; remove it to use content.allow patterns")
}

// ForPattern returns hints for invalid visibility patterns.
func ForPattern() string {
	return format("patterns are absolute doublestar globs, e.g. /apps/**/clientlibs/**")
}

// ForInvalidFlags returns a hint pointing at the command help.
func ForInvalidFlags(cmd string) string {
	if cmd == "" {
		return format("run 'clientlib help'")
	}
	return format("run 'clientlib help " + cmd + "'")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
