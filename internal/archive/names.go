package archive

import (
	"path/filepath"
	"strings"

	"github.com/oxur/fermata/internal/validation"
)

// scoreExts are stripped by ScoreName, longest first.
var scoreExts = []string{
	".musicxml.gz", ".musicxml.xz", ".xml.gz", ".xml.xz",
	".tar.gz", ".tar.xz",
	".musicxml", ".xml", ".mxl", ".tgz", ".txz", ".gz", ".xz",
}

// ScoreName returns the base name of a score file without its container
// and format extensions: "scores/bwv1.musicxml.gz" gives "bwv1".
func ScoreName(filename string) string {
	base := filepath.Base(filename)
	lower := strings.ToLower(base)
	for _, ext := range scoreExts {
		if strings.HasSuffix(lower, ext) && len(base) > len(ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// RootfileName is the name the score takes inside an .mxl archive written
// to path.
func RootfileName(path string) (string, error) {
	return validation.SanitizeFilename(ScoreName(path) + ".musicxml")
}
