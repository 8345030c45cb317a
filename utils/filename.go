package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GenerateUniqueFilename returns a filename that does not collide with
// an existing file in dir, by suffixing the base name with a short
// uuid fragment when needed.
func GenerateUniqueFilename(dir, filename string) string {
	base := filepath.Base(filename)
	if _, err := os.Stat(filepath.Join(dir, base)); os.IsNotExist(err) {
		return base
	}

	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%s%s", name, uuid.NewString()[:8], ext)
}
