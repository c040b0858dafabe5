// ABOUTME: Audio file discovery for the batch processor
// ABOUTME: Selects supported files, skips the backup dir and the executable
package batch

import (
	"os"
	"sort"

	"github.com/sfxkit/respeed-go/pkg/audio/decode"
)

// discover lists audio file names in dir, sorted. Directories (including the
// backup subdirectory), dotfiles, the running executable, and files with
// unrecognized extensions are skipped.
func discover(dir, selfName string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == selfName {
			continue
		}
		if name[0] == '.' {
			// hidden files, editor droppings, leftover temp outputs
			continue
		}
		if !decode.Supported(name) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
