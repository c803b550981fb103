// Package manifest reads the package version from the project
// manifest.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Files lists the manifests probed in order.
var Files = []string{"deno.json", "jsr.json"}

// Version returns the "version" field of the first manifest found in
// dir, along with the manifest's filename.
func Version(dir string) (string, string, error) {
	for _, name := range Files {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", "", fmt.Errorf("failed to read %s: %w", path, err)
		}

		v := gjson.GetBytes(data, "version")
		if !v.Exists() || v.String() == "" {
			return "", "", fmt.Errorf("%s has no version field", name)
		}
		return v.String(), name, nil
	}
	return "", "", fmt.Errorf("no manifest found in %s (looked for %v)", dir, Files)
}
