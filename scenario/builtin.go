package scenario

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtins returns the names of the embedded scenarios, sorted.
func Builtins() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}

	sort.Strings(names)

	return names
}

// Builtin parses an embedded scenario.
func Builtin(name string) (*Document, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown scenario %q, available: %s",
			name, strings.Join(Builtins(), ", "))
	}

	return Parse(data)
}

// Load parses a scenario file, or an embedded scenario when no file has the
// given name.
func Load(nameOrPath string) (*Document, error) {
	data, err := os.ReadFile(nameOrPath)
	if err == nil {
		doc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nameOrPath, err)
		}

		return doc, nil
	}

	if !os.IsNotExist(err) {
		return nil, err
	}

	return Builtin(nameOrPath)
}
