package runtime

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// Loader resolves names of included scripts to their text.
type Loader interface {
	Load(name string) (string, error)
}

// NoOpLoader finds nothing.
type NoOpLoader struct{}

// Load always fails with NotFound.
func (NoOpLoader) Load(name string) (string, error) {
	return "", &LoadError{Name: name, Kind: NotFound}
}

// MapLoader serves scripts from memory.
type MapLoader map[string]string

// Load returns the script stored under name.
func (m MapLoader) Load(name string) (string, error) {
	if code, ok := m[name]; ok {
		return code, nil
	}
	return "", &LoadError{Name: name, Kind: NotFound}
}

// FSLoader reads scripts from a directory. Names are interpreted relative to
// Root and cannot escape it.
type FSLoader struct {
	Root string
}

// Load reads the script file name below Root.
func (l FSLoader) Load(name string) (string, error) {
	path := filepath.Join(l.Root, filepath.Clean(string(filepath.Separator)+name))
	tracer().Debugf("loading %s", path)
	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &LoadError{Name: name, Kind: NotFound, Err: err}
		}
		return "", &LoadError{Name: name, Kind: IO, Err: err}
	}
	return string(b), nil
}
