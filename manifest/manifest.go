package manifest

import (
	"encoding/json"
	"io"

	"github.com/birkland/assetpath/fsys"
	"github.com/birkland/assetpath/internal/rootpath"
	"github.com/pkg/errors"
)

// File is the name of the manifest file within an asset directory
const File = "versions.json"

// ErrNoLatest indicates a manifest that parsed, but does not name a latest
// version.
var ErrNoLatest = errors.New("manifest has no string value for 'latest'")

// Manifest defines the contents of an asset's versions.json
type Manifest struct {
	Name   string `json:"name,omitempty"`
	Latest string `json:"latest"`
}

// Path is the location of the manifest for the named asset under the given
// asset root.  It is empty if either is empty.
func Path(root, name string) string {
	if name == "" {
		return ""
	}
	return rootpath.Join(root, name+"/"+File)
}

// Parse parses a byte stream into manifest metadata.  The stream must hold
// exactly one JSON object.
func Parse(r io.Reader, m *Manifest) error {
	var doc map[string]json.RawMessage

	dec := json.NewDecoder(r)
	err := dec.Decode(&doc)
	if err != nil {
		return errors.Wrap(err, "could not decode json manifest")
	}

	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected content after json manifest")
	}

	if doc == nil {
		return errors.New("json manifest is not an object")
	}

	raw, ok := doc["latest"]
	if !ok {
		return ErrNoLatest
	}
	if err := json.Unmarshal(raw, &m.Latest); err != nil || string(raw) == "null" {
		return ErrNoLatest
	}

	// name is informational, so a value that is not a string is ignored
	if raw, ok := doc["name"]; ok {
		var name string
		if json.Unmarshal(raw, &name) == nil {
			m.Name = name
		}
	}

	return nil
}

// Serialize writes the contents of the manifest to json
func (m *Manifest) Serialize(w io.Writer) error {
	return json.NewEncoder(w).Encode(m)
}

// Read reads the manifest of the named asset under the given asset root
func Read(fs fsys.FileSystem, root, name string) (m *Manifest, err error) {
	path := Path(root, name)
	if path == "" {
		return nil, errors.New("no asset root or asset name given")
	}

	file, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open manifest at %s", path)
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing manifest at %s", path)
		}
	}()

	m = &Manifest{}
	err = Parse(file, m)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse manifest at %s", path)
	}

	return m, nil
}
