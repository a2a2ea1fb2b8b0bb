package domain

import (
	"bytes"
	"encoding/json"
	"errors"

	"go.trai.ch/zerr"
)

// Manifest is a decoded composer.json document. Only the keys the compiler edits are
// interpreted; everything else is carried through untouched.
type Manifest struct {
	doc map[string]any
}

// ParseManifest decodes a composer.json document. Numbers are kept as json.Number so
// re-encoding does not alter them.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrManifestParse, err)
	}
	if doc == nil {
		return nil, errors.Join(ErrManifestParse, zerr.New("manifest is not a JSON object"))
	}
	return &Manifest{doc: doc}, nil
}

// Marshal encodes the manifest with composer's four-space indentation.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m.doc); err != nil {
		return nil, zerr.Wrap(err, "failed to encode manifest")
	}
	return buf.Bytes(), nil
}

// Lookup returns the value at the given key path.
func (m *Manifest) Lookup(path ...string) (any, bool) {
	var current any = m.doc
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// RemoveDevSections drops require-dev and autoload-dev. Absent keys are left alone.
func (m *Manifest) RemoveDevSections() {
	delete(m.doc, "require-dev")
	delete(m.doc, "autoload-dev")
}

// SetAutoloaderSuffix sets config.autoloader-suffix.
func (m *Manifest) SetAutoloaderSuffix(suffix string) error {
	config, err := childObject(m.doc, "config")
	if err != nil {
		return err
	}
	config["autoloader-suffix"] = suffix
	return nil
}

// IgnoreForCleaner declares files inside pkg that the cleaner plugin must never delete.
func (m *Manifest) IgnoreForCleaner(pkg string, files []string) error {
	config, err := childObject(m.doc, "config")
	if err != nil {
		return err
	}
	ignore, err := childObject(config, "cleaner-ignore")
	if err != nil {
		return err
	}
	list := make([]any, 0, len(files))
	for _, f := range files {
		list = append(list, f)
	}
	ignore[pkg] = list
	return nil
}

// AppendRepository adds a repository entry. A list is appended to, an object gets the
// entry under key, and a missing key becomes a one-element list.
func (m *Manifest) AppendRepository(key string, repo map[string]any) error {
	switch repos := m.doc["repositories"].(type) {
	case nil:
		m.doc["repositories"] = []any{repo}
	case []any:
		m.doc["repositories"] = append(repos, repo)
	case map[string]any:
		repos[key] = repo
	default:
		return shapeError("repositories")
	}
	return nil
}

// SetClassmap replaces autoload.classmap with the single entry path.
func (m *Manifest) SetClassmap(path string) error {
	autoload, err := childObject(m.doc, "autoload")
	if err != nil {
		return err
	}
	autoload["classmap"] = []any{path}
	return nil
}

// childObject returns parent[key] as an object, creating it when absent. PHP encodes an
// empty associative array as [], so an empty list is treated as an empty object.
func childObject(parent map[string]any, key string) (map[string]any, error) {
	switch v := parent[key].(type) {
	case nil:
		obj := make(map[string]any)
		parent[key] = obj
		return obj, nil
	case map[string]any:
		return v, nil
	case []any:
		if len(v) == 0 {
			obj := make(map[string]any)
			parent[key] = obj
			return obj, nil
		}
	}
	return nil, shapeError(key)
}

func shapeError(key string) error {
	return errors.Join(ErrManifestShape, zerr.With(zerr.New("unexpected JSON type at "+key), "key", key))
}

// RepositoryEntry renders the patch source as a composer "package" repository. File
// paths are resolved against patchesDir.
func (p PatchSource) RepositoryEntry(resolve func(file string) string) map[string]any {
	patches := make(map[string]any)
	for _, patch := range p.Patches {
		byPkg, ok := patches[patch.Package].(map[string]any)
		if !ok {
			byPkg = make(map[string]any)
			patches[patch.Package] = byPkg
		}
		byPkg[patch.Description] = resolve(patch.File)
	}

	return map[string]any{
		"type": "package",
		"package": map[string]any{
			"name":    p.Name,
			"version": p.Version,
			"type":    "metapackage",
			"extra": map[string]any{
				"patches": patches,
			},
		},
	}
}
