package domain

import (
	"encoding/json"
	"errors"
	"path"
	"sort"
	"strconv"

	"go.trai.ch/zerr"
)

// Autoload types Composer declares in a package's autoload section.
const (
	AutoloadClassmap            = "classmap"
	AutoloadPSR0                = "psr-0"
	AutoloadPSR4                = "psr-4"
	AutoloadFiles               = "files"
	AutoloadExcludeFromClassmap = "exclude-from-classmap"
)

// StubContent is written into placeholder files: an empty PHP script.
const StubContent = "<?php\n"

// Lockfile is the part of composer.lock the pruner needs. It is the authoritative record
// of what was installed, independent of what still exists on disk.
type Lockfile struct {
	Packages []LockedPackage `json:"packages"`
}

// LockedPackage is one packages[] entry of composer.lock.
type LockedPackage struct {
	Name     string                     `json:"name"`
	Autoload map[string]json.RawMessage `json:"autoload,omitempty"`
	Bin      []string                   `json:"bin,omitempty"`
}

// ParseLockfile decodes composer.lock.
func ParseLockfile(data []byte) (*Lockfile, error) {
	var lock Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, errors.Join(ErrLockfileParse, err)
	}
	return &lock, nil
}

// PlaceholderKind tells whether a placeholder is a directory or a stub file.
type PlaceholderKind int

const (
	// PlaceholderDir is an empty directory.
	PlaceholderDir PlaceholderKind = iota
	// PlaceholderStub is a file containing StubContent.
	PlaceholderStub
)

// String returns the kind name.
func (k PlaceholderKind) String() string {
	if k == PlaceholderStub {
		return "stub"
	}
	return "dir"
}

// Placeholder is a path, relative to vendor/, that must exist so the autoload index can
// be rebuilt after pruning.
type Placeholder struct {
	Path string
	Kind PlaceholderKind
}

// Placeholders plans the reconstruction for every locked package: one directory per
// classmap, psr-0 and psr-4 path, one stub per files entry and per bin entry.
func (l *Lockfile) Placeholders() ([]Placeholder, error) {
	var out []Placeholder
	for _, pkg := range l.Packages {
		planned, err := pkg.placeholders()
		if err != nil {
			return nil, err
		}
		out = append(out, planned...)
	}
	return out, nil
}

func (p LockedPackage) placeholders() ([]Placeholder, error) {
	types := make([]string, 0, len(p.Autoload))
	for t := range p.Autoload {
		types = append(types, t)
	}
	sort.Strings(types)

	var out []Placeholder
	for _, t := range types {
		raw := p.Autoload[t]
		switch t {
		case AutoloadClassmap:
			paths, err := decodePathList(raw)
			if err != nil {
				return nil, p.shapeError(t, err)
			}
			out = p.appendAll(out, paths, PlaceholderDir)
		case AutoloadPSR0, AutoloadPSR4:
			paths, err := decodeNamespaceMap(raw)
			if err != nil {
				return nil, p.shapeError(t, err)
			}
			out = p.appendAll(out, paths, PlaceholderDir)
		case AutoloadFiles:
			paths, err := decodePathList(raw)
			if err != nil {
				return nil, p.shapeError(t, err)
			}
			out = p.appendAll(out, paths, PlaceholderStub)
		case AutoloadExcludeFromClassmap:
		default:
			return nil, errors.Join(
				ErrUnknownAutoloadType,
				zerr.With(zerr.New("unknown autoload type "+strconv.Quote(t)+" in package "+p.Name),
					"package", p.Name),
			)
		}
	}

	return p.appendAll(out, p.Bin, PlaceholderStub), nil
}

func (p LockedPackage) appendAll(out []Placeholder, paths []string, kind PlaceholderKind) []Placeholder {
	for _, rel := range paths {
		out = append(out, Placeholder{Path: path.Join(p.Name, rel), Kind: kind})
	}
	return out
}

func (p LockedPackage) shapeError(autoloadType string, err error) error {
	return errors.Join(ErrInvalidAutoloadPath,
		zerr.With(zerr.With(zerr.Wrap(err, "autoload "+autoloadType), "package", p.Name), "type", autoloadType))
}

func decodePathList(raw json.RawMessage) ([]string, error) {
	var paths []string
	if err := json.Unmarshal(raw, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// decodeNamespaceMap flattens {"Ns\\": "src/"} and {"Ns\\": ["a/", "b/"]} into paths,
// ordered by namespace.
func decodeNamespaceMap(raw json.RawMessage) ([]string, error) {
	var mapping map[string]json.RawMessage
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, err
	}

	namespaces := make([]string, 0, len(mapping))
	for ns := range mapping {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	var paths []string
	for _, ns := range namespaces {
		var single string
		if err := json.Unmarshal(mapping[ns], &single); err == nil {
			paths = append(paths, single)
			continue
		}
		var many []string
		if err := json.Unmarshal(mapping[ns], &many); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "expected string or list of strings"), "namespace", ns)
		}
		paths = append(paths, many...)
	}
	return paths, nil
}
