package domain

import (
	"slices"
	"strings"
)

// KeepSet decides which vendor directories survive pruning.
type KeepSet struct {
	keep map[string]struct{}
}

// NewKeepSet builds the keep list: Composer's internal directory, the bin shim directory,
// every registered extension and every resolved runtime dependency.
func NewKeepSet(resolved DependencySet, extensions []string) KeepSet {
	keep := map[string]struct{}{
		ComposerInternalDir: {},
		BinDir:              {},
	}
	for _, name := range extensions {
		keep[name] = struct{}{}
	}
	for _, name := range resolved.Names() {
		keep[name] = struct{}{}
	}
	return KeepSet{keep: keep}
}

// Keeps reports whether rel, a slash separated path relative to vendor/, is kept. A
// namespace directory is kept when it contains a kept path.
func (k KeepSet) Keeps(rel string) bool {
	if _, ok := k.keep[rel]; ok {
		return true
	}
	prefix := rel + "/"
	for kept := range k.keep {
		if strings.HasPrefix(kept, prefix) {
			return true
		}
	}
	return false
}

// PlanPrune returns the directories to delete out of candidates, which are slash
// separated paths relative to vendor/. A path below an already deleted directory is not
// listed again. The result is sorted.
func PlanPrune(candidates []string, keep KeepSet) []string {
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var doomed []string
	for _, rel := range sorted {
		if keep.Keeps(rel) || coveredBy(rel, doomed) {
			continue
		}
		doomed = append(doomed, rel)
	}
	return doomed
}

func coveredBy(rel string, doomed []string) bool {
	for _, d := range doomed {
		if strings.HasPrefix(rel, d+"/") {
			return true
		}
	}
	return false
}
