package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash digests of files and directory trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// HashFile returns the hex xxhash64 of a file's content.
func (h *Hasher) HashFile(path string) (string, error) {
	sum, err := h.fileSum(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// HashTree digests every file below root: its slash separated relative path followed by
// its content hash. The result does not depend on where root lives.
func (h *Hasher) HashTree(root string) (string, error) {
	digest := xxhash.New()

	for path, err := range h.walker.WalkFiles(root) {
		if err != nil {
			return "", errors.Join(domain.ErrFileHashFailed, zerr.With(zerr.Wrap(err, "walk failed"), "path", path))
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		_, _ = digest.WriteString(filepath.ToSlash(rel))
		_, _ = digest.Write([]byte{0})

		sum, err := h.fileSum(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) fileSum(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by caller
	if err != nil {
		return 0, errors.Join(domain.ErrFileOpenFailed, zerr.With(zerr.Wrap(err, "open failed"), "path", path))
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, errors.Join(domain.ErrFileHashFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}
	return digest.Sum64(), nil
}
