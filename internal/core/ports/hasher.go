package ports

// Hasher computes content digests for provenance records.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the hex digest of a file's content.
	HashFile(path string) (string, error)
	// HashTree returns a digest over every file path and content below root.
	HashTree(root string) (string, error)
}
