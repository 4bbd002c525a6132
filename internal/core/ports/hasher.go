package ports

// FileHasher defines the interface for computing content hashes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type FileHasher interface {
	// ComputeFileHash computes the content hash of a single file.
	ComputeFileHash(path string) (uint64, error)

	// ComputePathHash computes the hash of a file, or of every file below a directory.
	ComputePathHash(path string) (uint64, error)

	// ComputeOutputHash computes a single hash over the given outputs, relative to root.
	ComputeOutputHash(root string, outputs []string) (string, error)
}
