package progrock

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/modelc/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/protobuf/encoding/protojson"
)

var _ progrock.Writer = (*Journal)(nil)

// Journal is a progrock.Writer appending every status update to a file as
// one protojson object per line.
type Journal struct {
	mu sync.Mutex
	f  *os.File
}

// OpenJournal creates or truncates the journal at path.
func OpenJournal(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create journal directory"), "path", path)
	}
	f, err := os.Create(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create journal"), "path", path)
	}
	return &Journal{f: f}, nil
}

// WriteStatus appends update to the journal.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	line, err := protojson.Marshal(update)
	if err != nil {
		return zerr.Wrap(err, "failed to encode journal entry")
	}
	line = append(line, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.f.Write(line); err != nil {
		return zerr.Wrap(err, "failed to write journal entry")
	}
	return nil
}

// Close syncs and closes the journal file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.f.Sync(); err != nil {
		_ = j.f.Close()
		return zerr.Wrap(err, "failed to sync journal")
	}
	return j.f.Close()
}
