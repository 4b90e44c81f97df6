// Package versionsync propagates the resolved package version into the other
// files that repeat it, such as package.json or pyproject.toml.
package versionsync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/parser"
)

// Status describes one target after a check or sync.
type Status struct {
	Target  parser.FileConfig
	Found   string // version read before any write; empty on error
	Updated bool
	Err     error
}

// InSync reports whether the target already carried want.
func (s Status) InSync(want string) bool {
	return s.Err == nil && s.Found == want
}

// Syncer reads and writes version fields in sync targets.
type Syncer struct {
	reader *parser.Reader
	writer *parser.Writer
}

// New returns a Syncer backed by fsys.
func New(fsys core.FileSystem) *Syncer {
	return &Syncer{reader: parser.NewReader(fsys), writer: parser.NewWriter(fsys)}
}

// Check reads each target and compares it with version. Nothing is written.
func (s *Syncer) Check(ctx context.Context, version string, targets []parser.FileConfig) []Status {
	out := make([]Status, 0, len(targets))
	for _, t := range targets {
		found, err := s.reader.ReadVersion(ctx, t)
		out = append(out, Status{Target: t, Found: found, Err: err})
	}
	return out
}

// Sync writes version into every target that differs. Targets that cannot be
// read or written are reported in their Status; the others are still processed.
func (s *Syncer) Sync(ctx context.Context, version string, targets []parser.FileConfig) ([]Status, error) {
	statuses := s.Check(ctx, version, targets)

	failed := 0
	for i := range statuses {
		st := &statuses[i]
		if st.InSync(version) {
			continue
		}
		// Raw files may not exist yet; everything else must be readable first.
		if st.Err != nil && (st.Target.Format != parser.FormatRaw || !errors.Is(st.Err, fs.ErrNotExist)) {
			failed++
			continue
		}
		if err := s.writer.Write(ctx, st.Target, version); err != nil {
			st.Err = err
			failed++
			continue
		}
		st.Err = nil
		st.Updated = true
	}

	if failed > 0 {
		return statuses, fmt.Errorf("%d of %d sync targets failed", failed, len(statuses))
	}
	return statuses, nil
}

// Mismatches returns the statuses that do not carry version.
func Mismatches(version string, statuses []Status) []Status {
	var out []Status
	for _, st := range statuses {
		if !st.InSync(version) {
			out = append(out, st)
		}
	}
	return out
}
