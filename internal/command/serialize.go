package command

import (
	"fmt"
	"os"

	"github.com/trws/chunkwm-tiling/internal/workspace"
)

// Filesystem is the narrow collaborator serialize.go needs for reading
// and writing a persisted layout; an in-memory fake stands in for it in
// tests so this package never touches a real filesystem.
type Filesystem interface {
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
}

type osFilesystem struct{}

func (osFilesystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (osFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFilesystem is the production Filesystem, backed directly by
// the os package.
var DefaultFilesystem Filesystem = osFilesystem{}

// Serialize writes a space's tiling layout to path as a single document
// (metadata, then a "---" line, then the tree buffer). Valid for every mode;
// a non-BSP space persists metadata only, per workspace.Serialize.
func (d *Dispatcher) Serialize(spaceID uint32, path string) error {
	space, release := d.Registry.Acquire(spaceID)
	defer release()

	treeBuf, metaBuf, err := workspace.Serialize(space)
	if err != nil {
		return fmt.Errorf("serialize space %d: %w", spaceID, err)
	}

	doc := metaBuf + "---\n" + treeBuf
	if err := d.fs().WriteFile(path, []byte(doc)); err != nil {
		d.warnf("serialize space %d: write %s: %v", spaceID, path, err)
		return nil
	}
	return nil
}

// Deserialize reads a previously-serialized layout from path and
// restores it into the registry under spaceID, replacing any existing
// state for that space. The command channel's "deserialize" verb calls
// it, so it can run at any point in a session.
func (d *Dispatcher) Deserialize(spaceID uint32, path string) error {
	data, err := d.fs().ReadFile(path)
	if err != nil {
		d.warnf("deserialize space %d: read %s: %v", spaceID, path, err)
		return nil
	}

	metaBuf, treeBuf := splitDoc(string(data))
	s, err := workspace.Deserialize(spaceID, treeBuf, metaBuf)
	if err != nil {
		return fmt.Errorf("deserialize space %d: %w", spaceID, err)
	}
	d.Registry.Restore(s)
	return nil
}

func splitDoc(doc string) (metaBuf, treeBuf string) {
	const sep = "---\n"
	for i := 0; i+len(sep) <= len(doc); i++ {
		if doc[i:i+len(sep)] == sep {
			return doc[:i], doc[i+len(sep):]
		}
	}
	return doc, ""
}

func (d *Dispatcher) fs() Filesystem {
	if d.FS == nil {
		return DefaultFilesystem
	}
	return d.FS
}
