package workspace

import (
	"fmt"

	"github.com/trws/chunkwm-tiling/internal/bsptree"
	"github.com/trws/chunkwm-tiling/internal/region"
	"gopkg.in/yaml.v3"
)

// meta is the small companion document stored alongside the tree's
// opaque text buffer: everything the buffer itself can't express.
type meta struct {
	Mode   string  `yaml:"mode"`
	ZoomID int     `yaml:"zoom_id"` // index into the decoded tree, -1 if none
	Top    float32 `yaml:"offset_top"`
	Bottom float32 `yaml:"offset_bottom"`
	Left   float32 `yaml:"offset_left"`
	Right  float32 `yaml:"offset_right"`
	Gap    float32 `yaml:"offset_gap"`
}

// Serialize renders a space's tree and metadata as two companion
// buffers: the opaque bsptree text buffer, and a small YAML document
// carrying what the buffer can't (mode, zoom target, offset). The tree
// buffer's own format is intentionally opaque per the design note on
// persisted layout; the metadata format is not, since external tooling
// may want to read it.
func Serialize(s *Space) (treeBuf string, metaBuf string, err error) {
	if s.Mode != BSP || s.Tree == nil || s.Tree.Empty() {
		treeBuf = ""
	} else {
		treeBuf = bsptree.EncodeToBuffer(s.Tree, s.Tree.Root())
	}

	m := meta{
		Mode:   s.Mode.String(),
		ZoomID: int(s.Zoom()),
		Top:    s.offset.Top,
		Bottom: s.offset.Bottom,
		Left:   s.offset.Left,
		Right:  s.offset.Right,
		Gap:    s.offset.Gap,
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		return "", "", fmt.Errorf("workspace: marshal metadata: %w", err)
	}
	return treeBuf, string(out), nil
}

// Deserialize reconstructs a space's tree and metadata from buffers
// produced by Serialize. The returned Space is not registered with any
// Registry; the caller installs it via Registry.Restore.
func Deserialize(spaceID uint32, treeBuf, metaBuf string) (*Space, error) {
	s := newSpace(spaceID)

	var m meta
	if err := yaml.Unmarshal([]byte(metaBuf), &m); err != nil {
		return nil, fmt.Errorf("workspace: unmarshal metadata: %w", err)
	}

	switch m.Mode {
	case BSP.String(), "":
		s.Mode = BSP
	case Monocle.String():
		s.Mode = Monocle
	case Float.String():
		s.Mode = Float
	default:
		return nil, fmt.Errorf("workspace: unknown mode %q", m.Mode)
	}
	s.offset = region.Offset{Top: m.Top, Bottom: m.Bottom, Left: m.Left, Right: m.Right, Gap: m.Gap}
	s.offsetActive = true

	if s.Mode == BSP && treeBuf != "" {
		tree, root, err := bsptree.DecodeFromBuffer(treeBuf)
		if err != nil {
			return nil, fmt.Errorf("workspace: decode tree buffer: %w", err)
		}
		s.Tree = tree
		if m.ZoomID >= 0 {
			tree.Node(root).Zoom = bsptree.NodeID(m.ZoomID)
		}
	}

	return s, nil
}

// Restore installs a previously-deserialized Space into the registry,
// replacing any existing state for the same id. Dispatcher.Deserialize
// (the command channel's "deserialize" verb) calls it at any point in a
// session; a caller still holding the replaced *Space keeps that old
// object, which the registry no longer returns.
func (r *Registry) Restore(s *Space) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spaces[s.ID] = s
}
