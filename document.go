package sketch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Document is an ordered collection of shapes. Shapes are kept in
// z-order, bottom to top; ShapeAt and ShapesWithin dispatch hit-testing
// through the kind registry so all shape kinds are treated uniformly.
//
// A document is owned by one logical caller at a time (the command or
// transaction layer above it) and performs no internal locking.
type Document struct {
	ID     string
	shapes map[string]*Shape
	order  []string // z-order, bottom to top
}

// NewDocument creates an empty document with a fresh identifier.
func NewDocument() *Document {
	return &Document{
		ID:     uuid.NewString(),
		shapes: make(map[string]*Shape),
	}
}

// Len returns the number of shapes in the document.
func (d *Document) Len() int {
	return len(d.order)
}

// Add appends shapes to the top of the z-order. A shape whose ID is
// already present replaces the existing shape in place, keeping its
// z-position. Shapes without a parent reference are parented to the
// document itself and given the next ordering index; an explicitly
// parented shape keeps the index it arrived with.
func (d *Document) Add(shapes ...*Shape) {
	for _, s := range shapes {
		_, exists := d.shapes[s.ID]
		if s.ParentID == "" {
			s.ParentID = d.ID
			if !exists {
				s.ChildIndex = float64(len(d.order) + 1)
			}
		}
		if !exists {
			d.order = append(d.order, s.ID)
		}
		d.shapes[s.ID] = s
	}
}

// Delete removes the shape with the given ID.
// Returns true if the shape was present.
func (d *Document) Delete(id string) bool {
	if _, ok := d.shapes[id]; !ok {
		return false
	}
	delete(d.shapes, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Shape returns the shape with the given ID.
func (d *Document) Shape(id string) (*Shape, bool) {
	s, ok := d.shapes[id]
	return s, ok
}

// Shapes returns the document's shapes in z-order, bottom to top.
func (d *Document) Shapes() []*Shape {
	out := make([]*Shape, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.shapes[id])
	}
	return out
}

// ShapeAt returns the top-most visible shape hit by the document-space
// point, or nil if nothing is hit. Hidden shapes are skipped; locked
// shapes still hit (selection handles locking separately).
func (d *Document) ShapeAt(p Point) *Shape {
	for i := len(d.order) - 1; i >= 0; i-- {
		s := d.shapes[d.order[i]]
		if s.IsHidden {
			continue
		}
		kind, err := KindFor(s.Type)
		if err != nil {
			Logger().Warn("sketch: skipping shape with unknown kind", "shape", s.ID, "type", s.Type)
			continue
		}
		if kind.HitTest(s, p) {
			return s
		}
	}
	return nil
}

// ShapesWithin returns the visible shapes contained in or intersected by
// the document-space box, in z-order. Used for marquee and brush
// selection.
func (d *Document) ShapesWithin(box Bounds) []*Shape {
	var hits []*Shape
	for _, id := range d.order {
		s := d.shapes[id]
		if s.IsHidden {
			continue
		}
		kind, err := KindFor(s.Type)
		if err != nil {
			Logger().Warn("sketch: skipping shape with unknown kind", "shape", s.ID, "type", s.Type)
			continue
		}
		if kind.HitTestBounds(s, box) {
			hits = append(hits, s)
		}
	}
	return hits
}

// Bounds returns the union of the rotated bounds of all visible shapes.
// An empty document yields the zero box.
func (d *Document) Bounds() Bounds {
	var united Bounds
	first := true
	for _, id := range d.order {
		s := d.shapes[id]
		if s.IsHidden {
			continue
		}
		kind, err := KindFor(s.Type)
		if err != nil {
			continue
		}
		b := kind.RotatedBounds(s)
		if first {
			united = b
			first = false
		} else {
			united = united.Union(b)
		}
	}
	return united
}

// documentJSON is the serialized form of a Document: shapes as an
// ordered array, bottom to top.
type documentJSON struct {
	ID     string   `json:"id"`
	Shapes []*Shape `json:"shapes"`
}

// Save writes the document as indented JSON.
func (d *Document) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(documentJSON{ID: d.ID, Shapes: d.Shapes()}); err != nil {
		return fmt.Errorf("sketch: save document %s: %w", d.ID, err)
	}
	return nil
}

// Load reads a document previously written by Save. Loaded shapes get
// fresh revision handles, so no stale cache entries are observed.
func Load(r io.Reader) (*Document, error) {
	var dj documentJSON
	if err := json.NewDecoder(r).Decode(&dj); err != nil {
		return nil, fmt.Errorf("sketch: load document: %w", err)
	}
	d := &Document{
		ID:     dj.ID,
		shapes: make(map[string]*Shape, len(dj.Shapes)),
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	for _, s := range dj.Shapes {
		if s == nil || s.ID == "" {
			continue
		}
		d.shapes[s.ID] = s
		d.order = append(d.order, s.ID)
	}
	return d, nil
}
