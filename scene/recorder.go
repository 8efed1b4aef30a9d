// SPDX-License-Identifier: MIT

package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// Object kinds created by a Recorder.
const (
	KindFrustum    = "frustum"
	KindSphere     = "sphere"
	KindPointCloud = "point_cloud"
)

// Command is one recorded renderer call.
type Command struct {
	Op       string     `json:"op"`
	Object   ObjectID   `json:"object,omitempty"`
	Material MaterialID `json:"material,omitempty"`
	Name     string     `json:"name,omitempty"`
	Detail   any        `json:"detail,omitempty"`
}

// Object is the recorded state of one created object.
type Object struct {
	ID         ObjectID     `json:"id"`
	Kind       string       `json:"kind"`
	Name       string       `json:"name"`
	Collection string       `json:"collection"`
	Parent     ObjectID     `json:"parent,omitempty"`
	Smooth     bool         `json:"smooth,omitempty"`
	Material   MaterialID   `json:"material,omitempty"`
	Frustum    *FrustumSpec `json:"frustum,omitempty"`
	Sphere     *SphereSpec  `json:"sphere,omitempty"`
	Points     []r3.Vec     `json:"points,omitempty"`
}

// Recorder is an in-memory Renderer. It starts with RootCollection active.
// It is not safe for concurrent use.
type Recorder struct {
	commands    []Command
	objects     []*Object             // index = ID-1
	materials   []MaterialSpec        // index = ID-1
	byName      map[string]MaterialID // material name -> id
	collections map[string]string     // collection -> parent
	active      string
}

var _ Renderer = (*Recorder)(nil)

// NewRecorder returns an empty scene.
func NewRecorder() *Recorder {
	return &Recorder{
		byName:      make(map[string]MaterialID),
		collections: map[string]string{RootCollection: ""},
		active:      RootCollection,
	}
}

func (r *Recorder) record(c Command) { r.commands = append(r.commands, c) }

func (r *Recorder) add(o *Object) ObjectID {
	o.ID = ObjectID(len(r.objects) + 1)
	o.Collection = r.active
	r.objects = append(r.objects, o)

	return o.ID
}

func (r *Recorder) object(id ObjectID) (*Object, error) {
	if id == 0 || int(id) > len(r.objects) {
		return nil, fmt.Errorf("object %d: %w", id, ErrUnknownObject)
	}

	return r.objects[id-1], nil
}

// AddFrustum implements Solids.
func (r *Recorder) AddFrustum(spec FrustumSpec) (ObjectID, error) {
	id := r.add(&Object{Kind: KindFrustum, Name: spec.Name, Frustum: &spec})
	r.record(Command{Op: "add_frustum", Object: id, Name: spec.Name, Detail: spec})

	return id, nil
}

// AddSphere implements Solids.
func (r *Recorder) AddSphere(spec SphereSpec) (ObjectID, error) {
	id := r.add(&Object{Kind: KindSphere, Name: spec.Name, Sphere: &spec})
	r.record(Command{Op: "add_sphere", Object: id, Name: spec.Name, Detail: spec})

	return id, nil
}

// AddPointCloud implements Solids. The points are copied.
func (r *Recorder) AddPointCloud(name string, points []r3.Vec) (ObjectID, error) {
	id := r.add(&Object{Kind: KindPointCloud, Name: name, Points: slices.Clone(points)})
	r.record(Command{Op: "add_point_cloud", Object: id, Name: name, Detail: len(points)})

	return id, nil
}

// SetSmooth implements Solids.
func (r *Recorder) SetSmooth(id ObjectID) error {
	o, err := r.object(id)
	if err != nil {
		return err
	}
	o.Smooth = true
	r.record(Command{Op: "set_smooth", Object: id})

	return nil
}

// SetParent implements Solids.
func (r *Recorder) SetParent(child, parent ObjectID) error {
	c, err := r.object(child)
	if err != nil {
		return err
	}
	if _, err = r.object(parent); err != nil {
		return err
	}
	c.Parent = parent
	r.record(Command{Op: "set_parent", Object: child, Detail: parent})

	return nil
}

// Material implements Materials.
func (r *Recorder) Material(name string) (MaterialID, bool) {
	id, ok := r.byName[name]

	return id, ok
}

// NewMaterial implements Materials. A taken name gets a fresh material
// anyway, like a host that suffixes duplicates.
func (r *Recorder) NewMaterial(spec MaterialSpec) (MaterialID, error) {
	r.materials = append(r.materials, spec)
	id := MaterialID(len(r.materials))
	if _, taken := r.byName[spec.Name]; !taken {
		r.byName[spec.Name] = id
	}
	r.record(Command{Op: "new_material", Material: id, Name: spec.Name, Detail: spec})

	return id, nil
}

// AssignMaterial implements Materials.
func (r *Recorder) AssignMaterial(object ObjectID, material MaterialID) error {
	o, err := r.object(object)
	if err != nil {
		return err
	}
	if material == 0 || int(material) > len(r.materials) {
		return fmt.Errorf("material %d: %w", material, ErrUnknownMaterial)
	}
	o.Material = material
	r.record(Command{Op: "assign_material", Object: object, Material: material})

	return nil
}

// LinkCollection implements Collections.
func (r *Recorder) LinkCollection(name, parent string) error {
	if parent == "" {
		parent = RootCollection
	}
	if _, ok := r.collections[parent]; !ok {
		return fmt.Errorf("parent %q: %w", parent, ErrUnknownCollection)
	}
	if _, ok := r.collections[name]; ok {
		return fmt.Errorf("collection %q: %w", name, ErrCollectionExists)
	}
	r.collections[name] = parent
	r.record(Command{Op: "link_collection", Name: name, Detail: parent})

	return nil
}

// ActiveCollection implements Collections.
func (r *Recorder) ActiveCollection() string { return r.active }

// SetActiveCollection implements Collections.
func (r *Recorder) SetActiveCollection(name string) error {
	if _, ok := r.collections[name]; !ok {
		return fmt.Errorf("collection %q: %w", name, ErrUnknownCollection)
	}
	r.active = name
	r.record(Command{Op: "set_active_collection", Name: name})

	return nil
}

// Commands returns a copy of the recorded calls.
func (r *Recorder) Commands() []Command { return slices.Clone(r.commands) }

// Objects returns the created objects in creation order.
func (r *Recorder) Objects() []Object {
	out := make([]Object, len(r.objects))
	for i, o := range r.objects {
		out[i] = *o
	}

	return out
}

// ObjectsOfKind returns the created objects of one kind.
func (r *Recorder) ObjectsOfKind(kind string) []Object {
	var out []Object
	for _, o := range r.objects {
		if o.Kind == kind {
			out = append(out, *o)
		}
	}

	return out
}

// MaterialSpec returns the spec of a created material.
func (r *Recorder) MaterialSpec(id MaterialID) (MaterialSpec, bool) {
	if id == 0 || int(id) > len(r.materials) {
		return MaterialSpec{}, false
	}

	return r.materials[id-1], true
}

// MaterialCount returns how many materials were created.
func (r *Recorder) MaterialCount() int { return len(r.materials) }

// Collections returns the collection names, sorted.
func (r *Recorder) Collections() []string {
	out := make([]string, 0, len(r.collections))
	for name := range r.collections {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

// WriteJSON writes the recorded commands as indented JSON.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r.commands)
}
