package scene

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/pga"
)

// Entity identifies an object in a World. The zero Entity is never issued.
type Entity uint32

// Component is data attached to an entity at Spawn or Insert: a Camera,
// a Quad or Circle, or a Material. An entity holds at most one of each
// kind; attaching another replaces it.
type Component interface {
	attach(r *record)
}

type record struct {
	local     Transform
	global    GlobalTransform
	hasGlobal bool
	changed   bool

	parent    Entity
	hasParent bool

	camera   *Camera
	shape    Shape
	material *Material
}

func (r *record) setLocal(t Transform) {
	r.local = t
	r.changed = true
}

// World owns entities and their components.
type World struct {
	opts    options
	next    Entity
	records map[Entity]*record
	order   []Entity
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &World{
		opts:    o,
		records: make(map[Entity]*record),
	}
}

func (w *World) log() *slog.Logger {
	if w.opts.logger != nil {
		return w.opts.logger
	}
	return pga.Logger()
}

// Spawn adds an entity with the given local transform and components.
// Its GlobalTransform is available after the next Propagate.
func (w *World) Spawn(t Transform, components ...Component) Entity {
	w.next++
	e := w.next
	r := &record{local: t, changed: true}
	for _, c := range components {
		c.attach(r)
	}
	w.records[e] = r
	w.order = append(w.order, e)
	return e
}

// Insert attaches more components to an existing entity.
func (w *World) Insert(e Entity, components ...Component) error {
	r, err := w.lookup(e)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	for _, c := range components {
		c.attach(r)
	}
	return nil
}

// Despawn removes an entity. Children keep a link to the removed parent
// until the next Propagate, which detaches them.
func (w *World) Despawn(e Entity) error {
	if _, err := w.lookup(e); err != nil {
		return fmt.Errorf("despawn: %w", err)
	}
	delete(w.records, e)
	if i := slices.Index(w.order, e); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	return nil
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.records)
}

// Contains reports whether e is live.
func (w *World) Contains(e Entity) bool {
	_, ok := w.records[e]
	return ok
}

func (w *World) lookup(e Entity) (*record, error) {
	r, ok := w.records[e]
	if !ok {
		return nil, fmt.Errorf("entity %d: %w", e, ErrUnknownEntity)
	}
	return r, nil
}

// Transform returns the local transform of e.
func (w *World) Transform(e Entity) (Transform, error) {
	r, err := w.lookup(e)
	if err != nil {
		return Transform{}, err
	}
	return r.local, nil
}

// SetTransform replaces the local transform of e. The entity and its
// descendants are recomputed on the next Propagate.
func (w *World) SetTransform(e Entity, t Transform) error {
	r, err := w.lookup(e)
	if err != nil {
		return fmt.Errorf("set transform: %w", err)
	}
	r.setLocal(t)
	return nil
}

// GlobalTransform returns the world-space transform computed by the last
// Propagate. ok is false for entities spawned since then.
func (w *World) GlobalTransform(e Entity) (g GlobalTransform, ok bool) {
	r, found := w.records[e]
	if !found || !r.hasGlobal {
		return GlobalTransform{}, false
	}
	return r.global, true
}

// SetParent makes child's transform relative to parent.
func (w *World) SetParent(child, parent Entity) error {
	r, err := w.lookup(child)
	if err != nil {
		return fmt.Errorf("set parent: %w", err)
	}
	if _, err := w.lookup(parent); err != nil {
		return fmt.Errorf("set parent: %w", err)
	}
	for a, ok := parent, true; ok; a, ok = w.Parent(a) {
		if a == child {
			return fmt.Errorf("set parent %d of %d: %w", parent, child, ErrParentCycle)
		}
	}
	r.parent, r.hasParent = parent, true
	r.changed = true
	return nil
}

// ClearParent makes child's transform relative to the world again.
func (w *World) ClearParent(child Entity) error {
	r, err := w.lookup(child)
	if err != nil {
		return fmt.Errorf("clear parent: %w", err)
	}
	if r.hasParent {
		r.parent, r.hasParent = 0, false
		r.changed = true
	}
	return nil
}

// Parent returns the parent of e, if it has one.
func (w *World) Parent(e Entity) (Entity, bool) {
	r, ok := w.records[e]
	if !ok || !r.hasParent {
		return 0, false
	}
	return r.parent, true
}

// Propagate brings every GlobalTransform up to date, parents before
// children, and returns how many were recomputed. An entity is recomputed
// when it is new, its local transform or parent link changed, or its
// parent was recomputed in this pass.
func (w *World) Propagate() int {
	visited := make(map[Entity]bool, len(w.records))
	updated := make(map[Entity]bool)

	var visit func(e Entity, r *record) bool
	visit = func(e Entity, r *record) bool {
		if visited[e] {
			return updated[e]
		}
		visited[e] = true

		parentGlobal := pga.IdentityMotor()
		parentChanged := false
		if r.hasParent {
			p, ok := w.records[r.parent]
			if ok {
				parentChanged = visit(r.parent, p)
				parentGlobal = p.global.motor
			} else {
				w.log().Warn("scene: parent despawned, detaching", "entity", e, "parent", r.parent)
				r.parent, r.hasParent = 0, false
				r.changed = true
			}
		}

		if r.hasGlobal && !r.changed && !parentChanged {
			return false
		}
		r.global = GlobalTransform{motor: parentGlobal.MulMotor(r.local.Motor)}
		r.hasGlobal = true
		r.changed = false
		updated[e] = true
		return true
	}

	for _, e := range w.order {
		visit(e, w.records[e])
	}
	w.log().Debug("scene: propagated", "entities", len(w.order), "updated", len(updated))
	return len(updated)
}

// Drawables returns every entity that has a Shape and a GlobalTransform,
// in spawn order. Entities without a Material are drawn white.
func (w *World) Drawables() []Drawable {
	var out []Drawable
	for _, e := range w.order {
		r := w.records[e]
		if r.shape == nil || !r.hasGlobal {
			continue
		}
		m := Material{Red: 1, Green: 1, Blue: 1}
		if r.material != nil {
			m = *r.material
		}
		out = append(out, Drawable{Entity: e, Shape: r.shape, Material: m, Transform: r.global})
	}
	return out
}
