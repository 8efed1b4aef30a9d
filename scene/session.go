// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/hydridic/bond"
	"github.com/katalvlaran/hydridic/element"
)

// Session is one rendering session over a Renderer. It is not safe for
// concurrent use; the host scene graph is single-threaded.
type Session struct {
	id         uuid.UUID
	renderer   Renderer
	logger     *slog.Logger
	singleton  bool
	chemicalID string

	materials map[string]MaterialID // session cache, torn down by Close
	closed    bool
}

// SessionOption configures NewSession.
type SessionOption func(*Session)

// WithLogger sets the structured logger. nil keeps slog.Default().
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSingletonMaterials selects one material per element for the whole
// session (true, the default) or one per chemical (false).
func WithSingletonMaterials(singleton bool) SessionOption {
	return func(s *Session) { s.singleton = singleton }
}

// WithChemicalID sets the chemical id used by DrawSolid for per-chemical
// materials. Panics on "".
func WithChemicalID(id string) SessionOption {
	if id == "" {
		panic("scene: WithChemicalID: empty id")
	}

	return func(s *Session) { s.chemicalID = id }
}

// WithSessionID fixes the session id instead of a random one.
func WithSessionID(id uuid.UUID) SessionOption {
	return func(s *Session) { s.id = id }
}

// NewSession starts a session over r.
func NewSession(r Renderer, opts ...SessionOption) (*Session, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	registerMetrics()
	s := &Session{
		id:         uuid.New(),
		renderer:   r,
		logger:     slog.Default(),
		singleton:  true,
		chemicalID: GenericChemicalID,
		materials:  make(map[string]MaterialID),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id.String())

	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// Renderer returns the wrapped renderer.
func (s *Session) Renderer() Renderer { return s.renderer }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// SingletonMaterials reports the material sharing policy.
func (s *Session) SingletonMaterials() bool { return s.singleton }

// Close tears down the material cache. Further use fails with
// ErrSessionClosed. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.logger.Debug("session closed", "cached_materials", len(s.materials))
	clear(s.materials)
	s.closed = true

	return nil
}

func (s *Session) checkOpen(method string) error {
	if s.closed {
		return fmt.Errorf("Session.%s: %w", method, ErrSessionClosed)
	}

	return nil
}

// material returns the material stored under key, creating it with spec on
// first request. Lookup order: session cache, host renderer, creation.
func (s *Session) material(key string, spec func(key string) MaterialSpec) (MaterialID, error) {
	if id, ok := s.materials[key]; ok {
		sessionMaterialsTotal.WithLabelValues("cached").Inc()
		s.logger.Debug("material cache hit", "key", key)

		return id, nil
	}
	if id, ok := s.renderer.Material(key); ok {
		sessionMaterialsTotal.WithLabelValues("host").Inc()
		s.logger.Debug("material found in host", "key", key)
		s.materials[key] = id

		return id, nil
	}
	id, err := s.renderer.NewMaterial(spec(key))
	if err != nil {
		return 0, fmt.Errorf("material %q: %w", key, err)
	}
	sessionMaterialsTotal.WithLabelValues("created").Inc()
	s.logger.Debug("material created", "key", key)
	s.materials[key] = id

	return id, nil
}

// ElementMaterial returns the material of an element symbol for chemicalID.
func (s *Session) ElementMaterial(symbol, chemicalID string) (MaterialID, error) {
	if err := s.checkOpen("ElementMaterial"); err != nil {
		return 0, err
	}
	e, err := element.Lookup(symbol)
	if err != nil {
		return 0, fmt.Errorf("Session.ElementMaterial: %w", err)
	}

	return s.material(MaterialKey(e.Symbol, chemicalID, s.singleton), func(key string) MaterialSpec {
		return ElementMaterial(key, e)
	})
}

// BondMaterial returns the shared bond material called name for chemicalID.
func (s *Session) BondMaterial(name, chemicalID string) (MaterialID, error) {
	if err := s.checkOpen("BondMaterial"); err != nil {
		return 0, err
	}

	return s.material(MaterialKey(name, chemicalID, s.singleton), GlassMaterial)
}

// DrawSolid implements bond.Drawer with the session's chemical id.
func (s *Session) DrawSolid(req bond.RenderRequest) error {
	return s.drawSolid(req, s.chemicalID)
}

// Drawer returns a bond.Drawer whose materials are keyed by chemicalID.
func (s *Session) Drawer(chemicalID string) bond.Drawer {
	return drawerFunc(func(req bond.RenderRequest) error { return s.drawSolid(req, chemicalID) })
}

type drawerFunc func(bond.RenderRequest) error

func (f drawerFunc) DrawSolid(req bond.RenderRequest) error { return f(req) }

// drawSolid creates the solid, applies smooth shading and the shared material.
func (s *Session) drawSolid(req bond.RenderRequest, chemicalID string) error {
	if err := s.checkOpen("DrawSolid"); err != nil {
		return err
	}
	if req.Kind != bond.SolidFrustum {
		return fmt.Errorf("Session.DrawSolid(%q): %w", req.Kind, ErrUnsupportedSolid)
	}
	id, err := s.renderer.AddFrustum(FrustumSpec{
		Name:        req.Name,
		Location:    req.Location,
		Orientation: req.Orientation,
		Euler:       req.Euler,
		Depth:       req.Depth,
		Radius1:     req.Radius1,
		Radius2:     req.Radius2,
		Vertices:    req.Vertices,
		Inset:       req.Inset,
	})
	if err != nil {
		return fmt.Errorf("Session.DrawSolid %s: %w", req.Name, err)
	}
	sessionObjectsCreatedTotal.WithLabelValues(req.Kind).Inc()
	if req.Smooth {
		if err = s.renderer.SetSmooth(id); err != nil {
			return fmt.Errorf("Session.DrawSolid %s: %w", req.Name, err)
		}
	}
	if req.Material != "" {
		mat, err := s.BondMaterial(req.Material, chemicalID)
		if err != nil {
			return fmt.Errorf("Session.DrawSolid %s: %w", req.Name, err)
		}
		if err = s.renderer.AssignMaterial(id, mat); err != nil {
			return fmt.Errorf("Session.DrawSolid %s: %w", req.Name, err)
		}
	}
	sessionBondsDrawnTotal.WithLabelValues(req.Style).Inc()

	return nil
}

// InCollection makes name the active collection while fn runs and restores
// the previous one afterwards, whether fn returns, fails or panics.
// A failed restore is joined to the returned error.
func (s *Session) InCollection(name string, fn func() error) (err error) {
	if err = s.checkOpen("InCollection"); err != nil {
		return err
	}
	prev := s.renderer.ActiveCollection()
	if err = s.renderer.SetActiveCollection(name); err != nil {
		return fmt.Errorf("Session.InCollection(%q): %w", name, err)
	}
	defer func() {
		if rerr := s.renderer.SetActiveCollection(prev); rerr != nil {
			s.logger.Error("restore active collection", "collection", prev, "error", rerr)
			err = errors.Join(err, fmt.Errorf("Session.InCollection: restore %q: %w", prev, rerr))
		}
	}()

	return fn()
}
