package scene

import "github.com/lixenwraith/polarshader/fixed"

// Provider supplies the next scene to run. NextScene may return nil to
// signal "no more scenes", in which case the manager goes black.
type Provider interface {
	NextScene() *Scene
}

// DefaultProvider wraps a factory closure and loops a single scene
// indefinitely, calling factory() fresh each time a new instance is
// needed (so per-scene state like phase accumulators starts clean).
type DefaultProvider struct {
	factory func() *Scene
}

func NewDefaultProvider(factory func() *Scene) *DefaultProvider {
	return &DefaultProvider{factory: factory}
}

func (p *DefaultProvider) NextScene() *Scene { return p.factory() }

// Manager owns a Provider and the current Scene, swapping scenes at frame
// boundaries when the current one expires.
type Manager struct {
	provider Provider
	current  *Scene

	nextSceneCalls int
}

func NewManager(provider Provider) *Manager {
	return &Manager{provider: provider}
}

// AdvanceFrame requests a new scene if there is none or the current one has
// expired, then advances whichever scene is current.
func (m *Manager) AdvanceFrame(now fixed.TimeMillis) {
	if m.current == nil || m.current.Expired(now) {
		m.nextSceneCalls++
		next := m.provider.NextScene()
		if next != nil {
			next.Start(now)
		}
		m.current = next
	}
	if m.current != nil {
		m.current.AdvanceFrame(now)
	}
}

// Build publishes the current scene's composited ColourMap, or a constant
// black map if there is no current scene.
func (m *Manager) Build() func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.RGB8 {
	if m.current == nil {
		return func(fixed.BoundedAngle, fixed.FracQ0_16) fixed.RGB8 { return fixed.RGB8Black }
	}
	return m.current.Build()
}

// NextSceneCalls reports how many times NextScene has been requested from
// the provider so far; exposed for tests exercising scenario S5.
func (m *Manager) NextSceneCalls() int { return m.nextSceneCalls }
