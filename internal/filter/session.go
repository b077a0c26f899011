package filter

import (
	"github.com/wexinc/extcat/internal/extension"
)

// View is the result of applying a session's state to its extensions.
type View struct {
	// Extensions is the filtered, sorted list to render.
	Extensions []*extension.Extension
	// Total is the number of extensions in the catalog, malformed ones included.
	Total int
	// Valid is the number of well-formed extensions in the catalog.
	Valid int
	// State is a copy of the state the view was computed from.
	State State
}

// Matched returns the number of extensions in the view.
func (v View) Matched() int {
	return len(v.Extensions)
}

// Listener is called with the new view after every state change.
type Listener func(View)

// Session owns the filter state of one browsing session and recomputes the
// view whenever it changes. A Session is not safe for concurrent use; it
// belongs to the goroutine driving the UI.
type Session struct {
	extensions []*extension.Extension
	valid      int
	state      State
	view       View
	listeners  []Listener
}

// NewSession creates a session over extensions with an empty filter state.
func NewSession(extensions []*extension.Extension) *Session {
	s := &Session{
		state: NewState(),
	}
	s.setExtensions(extensions)
	s.recompute()
	return s
}

// Subscribe registers a listener for view changes.
func (s *Session) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// View returns the current view.
func (s *Session) View() View {
	return s.view
}

// State returns a copy of the current filter state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Extensions returns the session's full extension list.
func (s *Session) Extensions() []*extension.Extension {
	return s.extensions
}

// SetExtensions replaces the catalog while keeping the filter state.
// Listeners are always notified since the view may have changed.
func (s *Session) SetExtensions(extensions []*extension.Extension) {
	s.setExtensions(extensions)
	s.recompute()
	s.notify()
}

// SetSearch sets the search text.
func (s *Session) SetSearch(text string) {
	next := s.state.Clone()
	next.Search = text
	s.SetState(next)
}

// ToggleCategory ticks or unticks a category.
func (s *Session) ToggleCategory(category string) {
	next := s.state.Clone()
	toggle(next.Categories, category)
	s.SetState(next)
}

// SetCategories replaces the ticked categories.
func (s *Session) SetCategories(categories ...string) {
	next := s.state.Clone()
	next.Categories = NewSet(categories...)
	s.SetState(next)
}

// TogglePlatform selects or deselects a platform.
func (s *Session) TogglePlatform(platform string) {
	next := s.state.Clone()
	toggle(next.Platforms, platform)
	s.SetState(next)
}

// SetPlatforms replaces the selected platforms.
func (s *Session) SetPlatforms(platforms ...string) {
	next := s.state.Clone()
	next.Platforms = NewSet(platforms...)
	s.SetState(next)
}

// Reset clears every filter dimension.
func (s *Session) Reset() {
	s.SetState(NewState())
}

// SetState replaces the whole filter state. Applying a state equal to the
// current one is a no-op and does not notify listeners.
func (s *Session) SetState(state State) {
	if state.Categories == nil {
		state.Categories = Set{}
	}
	if state.Platforms == nil {
		state.Platforms = Set{}
	}
	if state.Equal(s.state) {
		return
	}
	s.state = state.Clone()
	s.recompute()
	s.notify()
}

func (s *Session) setExtensions(extensions []*extension.Extension) {
	s.extensions = extensions
	s.valid = 0
	for _, ext := range extensions {
		if ext.Valid() {
			s.valid++
		}
	}
}

func (s *Session) recompute() {
	s.view = View{
		Extensions: Apply(s.extensions, s.state),
		Total:      len(s.extensions),
		Valid:      s.valid,
		State:      s.state.Clone(),
	}
}

func (s *Session) notify() {
	for _, l := range s.listeners {
		l(s.view)
	}
}

func toggle(set Set, v string) {
	if v == "" {
		return
	}
	if set.Has(v) {
		delete(set, v)
		return
	}
	set[v] = struct{}{}
}
