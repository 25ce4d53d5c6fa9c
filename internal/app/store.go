// Package app provides the application state container and its event bus.
package app

import (
	"sync"

	"banner-studio/internal/banner"
)

// EventType identifies different application events.
type EventType int

const (
	EventStateChanged EventType = iota
	EventBackgroundLoaded
	EventExportStarted
	EventExportFinished
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Store owns the single banner document. Every mutation goes through Update,
// which publishes the new state synchronously to all listeners in
// registration order. Listeners receive a snapshot; the stored state is never
// shared mutably.
type Store struct {
	mu        sync.RWMutex
	state     banner.State
	listeners map[EventType][]EventListener
}

// NewStore creates a store holding the default banner document.
func NewStore() *Store {
	return &Store{
		state:     banner.DefaultState(),
		listeners: make(map[EventType][]EventListener),
	}
}

// State returns a snapshot of the current document.
func (s *Store) State() banner.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update merges the patch into the current state and publishes the result.
// No validation and no deduplication: an empty patch still publishes.
func (s *Store) Update(p banner.Patch) {
	s.mu.Lock()
	s.state = p.Apply(s.state)
	next := s.state
	s.mu.Unlock()

	s.Emit(EventStateChanged, next)
}

// ApplyBackground installs an asynchronously loaded background, but only if
// the document still references the source the load was started from. A photo
// chosen while the load was in flight wins; the stale result is discarded and
// nothing is published. Reports whether the background was applied.
func (s *Store) ApplyBackground(loadedFrom string, bg *banner.Background) bool {
	s.mu.Lock()
	if s.state.Background.Source != loadedFrom {
		s.mu.Unlock()
		return false
	}
	s.state.Background = *bg
	next := s.state
	s.mu.Unlock()

	s.Emit(EventStateChanged, next)
	return true
}

// On registers an event listener for the specified event type.
func (s *Store) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *Store) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}
