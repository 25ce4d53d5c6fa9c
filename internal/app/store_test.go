package app

import (
	"testing"

	"banner-studio/internal/banner"
)

func TestUpdatePublishesSynchronously(t *testing.T) {
	s := NewStore()

	var got []banner.State
	s.On(EventStateChanged, func(data interface{}) {
		got = append(got, data.(banner.State))
	})

	name := "Test Kitchen"
	s.Update(banner.Patch{RestaurantName: &name})

	if len(got) != 1 {
		t.Fatalf("listener called %d times, want 1", len(got))
	}
	if got[0].RestaurantName != "Test Kitchen" {
		t.Errorf("published state has name %q", got[0].RestaurantName)
	}
	if s.State().RestaurantName != "Test Kitchen" {
		t.Errorf("stored state has name %q", s.State().RestaurantName)
	}
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	s := NewStore()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		s.On(EventStateChanged, func(interface{}) {
			order = append(order, i)
		})
	}

	s.Update(banner.Patch{})

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("listener order = %v, want [0 1 2]", order)
	}
}

func TestNoOpPatchStillPublishes(t *testing.T) {
	s := NewStore()

	calls := 0
	s.On(EventStateChanged, func(interface{}) { calls++ })

	// A zero-delta position update is a real update: the store does not
	// deduplicate.
	pos := s.State().BgPosition
	s.Update(banner.Patch{BgPosition: &pos})

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

func TestApplyBackgroundDiscardsStaleLoad(t *testing.T) {
	s := NewStore()
	staleSrc := s.State().Background.Source

	// The user picks a photo while the initial load is still in flight.
	chosen := &banner.Background{Source: "/photos/chosen.png"}
	s.Update(banner.Patch{Background: chosen})

	calls := 0
	s.On(EventStateChanged, func(interface{}) { calls++ })

	stale := &banner.Background{Source: staleSrc}
	if s.ApplyBackground(staleSrc, stale) {
		t.Error("stale background load must be discarded")
	}
	if calls != 0 {
		t.Errorf("discarded load published %d updates, want 0", calls)
	}
	if got := s.State().Background.Source; got != "/photos/chosen.png" {
		t.Errorf("background source = %q, want the chosen photo", got)
	}
}

func TestApplyBackgroundInstallsCurrentLoad(t *testing.T) {
	s := NewStore()
	src := s.State().Background.Source

	calls := 0
	s.On(EventStateChanged, func(interface{}) { calls++ })

	if !s.ApplyBackground(src, &banner.Background{Source: src}) {
		t.Fatal("load for the current source must be applied")
	}
	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

func TestEmitOnlyReachesMatchingEvent(t *testing.T) {
	s := NewStore()

	stateCalls := 0
	exportCalls := 0
	s.On(EventStateChanged, func(interface{}) { stateCalls++ })
	s.On(EventExportFinished, func(interface{}) { exportCalls++ })

	s.Emit(EventExportFinished, "out.png")

	if stateCalls != 0 || exportCalls != 1 {
		t.Errorf("stateCalls = %d, exportCalls = %d", stateCalls, exportCalls)
	}
}
