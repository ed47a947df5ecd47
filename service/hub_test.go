package service

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	journal  *[]string
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Init() error {
	*f.journal = append(*f.journal, "init "+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.journal = append(*f.journal, "start "+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	*f.journal = append(*f.journal, "stop "+f.name)
	return nil
}

type dependentService struct {
	fakeService
}

func (d *dependentService) Dependencies() []string { return d.deps }

func TestHubLifecycleOrder(t *testing.T) {
	var journal []string
	h := NewHub()
	for _, name := range []string{"display", "audio"} {
		if err := h.Register(&fakeService{name: name, journal: &journal}); err != nil {
			t.Fatal(err)
		}
	}

	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatal(err)
	}
	h.StopAll()
	h.StopAll()

	want := []string{
		"init display", "init audio",
		"start display", "start audio",
		"stop audio", "stop display",
	}
	if diff := cmp.Diff(want, journal); diff != "" {
		t.Errorf("lifecycle mismatch (-want +got):\n%s", diff)
	}
}

func TestHubDuplicate(t *testing.T) {
	var journal []string
	h := NewHub()
	if err := h.Register(&fakeService{name: "audio", journal: &journal}); err != nil {
		t.Fatal(err)
	}
	err := h.Register(&fakeService{name: "audio", journal: &journal})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("second register: got %v, want ErrDuplicate", err)
	}
	if diff := cmp.Diff([]string{"audio"}, h.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestHubInitRollback(t *testing.T) {
	var journal []string
	h := NewHub()
	h.Register(&fakeService{name: "a", journal: &journal})
	h.Register(&fakeService{name: "b", journal: &journal})
	h.Register(&fakeService{name: "c", journal: &journal, initErr: errors.New("boom")})

	if err := h.InitAll(); err == nil {
		t.Fatal("InitAll succeeded")
	}
	want := []string{"init a", "init b", "init c", "stop b", "stop a"}
	if diff := cmp.Diff(want, journal); diff != "" {
		t.Errorf("rollback mismatch (-want +got):\n%s", diff)
	}

	// Nothing left to stop
	journal = nil
	h.StopAll()
	if len(journal) != 0 {
		t.Errorf("StopAll after failed init called %v", journal)
	}
}

func TestHubStartRollback(t *testing.T) {
	var journal []string
	h := NewHub()
	h.Register(&fakeService{name: "a", journal: &journal})
	h.Register(&fakeService{name: "b", journal: &journal, startErr: errors.New("boom")})

	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("StartAll succeeded")
	}
	want := []string{"init a", "init b", "start a", "start b", "stop b", "stop a"}
	if diff := cmp.Diff(want, journal); diff != "" {
		t.Errorf("rollback mismatch (-want +got):\n%s", diff)
	}
}

func TestHubDependencies(t *testing.T) {
	var journal []string
	h := NewHub()
	h.Register(&dependentService{fakeService{name: "audio", deps: []string{"display"}, journal: &journal}})
	h.Register(&fakeService{name: "display", journal: &journal})

	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	want := []string{"init display", "init audio"}
	if diff := cmp.Diff(want, journal); diff != "" {
		t.Errorf("init order (-want +got):\n%s", diff)
	}
}

func TestHubDependencyErrors(t *testing.T) {
	var journal []string

	missing := NewHub()
	missing.Register(&dependentService{fakeService{name: "a", deps: []string{"ghost"}, journal: &journal}})
	if err := missing.InitAll(); err == nil {
		t.Error("missing dependency accepted")
	}

	cycle := NewHub()
	cycle.Register(&dependentService{fakeService{name: "a", deps: []string{"b"}, journal: &journal}})
	cycle.Register(&dependentService{fakeService{name: "b", deps: []string{"a"}, journal: &journal}})
	if err := cycle.InitAll(); !errors.Is(err, ErrCycle) {
		t.Errorf("cycle: got %v, want ErrCycle", err)
	}
	if len(journal) != 0 {
		t.Errorf("services touched on sort failure: %v", journal)
	}
}
