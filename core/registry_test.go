package core

import "testing"

func nopConstructor(ProviderOptions) (ImageryProvider, error) { return nil, nil }

func TestConstructorRegistry_RegisterAndGet(t *testing.T) {
	registry := NewConstructorRegistry()
	if err := registry.Register(ExternalTypeBing, nopConstructor); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := registry.Get(ExternalTypeBing); !ok {
		t.Fatalf("expected BING to resolve")
	}
	if _, ok := registry.Get(ExternalTypeWMS); ok {
		t.Fatalf("expected WMS to be absent")
	}
	if _, ok := registry.Get(ExternalTypeNone); ok {
		t.Fatalf("empty tag must never resolve")
	}
}

func TestConstructorRegistry_RejectsBadRegistrations(t *testing.T) {
	registry := NewConstructorRegistry()
	if err := registry.Register(ExternalTypeBing, nil); err == nil {
		t.Fatalf("expected nil constructor to be rejected")
	}
	if err := registry.Register("  ", nopConstructor); err == nil {
		t.Fatalf("expected blank tag to be rejected")
	}
	if err := registry.Register(ExternalTypeBing, nopConstructor); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(ExternalTypeBing, nopConstructor); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestConstructorRegistry_TagsSorted(t *testing.T) {
	registry := NewConstructorRegistry()
	for _, tag := range []ExternalType{ExternalTypeWMTS, ExternalTypeBing, ExternalTypeTMS} {
		if err := registry.Register(tag, nopConstructor); err != nil {
			t.Fatalf("register %s: %v", tag, err)
		}
	}
	tags := registry.Tags()
	want := []ExternalType{ExternalTypeBing, ExternalTypeTMS, ExternalTypeWMTS}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for idx := range want {
		if tags[idx] != want[idx] {
			t.Fatalf("unexpected ordering at index %d: got %v want %v", idx, tags, want)
		}
	}
}
