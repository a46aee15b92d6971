package armstrong

import "testing"

type stubVariant struct{}

func (stubVariant) Name() string        { return "stub" }
func (stubVariant) Description() string { return "always true" }
func (stubVariant) Checker(uint64, int) func() bool {
	return func() bool { return true }
}

func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	t.Run("defaults", func(t *testing.T) {
		got := factory.List()
		if len(got) != 2 || got[0] != IterativeName || got[1] != RecursiveName {
			t.Errorf("List() = %v, want [iterative recursive]", got)
		}
	})

	t.Run("RegisterAndHas", func(t *testing.T) {
		if err := factory.Register("stub", func() Variant { return stubVariant{} }); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if !factory.Has("stub") {
			t.Error("factory should have 'stub'")
		}
		if factory.Has("nonexistent") {
			t.Error("factory should not have 'nonexistent'")
		}
		if err := factory.Register("", nil); err == nil {
			t.Error("Register should reject empty registrations")
		}
	})

	t.Run("Get caches", func(t *testing.T) {
		v1, err := factory.Get(IterativeName)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		v2, _ := factory.Get(IterativeName)
		if v1 != v2 {
			t.Error("Get should return the cached instance")
		}
		if _, err := factory.Get("nonexistent"); err == nil {
			t.Error("Get should fail for an unknown variant")
		}
	})

	t.Run("GetAll", func(t *testing.T) {
		all := factory.GetAll()
		if _, ok := all["stub"]; !ok {
			t.Error("GetAll should contain 'stub'")
		}
	})

	t.Run("MustGet panics on unknown", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustGet should panic for an unknown variant")
			}
		}()
		_ = factory.MustGet(RecursiveName)
		_ = factory.MustGet("nonexistent")
	})
}

func TestVariantCheckers(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()
	for _, name := range factory.List() {
		v := factory.MustGet(name)
		if v.Name() != name || v.Description() == "" {
			t.Errorf("variant %q has Name %q, Description %q", name, v.Name(), v.Description())
		}
		if !v.Checker(153, 3)() {
			t.Errorf("%s: 153 should be an Armstrong number", name)
		}
		if v.Checker(154, 3)() {
			t.Errorf("%s: 154 should not be an Armstrong number", name)
		}
	}
}

func TestGlobalFactory(t *testing.T) {
	t.Parallel()
	if GlobalFactory() == nil {
		t.Fatal("GlobalFactory returned nil")
	}
	if err := RegisterVariant("global_stub", func() Variant { return stubVariant{} }); err != nil {
		t.Fatalf("RegisterVariant failed: %v", err)
	}
	if !GlobalFactory().Has("global_stub") {
		t.Error("global factory should have 'global_stub'")
	}
}
