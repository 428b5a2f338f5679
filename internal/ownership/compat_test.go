package ownership

import (
	"testing"

	"keel/internal/kir"
)

func TestEmptyMapRejectsEverything(t *testing.T) {
	m := Incompatible()
	if !m.IsEmpty() {
		t.Fatalf("Incompatible() is not empty: %s", m)
	}
	for k := kir.Ownership(0); k < kir.OwnershipCount; k++ {
		if m.Compatible(k) {
			t.Errorf("empty map accepts %s", k)
		}
		if _, ok := m.ConstraintFor(k); ok {
			t.Errorf("empty map has a constraint for %s", k)
		}
	}
}

func TestAllLiveAbsorbsEveryKind(t *testing.T) {
	m := AllLive()
	for k := kir.Ownership(0); k < kir.OwnershipCount; k++ {
		if !m.Compatible(k) {
			t.Fatalf("all-live rejects %s", k)
		}
		c, ok := m.ConstraintFor(k)
		if !ok || c != NonLifetimeEnding {
			t.Errorf("all-live constraint for %s = %s, want non-lifetime-ending", k, c)
		}
	}
}

func TestExplicitEntries(t *testing.T) {
	m := CompatibleWith(kir.OwnershipOwned, LifetimeEnding)
	if m.IsEmpty() || m.IsAllLive() {
		t.Fatalf("unexpected shape: %s", m)
	}
	if !m.Compatible(kir.OwnershipOwned) {
		t.Errorf("owned entry missing")
	}
	if c, _ := m.ConstraintFor(kir.OwnershipOwned); c != LifetimeEnding {
		t.Errorf("owned constraint = %s, want lifetime-ending", c)
	}
	if m.Compatible(kir.OwnershipGuaranteed) {
		t.Errorf("guaranteed accepted without an entry")
	}

	m = m.With(kir.OwnershipGuaranteed, NonLifetimeEnding)
	if c, ok := m.ConstraintFor(kir.OwnershipGuaranteed); !ok || c != NonLifetimeEnding {
		t.Errorf("guaranteed constraint = %s ok=%v", c, ok)
	}
	if c, _ := m.ConstraintFor(kir.OwnershipOwned); c != LifetimeEnding {
		t.Errorf("owned constraint changed by With: %s", c)
	}
}

func TestNoneIsBottom(t *testing.T) {
	// Any non-empty map accepts trivial values without ending anything.
	maps := []Map{
		AllLive(),
		CompatibleWith(kir.OwnershipOwned, LifetimeEnding),
		CompatibleWith(kir.OwnershipGuaranteed, NonLifetimeEnding),
	}
	for _, m := range maps {
		if !m.Compatible(kir.OwnershipNone) {
			t.Errorf("%s rejects none", m)
		}
		c, ok := m.ConstraintFor(kir.OwnershipNone)
		if !ok || c != NonLifetimeEnding {
			t.Errorf("%s constrains none to %s", m, c)
		}
	}
	// Unless it carries an explicit entry saying otherwise.
	m := CompatibleWith(kir.OwnershipNone, LifetimeEnding)
	if c, _ := m.ConstraintFor(kir.OwnershipNone); c != LifetimeEnding {
		t.Errorf("explicit none entry ignored: %s", c)
	}
}

func TestWithConflictPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("conflicting With did not panic")
		}
	}()
	CompatibleWith(kir.OwnershipOwned, LifetimeEnding).
		With(kir.OwnershipOwned, NonLifetimeEnding)
}

func TestMapString(t *testing.T) {
	cases := []struct {
		m    Map
		want string
	}{
		{Incompatible(), "incompatible"},
		{AllLive(), "all-live"},
		{CompatibleWith(kir.OwnershipOwned, LifetimeEnding), "{owned: lifetime-ending}"},
		{
			CompatibleWith(kir.OwnershipOwned, NonLifetimeEnding).
				With(kir.OwnershipGuaranteed, NonLifetimeEnding),
			"{owned: non-lifetime-ending, guaranteed: non-lifetime-ending}",
		},
	}
	for _, tc := range cases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
