package catalog

import "testing"

func TestNewLastWriteWinsKeepsPosition(t *testing.T) {
	champs := []Champion{
		{Name: "Azir", Role: RoleMage, Difficulty: 9, Attributes: Attributes{Damage: 8}},
		{Name: "Bard", Role: RoleSupport, Difficulty: 9, Attributes: Attributes{Utility: 10}},
		{Name: "Azir", Role: RoleMage, Difficulty: 8, Attributes: Attributes{Damage: 9}},
	}

	cat, err := New(champs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 distinct champions, got %d", cat.Len())
	}

	got, ok := cat.Get("Azir")
	if !ok {
		t.Fatalf("expected Azir present")
	}
	if got.Difficulty != 8 || got.Attributes.Damage != 9 {
		t.Fatalf("expected second Azir definition to win, got difficulty=%d damage=%d", got.Difficulty, got.Attributes.Damage)
	}

	all := cat.All()
	if all[0].Name != "Azir" || all[1].Name != "Bard" {
		t.Fatalf("expected duplicate to keep its original position, got order %q, %q", all[0].Name, all[1].Name)
	}
}

func TestNewRejectsInvalidRows(t *testing.T) {
	cases := []struct {
		name  string
		champ Champion
	}{
		{"empty_name", Champion{Role: RoleTank, Difficulty: 3}},
		{"unknown_role", Champion{Name: "X", Role: "Jungler", Difficulty: 3}},
		{"difficulty_low", Champion{Name: "X", Role: RoleTank, Difficulty: 0}},
		{"difficulty_high", Champion{Name: "X", Role: RoleTank, Difficulty: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New([]Champion{tc.champ}); err == nil {
				t.Fatalf("expected error for %+v", tc.champ)
			}
		})
	}
}

func TestGetUnknownIsExplicitNotFound(t *testing.T) {
	cat, err := New([]Champion{{Name: "Annie", Role: RoleMage, Difficulty: 3}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := cat.Get("Teemo"); ok {
		t.Fatalf("expected lookup miss for unknown champion")
	}
}

func TestLoadEmbeddedData(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() < 150 {
		t.Fatalf("expected a full catalog, got %d champions", cat.Len())
	}

	// The source export contains the Azir row twice; the catalog must
	// resolve it to a single entry.
	seen := 0
	for _, champ := range cat.All() {
		if champ.Name == "Azir" {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected exactly one Azir entry, got %d", seen)
	}

	alistar, ok := cat.Get("Alistar")
	if !ok {
		t.Fatalf("expected Alistar present")
	}
	if !alistar.HasMatchingFactors() {
		t.Fatalf("expected Alistar to carry matching factors")
	}
	if w, ok := alistar.FactorFor("rolePreference", "Tank"); !ok || w != 10 {
		t.Fatalf("expected rolePreference/Tank factor 10, got %d (ok=%v)", w, ok)
	}
	if _, ok := alistar.FactorFor("rolePreference", "Jungler"); ok {
		t.Fatalf("expected miss for unknown answer value")
	}
}

func TestAttributesDim(t *testing.T) {
	a := Attributes{Damage: 1, Toughness: 2, Control: 3, Mobility: 4, Utility: 5}
	cases := map[string]int{
		"damage": 1, "toughness": 2, "control": 3, "mobility": 4, "utility": 5, "unknown": 0,
	}
	for name, want := range cases {
		if got := a.Dim(name); got != want {
			t.Fatalf("Dim(%q) = %d, want %d", name, got, want)
		}
	}
}
