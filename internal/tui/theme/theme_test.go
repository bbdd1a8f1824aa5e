package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Fatalf("ByName fallback = %q, want %q", got.Name, FlexokiDark.Name)
	}
	if _, ok := Lookup("no-such-theme"); ok {
		t.Fatal("Lookup reported an unknown theme as present")
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	for _, name := range Names() {
		SetActive(name)
		if Active.Name != name {
			t.Errorf("SetActive(%q) left Active=%q", name, Active.Name)
		}
	}
}
