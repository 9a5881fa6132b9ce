package identity

import "testing"

func TestEmployeeIDIsStable(t *testing.T) {
	a := EmployeeID("sarah.chen@meridiantech.example")
	b := EmployeeID("sarah.chen@meridiantech.example")
	if a != b {
		t.Fatalf("same email produced different ids: %s vs %s", a, b)
	}
}

func TestEmployeeIDNormalizesCaseAndSpace(t *testing.T) {
	a := EmployeeID("Sarah.Chen@MeridianTech.example ")
	b := EmployeeID("sarah.chen@meridiantech.example")
	if a != b {
		t.Fatalf("normalization failed: %s vs %s", a, b)
	}
}

func TestEmployeeIDIsFixedWidth(t *testing.T) {
	id := EmployeeID("anyone@meridiantech.example")
	if len(id) != 36 {
		t.Fatalf("expected canonical 36-char uuid, got %q (%d chars)", id, len(id))
	}
}

func TestDistinctEmailsProduceDistinctIDs(t *testing.T) {
	if EmployeeID("a@x.example") == EmployeeID("b@x.example") {
		t.Fatal("distinct emails collided")
	}
}

func TestPairIDIsStableAndOrderSensitive(t *testing.T) {
	a := PairID("emp-1", "cycle-1")
	if a != PairID("emp-1", "cycle-1") {
		t.Fatal("pair id not stable")
	}
	if a == PairID("cycle-1", "emp-1") {
		t.Fatal("pair id should depend on argument order")
	}
}
