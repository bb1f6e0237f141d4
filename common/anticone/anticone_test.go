package anticone

import (
	"testing"
)

func TestAntiCone(t *testing.T) {
	k := GetSize(15, 0.02, 0.01)
	if k != 3 {
		t.Fatalf("anticone size: expect 3, but got %d", k)
	}
}

func TestAntiConeSecurity(t *testing.T) {
	loose := GetSize(15, 0.02, 0.01)
	strict := GetSize(15, 0.02, 0.001)
	if strict <= loose {
		t.Fatalf("tighter security level must enlarge the anticone: %d <= %d", strict, loose)
	}
}
