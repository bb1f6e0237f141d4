package blockdag

import (
	"testing"
)

func TestGetRisk(t *testing.T) {
	//Degenerate inputs carry no risk signal
	if GetRisk(2, 0.2, 0.02, 15, 150, 3) != 0 {
		t.FailNow()
	}
	if GetRisk(40, 0.2, 0.02, 15, 150, 0) != 0 {
		t.FailNow()
	}
	risk := GetRisk(40, 0.2, 0.02, 15, 150, 3)
	if risk <= 0 || risk >= 1 {
		t.Fatalf("risk:%v is out of range", risk)
	}
	//More confirmations push the risk down
	deeper := GetRisk(40, 0.2, 0.02, 15, 150, 6)
	if deeper > risk {
		t.Fatalf("risk:%v > %v", deeper, risk)
	}
}
