package bedrock

import "testing"

func TestIDTable(t *testing.T) {
	ids := NewIDTable()
	cow := ids.ID("minecraft:cow")
	pig := ids.ID("minecraft:pig")
	if cow != 1 || pig != 2 || ids.ID("minecraft:cow") != cow {
		t.Fatalf("unexpected ids cow=%d pig=%d", cow, pig)
	}
	if ids.Name(pig) != "minecraft:pig" {
		t.Fatalf("unexpected name %s", ids.Name(pig))
	}
	if ids.Name(0) != "" || ids.Name(3) != "" {
		t.Fatal("unknown ids should have no name")
	}
}
