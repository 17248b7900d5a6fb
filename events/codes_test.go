package events

import "testing"

func TestMessageTypeCode(t *testing.T) {
	type test struct {
		value    MessageType
		expected string
	}
	var tests = []test{
		{value: MessageTypeChat, expected: "chat"},
		{value: MessageTypeSay, expected: "say"},
		{value: MessageTypeTell, expected: "tell"},
		{value: messageTypeCount, expected: "tell"},
		{value: 200, expected: "tell"},
	}
	for _, tt := range tests {
		if got := MessageTypeCode(tt.value); got != tt.expected {
			t.Fatalf("MessageTypeCode(%d) expected: %q got: %q", tt.value, tt.expected, got)
		}
	}
	if MessageType(200).Valid() {
		t.Fatal("out of range message type reported valid")
	}
	for i := MessageType(0); i < messageTypeCount; i++ {
		if !i.Valid() {
			t.Fatalf("message type %d reported invalid", i)
		}
	}
}

func TestEnchantmentProperty(t *testing.T) {
	e := Enchantment{Name: "Sharpness", Type: 16, Level: 3}
	if got := EnchantmentPropertyOf(e, EnchantmentPropertyLevel); got != 3 {
		t.Fatalf("level expected 3 got %d", got)
	}
	if got := EnchantmentPropertyOf(e, EnchantmentPropertyType); got != 16 {
		t.Fatalf("type expected 16 got %d", got)
	}
	if got := EnchantmentPropertyOf(e, 9); got != 3 {
		t.Fatalf("unknown property should read level, got %d", got)
	}
	if EnchantmentName(e) != "Sharpness" {
		t.Fatalf("name expected Sharpness got %s", EnchantmentName(e))
	}
}

func TestCodeTablesComplete(t *testing.T) {
	for name, codes := range CodeTable() {
		seen := map[string]bool{}
		for i, code := range codes {
			if code == "" {
				t.Fatalf("%s member %d has no code", name, i)
			}
			if seen[code] {
				t.Fatalf("%s code %q used twice", name, code)
			}
			seen[code] = true
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for i := UseMethod(0); i < useMethodCount; i++ {
		m, ok := ParseUseMethod(UseMethodCode(i))
		if !ok || m != i {
			t.Fatalf("use method %d did not parse back (%d, %v)", i, m, ok)
		}
	}
	for i := ActorDamageCause(0); i < actorDamageCauseCount; i++ {
		c, ok := ParseActorDamageCause(DeathCauseCode(i))
		if !ok || c != i {
			t.Fatalf("damage cause %d did not parse back (%d, %v)", i, c, ok)
		}
	}
	for i := TravelMethod(0); i < travelMethodCount; i++ {
		m, ok := ParseTravelMethod(TravelModeCode(i))
		if !ok || m != i {
			t.Fatalf("travel method %d did not parse back (%d, %v)", i, m, ok)
		}
	}
	for i := MobSpawnMethod(0); i < mobSpawnMethodCount; i++ {
		m, ok := ParseMobSpawnMethod(SpawnerMethodCode(i))
		if !ok || m != i {
			t.Fatalf("spawn method %d did not parse back (%d, %v)", i, m, ok)
		}
	}
	if _, ok := ParseMessageType("shout"); ok {
		t.Fatal("unknown message type parsed")
	}
}

func TestOutOfRangeCodes(t *testing.T) {
	if UseMethodCode(useMethodCount) != unknownCode {
		t.Fatal("out of range use method should be unknown")
	}
	if DeathCauseCode(255) != unknownCode {
		t.Fatal("out of range damage cause should be unknown")
	}
	if SpawnerMethodCode(MobSpawnMethodSpawner) != "spawner" {
		t.Fatal("spawner code")
	}
}

func TestNumericIdentity(t *testing.T) {
	for i := 0; i < BlockPlacementMethods; i++ {
		if BlockPlacementMethodCode(BlockPlacementMethod(i)) != i {
			t.Fatalf("block placement method %d not identity", i)
		}
	}
	for i := 0; i < AcquisitionMethods; i++ {
		if AcquisitionMethodCode(AcquisitionMethod(i)) != i {
			t.Fatalf("acquisition method %d not identity", i)
		}
	}
	for i := 0; i < ItemInteractMethods; i++ {
		if ItemInteractMethodCode(ItemInteractMethod(i)) != i {
			t.Fatalf("interact method %d not identity", i)
		}
	}
}

func TestDistance(t *testing.T) {
	a := Position{X: 0, Y: 0, Z: 0}
	b := Position{X: 3, Y: 4, Z: 0}
	if d := a.DistanceTo(b); d != 5 {
		t.Fatalf("expected 5 got %f", d)
	}
}
