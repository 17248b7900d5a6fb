package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/bedrock-tool/mcevents/events"
	"github.com/bedrock-tool/mcevents/registry"
)

const demo = `
- event: PlayerMessage
  message: hello
  sender: Steve
  messageType: chat
- event: ItemEquipped
  item: 310
  slot: 1
  enchantments:
    - {name: protection, type: 0, level: 4}
- event: BlockPlaced
  block: 1
  tool: -1
  count: 1
  method: 2
- event: PlayerTravelled
  location: {x: 1, y: 64, z: 2}
  mode: swim_water
  distance: 3.5
- event: EndOfDay
`

func TestPlay(t *testing.T) {
	s, err := Parse(strings.NewReader(demo))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Entries) != 5 {
		t.Fatalf("expected 5 entries got %d", len(s.Entries))
	}

	r := registry.New(nil)
	var (
		message string
		level   int
		method  events.BlockPlacementMethod
		mode    string
		y       float64
		days    int
	)
	r.OnPlayerMessage(func(m, sender, receiver, messageType string) { message = sender + ":" + m + ":" + messageType })
	r.OnItemEquipped(func(item, slot int, e []events.Enchantment) { level = events.EnchantmentPropertyOf(e[0], events.EnchantmentPropertyLevel) })
	r.OnBlockPlaced(func(block, tool, count int, m events.BlockPlacementMethod) { method = m })
	r.OnPlayerTravelled(func(l events.Position, m string, d float64) { mode, y = m, l.Y })
	r.OnEndOfDay(func() { days++ })

	if err := s.Play(r); err != nil {
		t.Fatal(err)
	}
	if message != "Steve:hello:chat" {
		t.Fatalf("unexpected message %s", message)
	}
	if level != 4 {
		t.Fatalf("unexpected level %d", level)
	}
	if method != events.BlockPlacementMethodCommand {
		t.Fatalf("unexpected method %d", method)
	}
	if mode != "swim_water" || y != 64 {
		t.Fatalf("unexpected travel %s %f", mode, y)
	}
	if days != 1 {
		t.Fatalf("unexpected days %d", days)
	}
}

func TestPlayRejects(t *testing.T) {
	type test struct {
		value    string
		expected error
	}
	var tests = []test{
		{value: "- event: Exploded\n", expected: ErrUnknownEvent},
		{value: "- event: PlayerMessage\n  messageType: shout\n", expected: ErrBadCode},
		{value: "- event: PlayerDied\n  cause: boredom\n", expected: ErrBadCode},
		{value: "- event: ItemAcquired\n  method: 99\n", expected: ErrBadCode},
		{value: "- event: ItemUsed\n  method: juggle\n", expected: ErrBadCode},
	}
	for _, tt := range tests {
		s, err := Parse(strings.NewReader("- event: EndOfDay\n" + tt.value))
		if err != nil {
			t.Fatal(err)
		}
		r := registry.New(nil)
		days := 0
		r.OnEndOfDay(func() { days++ })
		err = s.Play(r)
		if !errors.Is(err, tt.expected) {
			t.Fatalf("%q expected: %v got: %v", tt.value, tt.expected, err)
		}
		if !strings.HasPrefix(err.Error(), "entry 1:") {
			t.Fatalf("error does not name the entry: %s", err)
		}
		if days != 0 {
			t.Fatal("entries fired before validation finished")
		}
	}
}

func TestEmpty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Play(registry.New(nil)); err != nil {
		t.Fatal(err)
	}
}
