package registry

import (
	"errors"
	"testing"

	"github.com/bedrock-tool/mcevents/events"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFanOutInOrder(t *testing.T) {
	r := New(nil)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		if err := r.OnBlockBroken(func(block, tool, count int) {
			if block != 1 || tool != -1 || count != 4 {
				t.Errorf("unexpected payload %d %d %d", block, tool, count)
			}
			order = append(order, i)
		}); err != nil {
			t.Fatal(err)
		}
	}
	r.FireBlockBroken(1, -1, 4)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("handlers ran out of order: %v", order)
	}
	if r.Count(events.BlockBroken) != 3 {
		t.Fatalf("expected 3 handlers got %d", r.Count(events.BlockBroken))
	}
}

func TestNilHandler(t *testing.T) {
	r := New(nil)
	err := r.OnPlayerMessage(nil)
	if !errors.Is(err, ErrNilHandler) {
		t.Fatalf("expected ErrNilHandler got %v", err)
	}
	if r.Stats().Registered != 0 {
		t.Fatal("nil handler was counted")
	}
}

func TestPanicIsContained(t *testing.T) {
	r := New(nil)
	var got []string
	r.OnPlayerMessage(func(message, sender, receiver, messageType string) {
		panic(errors.New("handler failed"))
	})
	r.OnPlayerMessage(func(message, sender, receiver, messageType string) {
		got = append(got, message, sender, receiver, messageType)
	})
	r.FirePlayerMessage("hi", "Steve", "", "chat")
	if len(got) != 4 || got[0] != "hi" || got[3] != "chat" {
		t.Fatalf("second handler did not run: %v", got)
	}
	s := r.Stats()
	if s.Fired != 1 || s.Dispatched != 2 || s.Panics != 1 || s.Registered != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestReentrantRegister(t *testing.T) {
	r := New(nil)
	calls := 0
	r.OnEndOfDay(func() {
		calls++
		r.OnEndOfDay(func() { calls++ })
	})
	r.FireEndOfDay()
	if calls != 1 {
		t.Fatalf("handler added during fire should wait for the next fire, calls=%d", calls)
	}
	r.FireEndOfDay()
	if calls != 3 {
		t.Fatalf("expected 3 calls got %d", calls)
	}
}

func TestPayloads(t *testing.T) {
	r := New(nil)
	var (
		ench     []events.Enchantment
		location events.Position
		mode     string
		method   events.ItemInteractMethod
	)
	r.OnItemEquipped(func(item, slot int, enchantments []events.Enchantment) { ench = enchantments })
	r.OnPlayerTravelled(func(l events.Position, m string, distance float64) { location, mode = l, m })
	r.OnItemInteracted(func(item, count int, m events.ItemInteractMethod) { method = m })

	r.FireItemEquipped(310, 0, []events.Enchantment{{Name: "protection", Type: 0, Level: 4}})
	r.FirePlayerTravelled(events.Position{X: 1, Y: 64, Z: 2}, "walk", 1.5)
	r.FireItemInteracted(69, 1, events.ItemInteractMethodUse)

	if len(ench) != 1 || ench[0].Level != 4 {
		t.Fatalf("enchantments not delivered: %v", ench)
	}
	if location.Y != 64 || mode != "walk" {
		t.Fatalf("travel payload not delivered: %v %s", location, mode)
	}
	if method != events.ItemInteractMethodUse {
		t.Fatalf("interact method not delivered: %d", method)
	}
}

func TestMetrics(t *testing.T) {
	m := utils.NewMetrics()
	r := New(m)
	r.OnCameraUsed(func(isSelfie bool) {})
	r.FireCameraUsed(true)
	r.FireCameraUsed(false)

	if v := testutil.ToFloat64(m.Registrations.WithLabelValues(string(events.CameraUsed))); v != 1 {
		t.Fatalf("registrations expected 1 got %f", v)
	}
	if v := testutil.ToFloat64(m.Fired.WithLabelValues(string(events.CameraUsed))); v != 2 {
		t.Fatalf("fired expected 2 got %f", v)
	}
	if v := testutil.ToFloat64(m.Dispatched.WithLabelValues(string(events.CameraUsed))); v != 2 {
		t.Fatalf("dispatched expected 2 got %f", v)
	}
}
