package bedrock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/bedrock-tool/mcevents/registry"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

type fakeConn struct {
	in       []packet.Packet
	out      []packet.Packet
	readErr  error
	writeErr error
}

func (c *fakeConn) ReadPacket() (packet.Packet, error) {
	if len(c.in) == 0 {
		return nil, c.readErr
	}
	pk := c.in[0]
	c.in = c.in[1:]
	return pk, nil
}

func (c *fakeConn) WritePacket(pk packet.Packet) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.out = append(c.out, pk)
	return nil
}

func TestRelayFeedsSource(t *testing.T) {
	r := registry.New(nil)
	broken := 0
	r.OnBlockBroken(func(block, tool, count int) { broken++ })
	messages := 0
	r.OnPlayerMessage(func(message, sender, receiver, messageType string) { messages++ })
	src := NewSource(r, nil)

	breakBlock := &packet.InventoryTransaction{TransactionData: &protocol.UseItemTransactionData{
		ActionType:     protocol.UseItemActionBreakBlock,
		BlockRuntimeID: 3,
	}}
	client := &fakeConn{in: []packet.Packet{breakBlock}, readErr: io.EOF}
	server := &fakeConn{in: []packet.Packet{&packet.Text{TextType: packet.TextTypeChat, Message: "hi"}}, readErr: net.ErrClosed}

	if err := relay(client, server, true, src.HandlePacket); err != nil {
		t.Fatal(err)
	}
	if err := relay(server, client, false, src.HandlePacket); err != nil {
		t.Fatal(err)
	}
	if broken != 1 {
		t.Fatalf("expected the relayed break to fire once, got %d", broken)
	}
	if messages != 1 {
		t.Fatalf("expected one message got %d", messages)
	}
	if len(server.out) != 1 || server.out[0] != breakBlock {
		t.Fatal("client packet was not forwarded to the server")
	}
	if len(client.out) != 1 {
		t.Fatal("server packet was not forwarded to the client")
	}
}

func TestRelayErrors(t *testing.T) {
	boom := errors.New("boom")
	nop := func(packet.Packet, bool) {}

	if err := relay(&fakeConn{readErr: boom}, &fakeConn{}, true, nop); !errors.Is(err, boom) {
		t.Fatalf("expected read error got %v", err)
	}
	from := &fakeConn{in: []packet.Packet{&packet.SetTime{}}}
	if err := relay(from, &fakeConn{writeErr: boom}, false, nop); !errors.Is(err, boom) {
		t.Fatalf("expected write error got %v", err)
	}
	from = &fakeConn{in: []packet.Packet{&packet.SetTime{}}}
	if err := relay(from, &fakeConn{writeErr: io.EOF}, false, nop); err != nil {
		t.Fatalf("closed peer should end the relay quietly, got %v", err)
	}
}

func TestDisconnectReason(t *testing.T) {
	type test struct {
		err      error
		expected string
	}
	var tests = []test{
		{err: nil, expected: "Disconnect"},
		{err: context.Canceled, expected: "Disconnect"},
		{err: fmt.Errorf("read packet: %w", minecraft.DisconnectError("server closed")), expected: "server closed"},
		{err: errors.New("boom"), expected: "boom"},
	}
	for _, tt := range tests {
		if got := disconnectReason(tt.err); got != tt.expected {
			t.Fatalf("%v expected: %s got: %s", tt.err, tt.expected, got)
		}
	}
}
