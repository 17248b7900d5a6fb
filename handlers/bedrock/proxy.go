package bedrock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/bedrock-tool/mcevents/locale"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"golang.org/x/oauth2"
)

type ProxyConfig struct {
	Address string
	// Listen is where the game client joins, ":19132" when empty.
	Listen string
	// Offline disables xbox live on both sides.
	Offline bool
}

type packetConn interface {
	ReadPacket() (packet.Packet, error)
	WritePacket(pk packet.Packet) error
}

// Proxy waits for one game client on cfg.Listen, relays it to cfg.Address and
// feeds the packets of both directions to src.
func Proxy(ctx context.Context, cfg ProxyConfig, src *Source) error {
	if cfg.Address == "" {
		return errors.New("no server address")
	}
	listen := cfg.Listen
	if listen == "" {
		listen = ":19132"
	}

	var tokenSource oauth2.TokenSource
	if !cfg.Offline {
		var err error
		if tokenSource, err = utils.GetTokenSource(); err != nil {
			return err
		}
	}

	listener, err := minecraft.ListenConfig{
		StatusProvider:         minecraft.NewStatusProvider(fmt.Sprintf("%s Proxy", cfg.Address)),
		AuthenticationDisabled: cfg.Offline,
	}.Listen("raknet", listen)
	if err != nil {
		return err
	}
	defer listener.Close()
	src.log.Info(locale.Loc("listening_on", locale.Strmap{"Address": listener.Addr()}))
	src.log.Info(locale.Loc("help_connect", nil))

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	c, err := listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	client := c.(*minecraft.Conn)

	dialer := minecraft.Dialer{
		TokenSource: tokenSource,
		ClientData:  client.ClientData(),
	}
	if cfg.Offline {
		dialer.IdentityData = client.IdentityData()
	}
	src.log.Infof("Connecting to %s", cfg.Address)
	server, err := dialer.DialContext(ctx, "raknet", cfg.Address)
	if err != nil {
		_ = listener.Disconnect(client, err.Error())
		return err
	}
	defer server.Close()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	gd := server.GameData()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := client.StartGameContext(ctx, gd); err != nil {
			cancel(err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := server.DoSpawnContext(ctx); err != nil {
			cancel(err)
		}
	}()
	wg.Wait()
	if err := context.Cause(ctx); err != nil {
		_ = listener.Disconnect(client, err.Error())
		return err
	}
	src.Spawned(gd.EntityRuntimeID, gd.PlayerPosition, gd.Time)
	src.LocalName = client.IdentityData().DisplayName
	src.log.Debug("Connected.")

	var mu sync.Mutex
	handle := func(pk packet.Packet, toServer bool) {
		mu.Lock()
		defer mu.Unlock()
		if utils.G_debug {
			logPacket(src.log, pk, toServer)
		}
		src.HandlePacket(pk, toServer)
	}

	go func() {
		<-ctx.Done()
		_ = server.Close()
		_ = client.Close()
	}()
	wg.Add(2)
	go func() {
		defer wg.Done()
		cancel(relay(client, server, true, handle))
	}()
	go func() {
		defer wg.Done()
		cancel(relay(server, client, false, handle))
	}()
	wg.Wait()

	err = context.Cause(ctx)
	reason := disconnectReason(err)
	_ = listener.Disconnect(client, reason)
	var disconnect minecraft.DisconnectError
	if errors.Is(err, context.Canceled) || errors.As(err, &disconnect) {
		src.log.Info(locale.Loc("disconnect", locale.Strmap{"Message": reason}))
		return nil
	}
	return err
}

// relay copies packets from one side to the other, handing each to handle
// before it is written. A closed connection ends it without error.
func relay(from, to packetConn, toServer bool, handle func(pk packet.Packet, toServer bool)) error {
	for {
		pk, err := from.ReadPacket()
		if err != nil {
			return closedIsNil(err)
		}
		handle(pk, toServer)
		if err := to.WritePacket(pk); err != nil {
			return closedIsNil(err)
		}
	}
}

func closedIsNil(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func disconnectReason(err error) string {
	var disconnect minecraft.DisconnectError
	if errors.As(err, &disconnect) {
		return disconnect.Error()
	}
	if err == nil || errors.Is(err, context.Canceled) {
		return "Disconnect"
	}
	return err.Error()
}
