package bedrock

import (
	"context"
	"errors"

	"github.com/bedrock-tool/mcevents/utils"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
)

type Config struct {
	Address string
	// Offline skips xbox live login, only works on servers with online-mode off.
	Offline bool
	Name    string
}

// Connect joins the server as a bot and feeds every received packet to src
// until ctx is cancelled or the connection drops. Only server sent packets are
// seen this way, use Proxy for the events of a real player's actions.
func Connect(ctx context.Context, cfg Config, src *Source) error {
	if cfg.Address == "" {
		return errors.New("no server address")
	}
	dialer := minecraft.Dialer{
		IdentityData: login.IdentityData{DisplayName: cfg.Name},
	}
	if !cfg.Offline {
		tokenSource, err := utils.GetTokenSource()
		if err != nil {
			return err
		}
		dialer.TokenSource = tokenSource
	}

	src.log.Infof("Connecting to %s", cfg.Address)
	conn, err := dialer.DialContext(ctx, "raknet", cfg.Address)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.DoSpawnContext(ctx); err != nil {
		return err
	}
	gd := conn.GameData()
	src.Spawned(gd.EntityRuntimeID, gd.PlayerPosition, gd.Time)
	src.LocalName = conn.IdentityData().DisplayName
	src.log.Debug("Connected.")

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		pk, err := conn.ReadPacket()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if utils.G_debug {
			logPacket(src.log, pk, false)
		}
		src.HandlePacket(pk, false)
	}
}
