package bedrock

import (
	"reflect"
	"slices"

	"github.com/bedrock-tool/mcevents/locale"
	"github.com/fatih/color"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

var mutedPackets = []string{
	"packet.UpdateBlock",
	"packet.MoveActorAbsolute",
	"packet.SetActorMotion",
	"packet.SetTime",
	"packet.RemoveActor",
	"packet.UpdateAttributes",
	"packet.LevelEvent",
	"packet.SetActorData",
	"packet.MoveActorDelta",
	"packet.MovePlayer",
	"packet.BlockActorData",
	"packet.PlayerAuthInput",
	"packet.LevelChunk",
	"packet.LevelSoundEvent",
	"packet.ActorEvent",
	"packet.NetworkChunkPublisherUpdate",
	"packet.UpdateSubChunkBlocks",
	"packet.SubChunk",
	"packet.SubChunkRequest",
	"packet.Animate",
	"packet.NetworkStackLatency",
	"packet.PlaySound",
}

var (
	dirS2C = color.GreenString("S") + "->" + color.CyanString("C")
	dirC2S = color.CyanString("C") + "->" + color.GreenString("S")
)

// logPacket writes a debug line for every packet that is not muted.
func logPacket(log *logrus.Entry, pk packet.Packet, toServer bool) {
	if d, ok := pk.(*packet.Disconnect); ok {
		log.Info(locale.Loc("disconnect", locale.Strmap{"Message": d.Message}))
	}

	name := reflect.TypeOf(pk).String()[1:]
	if slices.Contains(mutedPackets, name) {
		return
	}
	dir := dirS2C
	if toServer {
		dir = dirC2S
	}
	log.Debugf("%s 0x%02x, %s", dir, pk.ID(), name)
}
