// Package bedrock turns Minecraft Bedrock packets into host event fires.
package bedrock

import (
	"github.com/bedrock-tool/mcevents/events"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

const (
	dayLength  = 24000
	sunsetTick = 12000
	// stairs and slabs step down at most this far between two auth inputs
	maxStepDown = 0.6
)

// Emitter receives the events a packet stream can produce.
type Emitter interface {
	FireBlockBroken(block, tool, count int)
	FireBlockPlaced(block, tool, count int, method events.BlockPlacementMethod)
	FireEndOfDay()
	FireItemUsed(item int, method string)
	FireItemDropped(item, count int)
	FireItemEquipped(item, slot int, enchantments []events.Enchantment)
	FireItemInteracted(item, count int, method events.ItemInteractMethod)
	FireEntitySpawned(mob int, spawner string)
	FirePlayerDied(cause string, mob int)
	FirePlayerMessage(message, sender, receiver, messageType string)
	FirePlayerTeleported(distance float64)
	FirePlayerTravelled(location events.Position, mode string, distance float64)
}

// Source tracks the local player and emits events for the packets it sees.
// It is not safe for concurrent use, feed it from one connection loop.
type Source struct {
	// LocalName is the receiver of whispers.
	LocalName string

	emit Emitter
	ids  *IDTable
	log  *logrus.Entry

	runtimeID   uint64
	position    mgl32.Vec3
	hasPosition bool
	time        int64
	hasTime     bool
	armour      [4]int32
}

func NewSource(emit Emitter, ids *IDTable) *Source {
	if ids == nil {
		ids = NewIDTable()
	}
	return &Source{
		emit: emit,
		ids:  ids,
		log:  logrus.WithField("part", "bedrock"),
	}
}

// Spawned sets the local player state from the start game data.
func (s *Source) Spawned(runtimeID uint64, position mgl32.Vec3, time int64) {
	s.runtimeID = runtimeID
	s.position = position
	s.hasPosition = true
	s.time = time
	s.hasTime = true
}

func (s *Source) HandlePacket(pk packet.Packet, toServer bool) {
	switch pk := pk.(type) {
	case *packet.StartGame:
		s.Spawned(pk.EntityRuntimeID, pk.PlayerPosition, int64(pk.Time))
	case *packet.SetTime:
		s.setTime(int64(pk.Time))
	case *packet.MovePlayer:
		if pk.EntityRuntimeID != s.runtimeID {
			return
		}
		mode := events.TravelMethodWalk
		if pk.RiddenEntityRuntimeID != 0 {
			mode = events.TravelMethodRiding
		} else if !pk.OnGround && pk.Position.Y() < s.position.Y() {
			mode = events.TravelMethodFall
		}
		s.move(pk.Position, pk.Mode == packet.MoveModeTeleport, mode)
	case *packet.PlayerAuthInput:
		s.move(pk.Position, false, s.inputMode(pk))
	case *packet.Text:
		s.text(pk)
	case *packet.AddActor:
		s.emit.FireEntitySpawned(s.ids.ID(pk.EntityType), events.SpawnerMethodCode(events.MobSpawnMethodUnknown))
	case *packet.MobArmourEquipment:
		if pk.EntityRuntimeID != s.runtimeID {
			return
		}
		s.equip([]protocol.ItemInstance{pk.Helmet, pk.Chestplate, pk.Leggings, pk.Boots})
	case *packet.InventoryContent:
		if pk.WindowID == protocol.WindowIDArmour {
			s.equip(pk.Content)
		}
	case *packet.InventorySlot:
		if pk.WindowID == protocol.WindowIDArmour {
			s.equipSlot(int(pk.Slot), pk.NewItem)
		}
	case *packet.InventoryTransaction:
		if toServer {
			s.transaction(pk)
		}
	case *packet.DeathInfo:
		s.emit.FirePlayerDied(events.DeathCauseCode(deathCauseFromMessage(pk.Cause)), -1)
	}
}

// MobID returns the numeric handle used for an entity identifier.
func (s *Source) MobID(identifier string) int {
	return s.ids.ID(identifier)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// crossedSunset reports whether a sunset lies in (prev, next].
func crossedSunset(prev, next int64) bool {
	return floorDiv(next-sunsetTick, dayLength) > floorDiv(prev-sunsetTick, dayLength)
}

func (s *Source) setTime(t int64) {
	prev, had := s.time, s.hasTime
	s.time, s.hasTime = t, true
	if had && crossedSunset(prev, t) {
		s.emit.FireEndOfDay()
	}
}

// inputMode guesses the travel mode from the client's input flags. Auth input
// carries no ground state, so only a drop larger than a step counts as a fall.
func (s *Source) inputMode(pk *packet.PlayerAuthInput) events.TravelMethod {
	switch {
	case pk.InputData&packet.InputFlagSneaking != 0:
		return events.TravelMethodSneak
	case pk.InputData&packet.InputFlagSprinting != 0:
		return events.TravelMethodSprint
	case s.hasPosition && s.position.Y()-pk.Position.Y() > maxStepDown:
		return events.TravelMethodFall
	}
	return events.TravelMethodWalk
}

func toPosition(v mgl32.Vec3) events.Position {
	return events.Position{X: float64(v.X()), Y: float64(v.Y()), Z: float64(v.Z())}
}

func (s *Source) move(pos mgl32.Vec3, teleport bool, mode events.TravelMethod) {
	prev, had := s.position, s.hasPosition
	s.position, s.hasPosition = pos, true
	if !had {
		return
	}
	distance := toPosition(prev).DistanceTo(toPosition(pos))
	if distance == 0 {
		return
	}
	if teleport {
		s.emit.FirePlayerTeleported(distance)
		return
	}
	s.emit.FirePlayerTravelled(toPosition(pos), events.TravelModeCode(mode), distance)
}

func (s *Source) text(pk *packet.Text) {
	var kind events.MessageType
	receiver := ""
	switch pk.TextType {
	case packet.TextTypeChat:
		kind = events.MessageTypeChat
	case packet.TextTypeAnnouncement:
		kind = events.MessageTypeSay
	case packet.TextTypeWhisper:
		kind = events.MessageTypeTell
		receiver = s.LocalName
	default:
		return
	}
	s.emit.FirePlayerMessage(pk.Message, pk.SourceName, receiver, events.MessageTypeCode(kind))
}

func (s *Source) equip(items []protocol.ItemInstance) {
	for slot, item := range items {
		s.equipSlot(slot, item)
	}
}

// equipSlot fires ItemEquipped when the item in an armour slot changes to a
// non empty one.
func (s *Source) equipSlot(slot int, item protocol.ItemInstance) {
	if slot < 0 || slot >= len(s.armour) {
		return
	}
	id := item.Stack.NetworkID
	if id == s.armour[slot] {
		return
	}
	s.armour[slot] = id
	if id == 0 {
		return
	}
	s.emit.FireItemEquipped(int(id), slot, decodeEnchantments(item.Stack.NBTData))
}

func heldItem(stack protocol.ItemStack) int {
	if stack.NetworkID == 0 {
		return -1
	}
	return int(stack.NetworkID)
}

func (s *Source) transaction(pk *packet.InventoryTransaction) {
	switch td := pk.TransactionData.(type) {
	case *protocol.UseItemTransactionData:
		held := td.HeldItem.Stack
		tool := heldItem(held)
		switch td.ActionType {
		case protocol.UseItemActionBreakBlock:
			s.emit.FireBlockBroken(int(td.BlockRuntimeID), tool, 1)
		case protocol.UseItemActionClickBlock:
			if held.BlockRuntimeID != 0 {
				s.emit.FireBlockPlaced(int(held.BlockRuntimeID), tool, 1, events.BlockPlacementMethodPlayer)
			} else if tool != -1 {
				s.emit.FireItemInteracted(tool, 1, events.ItemInteractMethodUse)
			}
		case protocol.UseItemActionClickAir:
			if tool != -1 {
				s.emit.FireItemUsed(tool, events.UseMethodCode(events.UseMethodUseTool))
			}
		}
	case *protocol.NormalTransactionData:
		for _, action := range pk.Actions {
			if action.SourceType != protocol.InventoryActionSourceWorld {
				continue
			}
			if stack := action.NewItem.Stack; stack.NetworkID != 0 && stack.Count > 0 {
				s.emit.FireItemDropped(int(stack.NetworkID), int(stack.Count))
			}
		}
	default:
		s.log.Tracef("ignoring transaction %T", td)
	}
}
