package events

import "math"

// Enchantment is a single enchantment on an equipped item, as reported by the host.
type Enchantment struct {
	Name  string `json:"name" yaml:"name"`
	Type  int    `json:"type" yaml:"type"`
	Level int    `json:"level" yaml:"level"`
}

// Position is a world coordinate.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (p Position) DistanceTo(o Position) float64 {
	dx, dy, dz := o.X-p.X, o.Y-p.Y, o.Z-p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// EnchantmentProperty selects a numeric field of an Enchantment.
type EnchantmentProperty uint8

const (
	EnchantmentPropertyType EnchantmentProperty = iota
	EnchantmentPropertyLevel
	enchantmentPropertyCount
)

type MessageType uint8

const (
	MessageTypeChat MessageType = iota
	MessageTypeSay
	MessageTypeTell
	messageTypeCount
)

// Valid reports whether t is one of the declared message types.
// Codes for invalid values fall through to "tell".
func (t MessageType) Valid() bool {
	return t < messageTypeCount
}

type BlockPlacementMethod uint8

const (
	BlockPlacementMethodPlayer BlockPlacementMethod = iota
	BlockPlacementMethodAgent
	BlockPlacementMethodCommand
	blockPlacementMethodCount
)

type UseMethod uint8

const (
	UseMethodEquipArmor UseMethod = iota
	UseMethodEat
	UseMethodAttack
	UseMethodConsume
	UseMethodThrow
	UseMethodShoot
	UseMethodPlace
	UseMethodFillBottle
	UseMethodFillBucket
	UseMethodPourBucket
	UseMethodUseTool
	UseMethodInteract
	UseMethodRetrieved
	UseMethodDyed
	UseMethodTraded
	UseMethodBrushingCompleted
	useMethodCount
)

type AcquisitionMethod uint8

const (
	AcquisitionMethodNone AcquisitionMethod = iota
	AcquisitionMethodPickedUp
	AcquisitionMethodCrafted
	AcquisitionMethodTakenFromChest
	AcquisitionMethodTakenFromEnderChest
	AcquisitionMethodBought
	AcquisitionMethodAnvil
	AcquisitionMethodSmelted
	AcquisitionMethodBrewed
	AcquisitionMethodFilled
	AcquisitionMethodTrading
	AcquisitionMethodFishing
	AcquisitionMethodContainer
	acquisitionMethodCount
)

type ItemInteractMethod uint8

const (
	ItemInteractMethodUnknown ItemInteractMethod = iota
	ItemInteractMethodUse
	ItemInteractMethodPlace
	ItemInteractMethodInteract
	itemInteractMethodCount
)

type MobSpawnMethod uint8

const (
	MobSpawnMethodUnknown MobSpawnMethod = iota
	MobSpawnMethodSpawnEgg
	MobSpawnMethodCommand
	MobSpawnMethodDispenser
	MobSpawnMethodSpawner
	mobSpawnMethodCount
)

// ActorDamageCause mirrors the damage causes accepted by the /damage command.
type ActorDamageCause uint8

const (
	ActorDamageCauseNone ActorDamageCause = iota
	ActorDamageCauseOverride
	ActorDamageCauseContact
	ActorDamageCauseEntityAttack
	ActorDamageCauseProjectile
	ActorDamageCauseSuffocation
	ActorDamageCauseFall
	ActorDamageCauseFire
	ActorDamageCauseFireTick
	ActorDamageCauseLava
	ActorDamageCauseDrowning
	ActorDamageCauseBlockExplosion
	ActorDamageCauseEntityExplosion
	ActorDamageCauseVoid
	ActorDamageCauseSuicide
	ActorDamageCauseMagic
	ActorDamageCauseWither
	ActorDamageCauseStarve
	ActorDamageCauseAnvil
	ActorDamageCauseThorns
	ActorDamageCauseFallingBlock
	ActorDamageCausePiston
	ActorDamageCauseFlyIntoWall
	ActorDamageCauseMagma
	ActorDamageCauseFireworks
	ActorDamageCauseLightning
	ActorDamageCauseCharging
	ActorDamageCauseTemperature
	ActorDamageCauseFreezing
	ActorDamageCauseStalactite
	ActorDamageCauseStalagmite
	ActorDamageCauseRamAttack
	ActorDamageCauseSonicBoom
	ActorDamageCauseCampfire
	ActorDamageCauseSoulCampfire
	actorDamageCauseCount
)

type TravelMethod uint8

const (
	TravelMethodWalk TravelMethod = iota
	TravelMethodSwimWater
	TravelMethodFall
	TravelMethodClimb
	TravelMethodSwimLava
	TravelMethodFly
	TravelMethodRiding
	TravelMethodSneak
	TravelMethodSprint
	TravelMethodBounce
	TravelMethodFrostWalk
	TravelMethodTeleport
	travelMethodCount
)
