package events

import "slices"

// Code tables are keyed arrays. Each is paired with an index expression that
// only compiles when the table length equals the enum's member count, so a
// new enumerator without a code is a build error instead of a silent default.

const unknownCode = "unknown"

var messageTypeCodes = [...]string{
	MessageTypeChat: "chat",
	MessageTypeSay:  "say",
	MessageTypeTell: "tell",
}

var _ = [1]struct{}{}[len(messageTypeCodes)-int(messageTypeCount)]

var useMethodCodes = [...]string{
	UseMethodEquipArmor:        "equip_armor",
	UseMethodEat:               "eat",
	UseMethodAttack:            "attack",
	UseMethodConsume:           "consume",
	UseMethodThrow:             "throw",
	UseMethodShoot:             "shoot",
	UseMethodPlace:             "place",
	UseMethodFillBottle:        "fill_bottle",
	UseMethodFillBucket:        "fill_bucket",
	UseMethodPourBucket:        "pour_bucket",
	UseMethodUseTool:           "use_tool",
	UseMethodInteract:          "interact",
	UseMethodRetrieved:         "retrieved",
	UseMethodDyed:              "dyed",
	UseMethodTraded:            "traded",
	UseMethodBrushingCompleted: "brushing_completed",
}

var _ = [1]struct{}{}[len(useMethodCodes)-int(useMethodCount)]

var mobSpawnMethodCodes = [...]string{
	MobSpawnMethodUnknown:   unknownCode,
	MobSpawnMethodSpawnEgg:  "spawn_egg",
	MobSpawnMethodCommand:   "command",
	MobSpawnMethodDispenser: "dispenser",
	MobSpawnMethodSpawner:   "spawner",
}

var _ = [1]struct{}{}[len(mobSpawnMethodCodes)-int(mobSpawnMethodCount)]

var actorDamageCauseCodes = [...]string{
	ActorDamageCauseNone:            "none",
	ActorDamageCauseOverride:        "override",
	ActorDamageCauseContact:         "contact",
	ActorDamageCauseEntityAttack:    "entity_attack",
	ActorDamageCauseProjectile:      "projectile",
	ActorDamageCauseSuffocation:     "suffocation",
	ActorDamageCauseFall:            "fall",
	ActorDamageCauseFire:            "fire",
	ActorDamageCauseFireTick:        "fire_tick",
	ActorDamageCauseLava:            "lava",
	ActorDamageCauseDrowning:        "drowning",
	ActorDamageCauseBlockExplosion:  "block_explosion",
	ActorDamageCauseEntityExplosion: "entity_explosion",
	ActorDamageCauseVoid:            "void",
	ActorDamageCauseSuicide:         "suicide",
	ActorDamageCauseMagic:           "magic",
	ActorDamageCauseWither:          "wither",
	ActorDamageCauseStarve:          "starve",
	ActorDamageCauseAnvil:           "anvil",
	ActorDamageCauseThorns:          "thorns",
	ActorDamageCauseFallingBlock:    "falling_block",
	ActorDamageCausePiston:          "piston",
	ActorDamageCauseFlyIntoWall:     "fly_into_wall",
	ActorDamageCauseMagma:           "magma",
	ActorDamageCauseFireworks:       "fireworks",
	ActorDamageCauseLightning:       "lightning",
	ActorDamageCauseCharging:        "charging",
	ActorDamageCauseTemperature:     "temperature",
	ActorDamageCauseFreezing:        "freezing",
	ActorDamageCauseStalactite:      "stalactite",
	ActorDamageCauseStalagmite:      "stalagmite",
	ActorDamageCauseRamAttack:       "ram_attack",
	ActorDamageCauseSonicBoom:       "sonic_boom",
	ActorDamageCauseCampfire:        "campfire",
	ActorDamageCauseSoulCampfire:    "soul_campfire",
}

var _ = [1]struct{}{}[len(actorDamageCauseCodes)-int(actorDamageCauseCount)]

var travelMethodCodes = [...]string{
	TravelMethodWalk:      "walk",
	TravelMethodSwimWater: "swim_water",
	TravelMethodFall:      "fall",
	TravelMethodClimb:     "climb",
	TravelMethodSwimLava:  "swim_lava",
	TravelMethodFly:       "fly",
	TravelMethodRiding:    "riding",
	TravelMethodSneak:     "sneak",
	TravelMethodSprint:    "sprint",
	TravelMethodBounce:    "bounce",
	TravelMethodFrostWalk: "frost_walk",
	TravelMethodTeleport:  "teleport",
}

var _ = [1]struct{}{}[len(travelMethodCodes)-int(travelMethodCount)]

// the numeric enums have no table, only their member count is pinned here
// so tests and parsers can range over them.
const (
	BlockPlacementMethods = int(blockPlacementMethodCount)
	AcquisitionMethods    = int(acquisitionMethodCount)
	ItemInteractMethods   = int(itemInteractMethodCount)
	EnchantmentProperties = int(enchantmentPropertyCount)
)

var (
	messageTypeByCode      = reverse[MessageType](messageTypeCodes[:])
	useMethodByCode        = reverse[UseMethod](useMethodCodes[:])
	mobSpawnMethodByCode   = reverse[MobSpawnMethod](mobSpawnMethodCodes[:])
	actorDamageCauseByCode = reverse[ActorDamageCause](actorDamageCauseCodes[:])
	travelMethodByCode     = reverse[TravelMethod](travelMethodCodes[:])
)

func reverse[E ~uint8](codes []string) map[string]E {
	m := make(map[string]E, len(codes))
	for i, code := range codes {
		m[code] = E(i)
	}
	return m
}

func lookup[E ~uint8](codes []string, e E, fallback string) string {
	if int(e) < len(codes) {
		return codes[e]
	}
	return fallback
}

// MessageTypeCode returns the host string for t. Values other than Chat and Say
// map to "tell".
func MessageTypeCode(t MessageType) string {
	switch t {
	case MessageTypeChat, MessageTypeSay:
		return messageTypeCodes[t]
	}
	// TODO: decide whether an unknown message type should keep mapping to "tell" once the host adds a fourth kind.
	return messageTypeCodes[MessageTypeTell]
}

// EnchantmentPropertyOf returns e.Type for EnchantmentPropertyType and e.Level
// for anything else.
func EnchantmentPropertyOf(e Enchantment, p EnchantmentProperty) int {
	if p == EnchantmentPropertyType {
		return e.Type
	}
	return e.Level
}

func EnchantmentName(e Enchantment) string {
	return e.Name
}

func UseMethodCode(m UseMethod) string {
	return lookup(useMethodCodes[:], m, unknownCode)
}

func SpawnerMethodCode(m MobSpawnMethod) string {
	return lookup(mobSpawnMethodCodes[:], m, unknownCode)
}

func DeathCauseCode(c ActorDamageCause) string {
	return lookup(actorDamageCauseCodes[:], c, unknownCode)
}

func TravelModeCode(m TravelMethod) string {
	return lookup(travelMethodCodes[:], m, unknownCode)
}

func BlockPlacementMethodCode(m BlockPlacementMethod) int { return int(m) }
func AcquisitionMethodCode(m AcquisitionMethod) int       { return int(m) }
func ItemInteractMethodCode(m ItemInteractMethod) int     { return int(m) }

func ParseMessageType(code string) (MessageType, bool) {
	t, ok := messageTypeByCode[code]
	return t, ok
}

func ParseUseMethod(code string) (UseMethod, bool) {
	m, ok := useMethodByCode[code]
	return m, ok
}

func ParseMobSpawnMethod(code string) (MobSpawnMethod, bool) {
	m, ok := mobSpawnMethodByCode[code]
	return m, ok
}

func ParseActorDamageCause(code string) (ActorDamageCause, bool) {
	c, ok := actorDamageCauseByCode[code]
	return c, ok
}

func ParseTravelMethod(code string) (TravelMethod, bool) {
	m, ok := travelMethodByCode[code]
	return m, ok
}

func (t MessageType) String() string      { return MessageTypeCode(t) }
func (m UseMethod) String() string        { return UseMethodCode(m) }
func (m MobSpawnMethod) String() string   { return SpawnerMethodCode(m) }
func (c ActorDamageCause) String() string { return DeathCauseCode(c) }
func (m TravelMethod) String() string     { return TravelModeCode(m) }

// CodeTable lists every string-coded enumeration with its codes in member order.
func CodeTable() map[string][]string {
	return map[string][]string{
		"MessageType":      slices.Clone(messageTypeCodes[:]),
		"UseMethod":        slices.Clone(useMethodCodes[:]),
		"MobSpawnMethod":   slices.Clone(mobSpawnMethodCodes[:]),
		"ActorDamageCause": slices.Clone(actorDamageCauseCodes[:]),
		"TravelMethod":     slices.Clone(travelMethodCodes[:]),
	}
}
