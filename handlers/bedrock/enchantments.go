package bedrock

import (
	"strings"

	"github.com/bedrock-tool/mcevents/events"
)

// bedrock enchantment type ids
var enchantmentNames = []string{
	"protection",
	"fire_protection",
	"feather_falling",
	"blast_protection",
	"projectile_protection",
	"thorns",
	"respiration",
	"depth_strider",
	"aqua_affinity",
	"sharpness",
	"smite",
	"bane_of_arthropods",
	"knockback",
	"fire_aspect",
	"looting",
	"efficiency",
	"silk_touch",
	"unbreaking",
	"fortune",
	"power",
	"punch",
	"flame",
	"infinity",
	"luck_of_the_sea",
	"lure",
	"frost_walker",
	"mending",
	"binding",
	"vanishing",
	"impaling",
	"riptide",
	"loyalty",
	"channeling",
	"multishot",
	"piercing",
	"quick_charge",
	"soul_speed",
	"swift_sneak",
}

func enchantmentName(id int) string {
	if id >= 0 && id < len(enchantmentNames) {
		return enchantmentNames[id]
	}
	return "unknown"
}

func nbtInt(v any) (int, bool) {
	switch v := v.(type) {
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// decodeEnchantments reads the "ench" list of an item's nbt.
func decodeEnchantments(nbt map[string]any) []events.Enchantment {
	var list []any
	switch l := nbt["ench"].(type) {
	case []any:
		list = l
	case []map[string]any:
		for _, e := range l {
			list = append(list, e)
		}
	}

	out := make([]events.Enchantment, 0, len(list))
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		id, ok := nbtInt(m["id"])
		if !ok {
			continue
		}
		lvl, _ := nbtInt(m["lvl"])
		out = append(out, events.Enchantment{Name: enchantmentName(id), Type: id, Level: lvl})
	}
	return out
}

// death message keys, "death.attack.<key>[.suffix]"
var deathCauses = map[string]events.ActorDamageCause{
	"inFire":        events.ActorDamageCauseFire,
	"onFire":        events.ActorDamageCauseFireTick,
	"lava":          events.ActorDamageCauseLava,
	"drown":         events.ActorDamageCauseDrowning,
	"fall":          events.ActorDamageCauseFall,
	"explosion":     events.ActorDamageCauseBlockExplosion,
	"mob":           events.ActorDamageCauseEntityAttack,
	"player":        events.ActorDamageCauseEntityAttack,
	"arrow":         events.ActorDamageCauseProjectile,
	"trident":       events.ActorDamageCauseProjectile,
	"thrown":        events.ActorDamageCauseProjectile,
	"magic":         events.ActorDamageCauseMagic,
	"wither":        events.ActorDamageCauseWither,
	"starve":        events.ActorDamageCauseStarve,
	"anvil":         events.ActorDamageCauseAnvil,
	"thorns":        events.ActorDamageCauseThorns,
	"fallingBlock":  events.ActorDamageCauseFallingBlock,
	"inWall":        events.ActorDamageCauseSuffocation,
	"outOfWorld":    events.ActorDamageCauseVoid,
	"lightningBolt": events.ActorDamageCauseLightning,
	"cactus":        events.ActorDamageCauseContact,
	"sweetBerry":    events.ActorDamageCauseContact,
	"hotFloor":      events.ActorDamageCauseMagma,
	"flyIntoWall":   events.ActorDamageCauseFlyIntoWall,
	"fireworks":     events.ActorDamageCauseFireworks,
	"freeze":        events.ActorDamageCauseFreezing,
	"sonicBoom":     events.ActorDamageCauseSonicBoom,
	"stalactite":    events.ActorDamageCauseStalactite,
	"stalagmite":    events.ActorDamageCauseStalagmite,
	"generic":       events.ActorDamageCauseNone,
}

func deathCauseFromMessage(key string) events.ActorDamageCause {
	key = strings.TrimPrefix(key, "%")
	key = strings.TrimPrefix(key, "death.attack.")
	key, _, _ = strings.Cut(key, ".")
	if c, ok := deathCauses[key]; ok {
		return c
	}
	return events.ActorDamageCauseNone
}
