package scripting

import (
	"strings"

	"github.com/bedrock-tool/mcevents/events"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func translators() map[string]any {
	return map[string]any{
		"messageType":           events.MessageTypeCode,
		"enchantmentProperty":   events.EnchantmentPropertyOf,
		"enchantmentName":       events.EnchantmentName,
		"useMethod":             events.UseMethodCode,
		"spawnerMethod":         events.SpawnerMethodCode,
		"deathCause":            events.DeathCauseCode,
		"travelMode":            events.TravelModeCode,
		"_blockPlacementMethod": events.BlockPlacementMethodCode,
		"_acquisitionMethod":    events.AcquisitionMethodCode,
		"_itemInteractMethod":   events.ItemInteractMethodCode,
	}
}

// memberName turns a host code like "entity_attack" into "EntityAttack".
func memberName(code string) string {
	var b strings.Builder
	title := cases.Title(language.English)
	for _, part := range strings.Split(code, "_") {
		b.WriteString(title.String(part))
	}
	return b.String()
}

// enums builds the script-side enum objects. String-coded enums are named
// from their codes, the numeric ones are listed here.
func enums() map[string]map[string]int {
	m := map[string]map[string]int{
		"EnchantmentProperty": {
			"Type":  int(events.EnchantmentPropertyType),
			"Level": int(events.EnchantmentPropertyLevel),
		},
		"BlockPlacementMethod": {
			"Player":  int(events.BlockPlacementMethodPlayer),
			"Agent":   int(events.BlockPlacementMethodAgent),
			"Command": int(events.BlockPlacementMethodCommand),
		},
		"AcquisitionMethod": {
			"None":                int(events.AcquisitionMethodNone),
			"PickedUp":            int(events.AcquisitionMethodPickedUp),
			"Crafted":             int(events.AcquisitionMethodCrafted),
			"TakenFromChest":      int(events.AcquisitionMethodTakenFromChest),
			"TakenFromEnderChest": int(events.AcquisitionMethodTakenFromEnderChest),
			"Bought":              int(events.AcquisitionMethodBought),
			"Anvil":               int(events.AcquisitionMethodAnvil),
			"Smelted":             int(events.AcquisitionMethodSmelted),
			"Brewed":              int(events.AcquisitionMethodBrewed),
			"Filled":              int(events.AcquisitionMethodFilled),
			"Trading":             int(events.AcquisitionMethodTrading),
			"Fishing":             int(events.AcquisitionMethodFishing),
			"Container":           int(events.AcquisitionMethodContainer),
		},
		"ItemInteractMethod": {
			"Unknown":  int(events.ItemInteractMethodUnknown),
			"Use":      int(events.ItemInteractMethodUse),
			"Place":    int(events.ItemInteractMethodPlace),
			"Interact": int(events.ItemInteractMethodInteract),
		},
	}
	for enum, codes := range events.CodeTable() {
		members := make(map[string]int, len(codes))
		for i, code := range codes {
			members[memberName(code)] = i
		}
		m[enum] = members
	}
	return m
}
