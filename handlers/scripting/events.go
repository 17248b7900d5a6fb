package scripting

import (
	"github.com/bedrock-tool/mcevents/events"
	"github.com/dop251/goja"
)

// registrations maps each script-facing name to a function registering the
// JS callback with the host through the aliases.
func (v *VM) registrations() map[string]func(cb goja.Value) error {
	return map[string]func(cb goja.Value) error{
		"onBlockBroken": func(cb goja.Value) error {
			f, err := export[func(block, tool, count int) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnBlockBroken(func(block, tool, count int) {
				v.call(events.BlockBroken, func() error { return f(block, tool, count) })
			})
		},
		"onBlockPlaced": func(cb goja.Value) error {
			f, err := export[func(block, tool, count int, method events.BlockPlacementMethod) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnBlockPlaced(func(block, tool, count int, method events.BlockPlacementMethod) {
				v.call(events.BlockPlaced, func() error { return f(block, tool, count, method) })
			})
		},
		"onEndOfDay": func(cb goja.Value) error {
			f, err := export[func() error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnEndOfDay(func() {
				v.call(events.EndOfDay, f)
			})
		},
		"onItemUsed": func(cb goja.Value) error {
			f, err := export[func(item int, method string) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnItemUsed(func(item int, method string) {
				v.call(events.ItemUsed, func() error { return f(item, method) })
			})
		},
		"onItemAcquired": func(cb goja.Value) error {
			f, err := export[func(item, count int, method events.AcquisitionMethod) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnItemAcquired(func(item, count int, method events.AcquisitionMethod) {
				v.call(events.ItemAcquired, func() error { return f(item, count, method) })
			})
		},
		"onItemCrafted": func(cb goja.Value) error {
			f, err := export[func(item, count int) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnItemCrafted(func(item, count int) {
				v.call(events.ItemCrafted, func() error { return f(item, count) })
			})
		},
		"onItemDropped": func(cb goja.Value) error {
			f, err := export[func(item, count int) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnItemDropped(func(item, count int) {
				v.call(events.ItemDropped, func() error { return f(item, count) })
			})
		},
		"onItemEquipped": func(cb goja.Value) error {
			f, err := export[func(item, slot int, enchantments []events.Enchantment) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnItemEquipped(func(item, slot int, enchantments []events.Enchantment) {
				v.call(events.ItemEquipped, func() error { return f(item, slot, enchantments) })
			})
		},
		"onItemInteracted": func(cb goja.Value) error {
			f, err := export[func(item, count int, method events.ItemInteractMethod) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnItemInteracted(func(item, count int, method events.ItemInteractMethod) {
				v.call(events.ItemInteracted, func() error { return f(item, count, method) })
			})
		},
		"onItemSmelted": func(cb goja.Value) error {
			f, err := export[func(item, fuelSource int) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnItemSmelted(func(item, fuelSource int) {
				v.call(events.ItemSmelted, func() error { return f(item, fuelSource) })
			})
		},
		"onCameraUsed": func(cb goja.Value) error {
			f, err := export[func(isSelfie bool) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnCameraUsed(func(isSelfie bool) {
				v.call(events.CameraUsed, func() error { return f(isSelfie) })
			})
		},
		"onMobKilled": func(cb goja.Value) error {
			f, err := export[func(mob, weapon int, isMonster bool) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnMobKilled(func(mob, weapon int, isMonster bool) {
				v.call(events.MobKilled, func() error { return f(mob, weapon, isMonster) })
			})
		},
		"onEntitySpawned": func(cb goja.Value) error {
			f, err := export[func(mob int, spawner string) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnEntitySpawned(func(mob int, spawner string) {
				v.call(events.EntitySpawned, func() error { return f(mob, spawner) })
			})
		},
		"onPlayerBounced": func(cb goja.Value) error {
			f, err := export[func(height float64, block int) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnPlayerBounced(func(height float64, block int) {
				v.call(events.PlayerBounced, func() error { return f(height, block) })
			})
		},
		"onPlayerDied": func(cb goja.Value) error {
			f, err := export[func(cause string, mob int) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnPlayerDied(func(cause string, mob int) {
				v.call(events.PlayerDied, func() error { return f(cause, mob) })
			})
		},
		"onPlayerMessage": func(cb goja.Value) error {
			f, err := export[func(message, sender, receiver, messageType string) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnPlayerMessage(func(message, sender, receiver, messageType string) {
				v.call(events.PlayerMessage, func() error { return f(message, sender, receiver, messageType) })
			})
		},
		"onPlayerTeleported": func(cb goja.Value) error {
			f, err := export[func(distance float64) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnPlayerTeleported(func(distance float64) {
				v.call(events.PlayerTeleported, func() error { return f(distance) })
			})
		},
		"onPlayerTravelled": func(cb goja.Value) error {
			f, err := export[func(location events.Position, mode string, distance float64) error](v, cb)
			if err != nil {
				return err
			}
			return v.aliases.OnPlayerTravelled(func(location events.Position, mode string, distance float64) {
				v.call(events.PlayerTravelled, func() error { return f(location, mode, distance) })
			})
		},
	}
}
