package registry

import "github.com/bedrock-tool/mcevents/events"

func (r *Registry) FireBlockBroken(block, tool, count int) {
	fire(r, events.BlockBroken, &r.blockBroken, func(h events.BlockBrokenHandler) {
		h(block, tool, count)
	})
}

func (r *Registry) FireBlockPlaced(block, tool, count int, method events.BlockPlacementMethod) {
	fire(r, events.BlockPlaced, &r.blockPlaced, func(h events.BlockPlacedHandler) {
		h(block, tool, count, method)
	})
}

func (r *Registry) FireEndOfDay() {
	fire(r, events.EndOfDay, &r.endOfDay, func(h events.EndOfDayHandler) {
		h()
	})
}

func (r *Registry) FireItemUsed(item int, method string) {
	fire(r, events.ItemUsed, &r.itemUsed, func(h events.ItemUsedHandler) {
		h(item, method)
	})
}

func (r *Registry) FireItemAcquired(item, count int, method events.AcquisitionMethod) {
	fire(r, events.ItemAcquired, &r.itemAcquired, func(h events.ItemAcquiredHandler) {
		h(item, count, method)
	})
}

func (r *Registry) FireItemCrafted(item, count int) {
	fire(r, events.ItemCrafted, &r.itemCrafted, func(h events.ItemCraftedHandler) {
		h(item, count)
	})
}

func (r *Registry) FireItemDropped(item, count int) {
	fire(r, events.ItemDropped, &r.itemDropped, func(h events.ItemDroppedHandler) {
		h(item, count)
	})
}

func (r *Registry) FireItemEquipped(item, slot int, enchantments []events.Enchantment) {
	fire(r, events.ItemEquipped, &r.itemEquipped, func(h events.ItemEquippedHandler) {
		h(item, slot, enchantments)
	})
}

func (r *Registry) FireItemInteracted(item, count int, method events.ItemInteractMethod) {
	fire(r, events.ItemInteracted, &r.itemInteracted, func(h events.ItemInteractedHandler) {
		h(item, count, method)
	})
}

func (r *Registry) FireItemSmelted(item, fuelSource int) {
	fire(r, events.ItemSmelted, &r.itemSmelted, func(h events.ItemSmeltedHandler) {
		h(item, fuelSource)
	})
}

func (r *Registry) FireCameraUsed(isSelfie bool) {
	fire(r, events.CameraUsed, &r.cameraUsed, func(h events.CameraUsedHandler) {
		h(isSelfie)
	})
}

func (r *Registry) FireMobKilled(mob, weapon int, isMonster bool) {
	fire(r, events.MobKilled, &r.mobKilled, func(h events.MobKilledHandler) {
		h(mob, weapon, isMonster)
	})
}

func (r *Registry) FireEntitySpawned(mob int, spawner string) {
	fire(r, events.EntitySpawned, &r.entitySpawned, func(h events.EntitySpawnedHandler) {
		h(mob, spawner)
	})
}

func (r *Registry) FirePlayerBounced(height float64, block int) {
	fire(r, events.PlayerBounced, &r.playerBounced, func(h events.PlayerBouncedHandler) {
		h(height, block)
	})
}

func (r *Registry) FirePlayerDied(cause string, mob int) {
	fire(r, events.PlayerDied, &r.playerDied, func(h events.PlayerDiedHandler) {
		h(cause, mob)
	})
}

func (r *Registry) FirePlayerMessage(message, sender, receiver, messageType string) {
	fire(r, events.PlayerMessage, &r.playerMessage, func(h events.PlayerMessageHandler) {
		h(message, sender, receiver, messageType)
	})
}

func (r *Registry) FirePlayerTeleported(distance float64) {
	fire(r, events.PlayerTeleported, &r.playerTeleported, func(h events.PlayerTeleportedHandler) {
		h(distance)
	})
}

func (r *Registry) FirePlayerTravelled(location events.Position, mode string, distance float64) {
	fire(r, events.PlayerTravelled, &r.playerTravelled, func(h events.PlayerTravelledHandler) {
		h(location, mode, distance)
	})
}
