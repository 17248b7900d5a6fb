package events

// Aliases re-exposes the host registrations. Every method makes exactly one
// host call with the handler unchanged and returns the host's error as is.
type Aliases struct {
	host Host
}

func NewAliases(host Host) *Aliases {
	return &Aliases{host: host}
}

func (a *Aliases) OnBlockBroken(handler BlockBrokenHandler) error {
	return a.host.OnBlockBroken(handler)
}

func (a *Aliases) OnBlockPlaced(handler BlockPlacedHandler) error {
	return a.host.OnBlockPlaced(handler)
}

func (a *Aliases) OnEndOfDay(handler EndOfDayHandler) error {
	return a.host.OnEndOfDay(handler)
}

func (a *Aliases) OnItemUsed(handler ItemUsedHandler) error {
	return a.host.OnItemUsed(handler)
}

func (a *Aliases) OnItemAcquired(handler ItemAcquiredHandler) error {
	return a.host.OnItemAcquired(handler)
}

// OnItemCrafted is kept for completeness, current hosts never fire it.
func (a *Aliases) OnItemCrafted(handler ItemCraftedHandler) error {
	return a.host.OnItemCrafted(handler)
}

func (a *Aliases) OnItemDropped(handler ItemDroppedHandler) error {
	return a.host.OnItemDropped(handler)
}

func (a *Aliases) OnItemEquipped(handler ItemEquippedHandler) error {
	return a.host.OnItemEquipped(handler)
}

func (a *Aliases) OnItemInteracted(handler ItemInteractedHandler) error {
	return a.host.OnItemInteracted(handler)
}

func (a *Aliases) OnItemSmelted(handler ItemSmeltedHandler) error {
	return a.host.OnItemSmelted(handler)
}

func (a *Aliases) OnCameraUsed(handler CameraUsedHandler) error {
	return a.host.OnCameraUsed(handler)
}

func (a *Aliases) OnMobKilled(handler MobKilledHandler) error {
	return a.host.OnMobKilled(handler)
}

func (a *Aliases) OnEntitySpawned(handler EntitySpawnedHandler) error {
	return a.host.OnEntitySpawned(handler)
}

func (a *Aliases) OnPlayerBounced(handler PlayerBouncedHandler) error {
	return a.host.OnPlayerBounced(handler)
}

func (a *Aliases) OnPlayerDied(handler PlayerDiedHandler) error {
	return a.host.OnPlayerDied(handler)
}

func (a *Aliases) OnPlayerMessage(handler PlayerMessageHandler) error {
	return a.host.OnPlayerMessage(handler)
}

func (a *Aliases) OnPlayerTeleported(handler PlayerTeleportedHandler) error {
	return a.host.OnPlayerTeleported(handler)
}

func (a *Aliases) OnPlayerTravelled(handler PlayerTravelledHandler) error {
	return a.host.OnPlayerTravelled(handler)
}

var _ Host = (*Aliases)(nil)
