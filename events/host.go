package events

// Name identifies a host event.
type Name string

const (
	BlockBroken      Name = "BlockBroken"
	BlockPlaced      Name = "BlockPlaced"
	EndOfDay         Name = "EndOfDay"
	ItemUsed         Name = "ItemUsed"
	ItemAcquired     Name = "ItemAcquired"
	ItemCrafted      Name = "ItemCrafted"
	ItemDropped      Name = "ItemDropped"
	ItemEquipped     Name = "ItemEquipped"
	ItemInteracted   Name = "ItemInteracted"
	ItemSmelted      Name = "ItemSmelted"
	CameraUsed       Name = "CameraUsed"
	MobKilled        Name = "MobKilled"
	EntitySpawned    Name = "EntitySpawned"
	PlayerBounced    Name = "PlayerBounced"
	PlayerDied       Name = "PlayerDied"
	PlayerMessage    Name = "PlayerMessage"
	PlayerTeleported Name = "PlayerTeleported"
	PlayerTravelled  Name = "PlayerTravelled"
)

// Names lists every event in declaration order.
var Names = []Name{
	BlockBroken, BlockPlaced, EndOfDay,
	ItemUsed, ItemAcquired, ItemCrafted, ItemDropped, ItemEquipped, ItemInteracted, ItemSmelted,
	CameraUsed, MobKilled, EntitySpawned,
	PlayerBounced, PlayerDied, PlayerMessage, PlayerTeleported, PlayerTravelled,
}

// Identifiers (block, tool, item, mob...) are opaque host handles.
// A tool, weapon or mob of -1 means none was involved.
type (
	BlockBrokenHandler      func(block, tool, count int)
	BlockPlacedHandler      func(block, tool, count int, method BlockPlacementMethod)
	EndOfDayHandler         func()
	ItemUsedHandler         func(item int, method string)
	ItemAcquiredHandler     func(item, count int, method AcquisitionMethod)
	ItemCraftedHandler      func(item, count int)
	ItemDroppedHandler      func(item, count int)
	ItemEquippedHandler     func(item, slot int, enchantments []Enchantment)
	ItemInteractedHandler   func(item, count int, method ItemInteractMethod)
	ItemSmeltedHandler      func(item, fuelSource int)
	CameraUsedHandler       func(isSelfie bool)
	MobKilledHandler        func(mob, weapon int, isMonster bool)
	EntitySpawnedHandler    func(mob int, spawner string)
	PlayerBouncedHandler    func(height float64, block int)
	PlayerDiedHandler       func(cause string, mob int)
	PlayerMessageHandler    func(message, sender, receiver, messageType string)
	PlayerTeleportedHandler func(distance float64)
	PlayerTravelledHandler  func(location Position, mode string, distance float64)
)

// Host is the event registration surface of the game runtime.
// Each call adds one listener; failures are defined by the implementation.
type Host interface {
	OnBlockBroken(handler BlockBrokenHandler) error
	OnBlockPlaced(handler BlockPlacedHandler) error
	OnEndOfDay(handler EndOfDayHandler) error
	OnItemUsed(handler ItemUsedHandler) error
	OnItemAcquired(handler ItemAcquiredHandler) error
	OnItemCrafted(handler ItemCraftedHandler) error
	OnItemDropped(handler ItemDroppedHandler) error
	OnItemEquipped(handler ItemEquippedHandler) error
	OnItemInteracted(handler ItemInteractedHandler) error
	OnItemSmelted(handler ItemSmeltedHandler) error
	OnCameraUsed(handler CameraUsedHandler) error
	OnMobKilled(handler MobKilledHandler) error
	OnEntitySpawned(handler EntitySpawnedHandler) error
	OnPlayerBounced(handler PlayerBouncedHandler) error
	OnPlayerDied(handler PlayerDiedHandler) error
	OnPlayerMessage(handler PlayerMessageHandler) error
	OnPlayerTeleported(handler PlayerTeleportedHandler) error
	OnPlayerTravelled(handler PlayerTravelledHandler) error
}
