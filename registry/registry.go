// Package registry is an in-process events.Host. Handlers are kept per event in
// registration order and every Fire call invokes all of them.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/bedrock-tool/mcevents/events"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/sirupsen/logrus"
)

var ErrNilHandler = errors.New("nil handler")

type Stats struct {
	Registered uint64
	Fired      uint64
	Dispatched uint64
	Panics     uint64
}

type Registry struct {
	mu      sync.RWMutex
	log     *logrus.Entry
	metrics *utils.Metrics
	counts  map[events.Name]int

	registered, fired, dispatched, panics atomic.Uint64

	blockBroken      []events.BlockBrokenHandler
	blockPlaced      []events.BlockPlacedHandler
	endOfDay         []events.EndOfDayHandler
	itemUsed         []events.ItemUsedHandler
	itemAcquired     []events.ItemAcquiredHandler
	itemCrafted      []events.ItemCraftedHandler
	itemDropped      []events.ItemDroppedHandler
	itemEquipped     []events.ItemEquippedHandler
	itemInteracted   []events.ItemInteractedHandler
	itemSmelted      []events.ItemSmeltedHandler
	cameraUsed       []events.CameraUsedHandler
	mobKilled        []events.MobKilledHandler
	entitySpawned    []events.EntitySpawnedHandler
	playerBounced    []events.PlayerBouncedHandler
	playerDied       []events.PlayerDiedHandler
	playerMessage    []events.PlayerMessageHandler
	playerTeleported []events.PlayerTeleportedHandler
	playerTravelled  []events.PlayerTravelledHandler
}

// New creates an empty registry. metrics may be nil.
func New(metrics *utils.Metrics) *Registry {
	return &Registry{
		log:     logrus.WithField("part", "registry"),
		metrics: metrics,
		counts:  make(map[events.Name]int),
	}
}

func (r *Registry) Stats() Stats {
	return Stats{
		Registered: r.registered.Load(),
		Fired:      r.fired.Load(),
		Dispatched: r.dispatched.Load(),
		Panics:     r.panics.Load(),
	}
}

// Count returns how many handlers are registered for name.
func (r *Registry) Count(name events.Name) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[name]
}

func add[H any](r *Registry, name events.Name, list *[]H, h H, isNil bool) error {
	if isNil {
		return fmt.Errorf("%s: %w", name, ErrNilHandler)
	}
	r.mu.Lock()
	*list = append(*list, h)
	r.counts[name]++
	r.mu.Unlock()

	r.registered.Add(1)
	if r.metrics != nil {
		r.metrics.Registrations.WithLabelValues(string(name)).Inc()
	}
	r.log.Debugf("registered %s handler", name)
	return nil
}

// fire calls every handler outside the lock, so handlers may register more
// handlers. A panicking handler does not stop the others.
func fire[H any](r *Registry, name events.Name, list *[]H, call func(H)) {
	r.mu.RLock()
	handlers := slices.Clone(*list)
	r.mu.RUnlock()

	r.fired.Add(1)
	if r.metrics != nil {
		r.metrics.Fired.WithLabelValues(string(name)).Inc()
	}
	for _, h := range handlers {
		err := utils.RecoverCall(func() error {
			call(h)
			return nil
		})
		r.dispatched.Add(1)
		if r.metrics != nil {
			r.metrics.Dispatched.WithLabelValues(string(name)).Inc()
		}
		if err != nil {
			r.panics.Add(1)
			if r.metrics != nil {
				r.metrics.Panics.WithLabelValues(string(name)).Inc()
			}
			r.log.Errorf("%s handler: %s", name, err)
		}
	}
}

func (r *Registry) OnBlockBroken(h events.BlockBrokenHandler) error {
	return add(r, events.BlockBroken, &r.blockBroken, h, h == nil)
}

func (r *Registry) OnBlockPlaced(h events.BlockPlacedHandler) error {
	return add(r, events.BlockPlaced, &r.blockPlaced, h, h == nil)
}

func (r *Registry) OnEndOfDay(h events.EndOfDayHandler) error {
	return add(r, events.EndOfDay, &r.endOfDay, h, h == nil)
}

func (r *Registry) OnItemUsed(h events.ItemUsedHandler) error {
	return add(r, events.ItemUsed, &r.itemUsed, h, h == nil)
}

func (r *Registry) OnItemAcquired(h events.ItemAcquiredHandler) error {
	return add(r, events.ItemAcquired, &r.itemAcquired, h, h == nil)
}

func (r *Registry) OnItemCrafted(h events.ItemCraftedHandler) error {
	return add(r, events.ItemCrafted, &r.itemCrafted, h, h == nil)
}

func (r *Registry) OnItemDropped(h events.ItemDroppedHandler) error {
	return add(r, events.ItemDropped, &r.itemDropped, h, h == nil)
}

func (r *Registry) OnItemEquipped(h events.ItemEquippedHandler) error {
	return add(r, events.ItemEquipped, &r.itemEquipped, h, h == nil)
}

func (r *Registry) OnItemInteracted(h events.ItemInteractedHandler) error {
	return add(r, events.ItemInteracted, &r.itemInteracted, h, h == nil)
}

func (r *Registry) OnItemSmelted(h events.ItemSmeltedHandler) error {
	return add(r, events.ItemSmelted, &r.itemSmelted, h, h == nil)
}

func (r *Registry) OnCameraUsed(h events.CameraUsedHandler) error {
	return add(r, events.CameraUsed, &r.cameraUsed, h, h == nil)
}

func (r *Registry) OnMobKilled(h events.MobKilledHandler) error {
	return add(r, events.MobKilled, &r.mobKilled, h, h == nil)
}

func (r *Registry) OnEntitySpawned(h events.EntitySpawnedHandler) error {
	return add(r, events.EntitySpawned, &r.entitySpawned, h, h == nil)
}

func (r *Registry) OnPlayerBounced(h events.PlayerBouncedHandler) error {
	return add(r, events.PlayerBounced, &r.playerBounced, h, h == nil)
}

func (r *Registry) OnPlayerDied(h events.PlayerDiedHandler) error {
	return add(r, events.PlayerDied, &r.playerDied, h, h == nil)
}

func (r *Registry) OnPlayerMessage(h events.PlayerMessageHandler) error {
	return add(r, events.PlayerMessage, &r.playerMessage, h, h == nil)
}

func (r *Registry) OnPlayerTeleported(h events.PlayerTeleportedHandler) error {
	return add(r, events.PlayerTeleported, &r.playerTeleported, h, h == nil)
}

func (r *Registry) OnPlayerTravelled(h events.PlayerTravelledHandler) error {
	return add(r, events.PlayerTravelled, &r.playerTravelled, h, h == nil)
}

var _ events.Host = (*Registry)(nil)
