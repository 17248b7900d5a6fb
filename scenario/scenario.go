// Package scenario replays events described in a yaml file.
//
//	- event: PlayerMessage
//	  message: hello
//	  sender: Steve
//	  messageType: chat
//	- event: EndOfDay
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bedrock-tool/mcevents/events"
	"gopkg.in/yaml.v3"
)

var ErrUnknownEvent = errors.New("unknown event")
var ErrBadCode = errors.New("bad code")

type Entry struct {
	Event events.Name `yaml:"event"`

	Block        int                  `yaml:"block"`
	Tool         int                  `yaml:"tool"`
	Count        int                  `yaml:"count"`
	Method       string               `yaml:"method"`
	Item         int                  `yaml:"item"`
	Slot         int                  `yaml:"slot"`
	Enchantments []events.Enchantment `yaml:"enchantments"`
	FuelSource   int                  `yaml:"fuelSource"`
	IsSelfie     bool                 `yaml:"isSelfie"`
	Mob          int                  `yaml:"mob"`
	Weapon       int                  `yaml:"weapon"`
	IsMonster    bool                 `yaml:"isMonster"`
	Spawner      string               `yaml:"spawner"`
	Height       float64              `yaml:"height"`
	Cause        string               `yaml:"cause"`
	Message      string               `yaml:"message"`
	Sender       string               `yaml:"sender"`
	Receiver     string               `yaml:"receiver"`
	MessageType  string               `yaml:"messageType"`
	Distance     float64              `yaml:"distance"`
	Location     events.Position      `yaml:"location"`
	Mode         string               `yaml:"mode"`
}

// Target is what a scenario fires into, registry.Registry implements it.
type Target interface {
	FireBlockBroken(block, tool, count int)
	FireBlockPlaced(block, tool, count int, method events.BlockPlacementMethod)
	FireEndOfDay()
	FireItemUsed(item int, method string)
	FireItemAcquired(item, count int, method events.AcquisitionMethod)
	FireItemCrafted(item, count int)
	FireItemDropped(item, count int)
	FireItemEquipped(item, slot int, enchantments []events.Enchantment)
	FireItemInteracted(item, count int, method events.ItemInteractMethod)
	FireItemSmelted(item, fuelSource int)
	FireCameraUsed(isSelfie bool)
	FireMobKilled(mob, weapon int, isMonster bool)
	FireEntitySpawned(mob int, spawner string)
	FirePlayerBounced(height float64, block int)
	FirePlayerDied(cause string, mob int)
	FirePlayerMessage(message, sender, receiver, messageType string)
	FirePlayerTeleported(distance float64)
	FirePlayerTravelled(location events.Position, mode string, distance float64)
}

type Scenario struct {
	Entries []Entry
}

func Parse(r io.Reader) (*Scenario, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &Scenario{Entries: entries}, nil
}

func Open(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Play checks every entry first and only fires when all are valid.
func (s *Scenario) Play(t Target) error {
	fires := make([]func(), 0, len(s.Entries))
	for i, e := range s.Entries {
		fire, err := e.compile(t)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		fires = append(fires, fire)
	}
	for _, fire := range fires {
		fire()
	}
	return nil
}

func numericMethod(code string, count int) (int, error) {
	if code == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < 0 || n >= count {
		return 0, fmt.Errorf("%w: method %q", ErrBadCode, code)
	}
	return n, nil
}

func checkCode[E any](parse func(string) (E, bool), field, code string) error {
	if _, ok := parse(code); !ok {
		return fmt.Errorf("%w: %s %q", ErrBadCode, field, code)
	}
	return nil
}

func (e Entry) compile(t Target) (func(), error) {
	switch e.Event {
	case events.BlockBroken:
		return func() { t.FireBlockBroken(e.Block, e.Tool, e.Count) }, nil
	case events.BlockPlaced:
		m, err := numericMethod(e.Method, events.BlockPlacementMethods)
		if err != nil {
			return nil, err
		}
		return func() { t.FireBlockPlaced(e.Block, e.Tool, e.Count, events.BlockPlacementMethod(m)) }, nil
	case events.EndOfDay:
		return t.FireEndOfDay, nil
	case events.ItemUsed:
		if err := checkCode(events.ParseUseMethod, "method", e.Method); err != nil {
			return nil, err
		}
		return func() { t.FireItemUsed(e.Item, e.Method) }, nil
	case events.ItemAcquired:
		m, err := numericMethod(e.Method, events.AcquisitionMethods)
		if err != nil {
			return nil, err
		}
		return func() { t.FireItemAcquired(e.Item, e.Count, events.AcquisitionMethod(m)) }, nil
	case events.ItemCrafted:
		return func() { t.FireItemCrafted(e.Item, e.Count) }, nil
	case events.ItemDropped:
		return func() { t.FireItemDropped(e.Item, e.Count) }, nil
	case events.ItemEquipped:
		return func() { t.FireItemEquipped(e.Item, e.Slot, e.Enchantments) }, nil
	case events.ItemInteracted:
		m, err := numericMethod(e.Method, events.ItemInteractMethods)
		if err != nil {
			return nil, err
		}
		return func() { t.FireItemInteracted(e.Item, e.Count, events.ItemInteractMethod(m)) }, nil
	case events.ItemSmelted:
		return func() { t.FireItemSmelted(e.Item, e.FuelSource) }, nil
	case events.CameraUsed:
		return func() { t.FireCameraUsed(e.IsSelfie) }, nil
	case events.MobKilled:
		return func() { t.FireMobKilled(e.Mob, e.Weapon, e.IsMonster) }, nil
	case events.EntitySpawned:
		if err := checkCode(events.ParseMobSpawnMethod, "spawner", e.Spawner); err != nil {
			return nil, err
		}
		return func() { t.FireEntitySpawned(e.Mob, e.Spawner) }, nil
	case events.PlayerBounced:
		return func() { t.FirePlayerBounced(e.Height, e.Block) }, nil
	case events.PlayerDied:
		if err := checkCode(events.ParseActorDamageCause, "cause", e.Cause); err != nil {
			return nil, err
		}
		return func() { t.FirePlayerDied(e.Cause, e.Mob) }, nil
	case events.PlayerMessage:
		if err := checkCode(events.ParseMessageType, "messageType", e.MessageType); err != nil {
			return nil, err
		}
		return func() { t.FirePlayerMessage(e.Message, e.Sender, e.Receiver, e.MessageType) }, nil
	case events.PlayerTeleported:
		return func() { t.FirePlayerTeleported(e.Distance) }, nil
	case events.PlayerTravelled:
		if err := checkCode(events.ParseTravelMethod, "mode", e.Mode); err != nil {
			return nil, err
		}
		return func() { t.FirePlayerTravelled(e.Location, e.Mode, e.Distance) }, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEvent, e.Event)
}
