// Package gossip implements the NPC dialog menu subsystem.
// A Menu holds the items last sent to one player; the client answers
// with the menu id and the index of the chosen item.
package gossip

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultTextID is the generic greeting text used when a script
// re-renders a menu without its own text.
const DefaultTextID uint32 = 0xFFFFFF

// Icon is the client-side glyph shown next to a menu item.
type Icon uint8

const (
	IconChat Icon = iota
	IconVendor
	IconTaxi
	IconTrainer
	IconInteract1
	IconInteract2
	IconMoneyBag
	IconTalk
	IconTabard
	IconBattle
	IconDot
)

var (
	ErrMenuClosed = errors.New("gossip menu is closed")
	ErrStaleMenu  = errors.New("gossip menu id does not match the open menu")
	ErrNoSuchItem = errors.New("gossip item index out of range")
)

// Action is the script-defined payload of a menu item. The gossip
// subsystem never interprets it; it is handed back on selection.
type Action interface {
	fmt.Stringer
}

// Item is one selectable menu line.
type Item struct {
	Icon   Icon
	Text   string
	Action Action
}

// Menu is a player's dialog state. Not safe for concurrent use; the
// engine drives all menus from its event loop.
type Menu struct {
	id     uuid.UUID
	npcID  uint32
	textID uint32
	items  []Item
	open   bool
}

// NewMenu creates an empty, closed menu.
func NewMenu() *Menu {
	return &Menu{items: make([]Item, 0, 16)}
}

// Clear drops pending items. An open menu stays open until Send or Close.
func (m *Menu) Clear() {
	m.items = m.items[:0]
}

// AddItem appends an item to the pending menu.
func (m *Menu) AddItem(icon Icon, text string, action Action) {
	m.items = append(m.items, Item{Icon: icon, Text: text, Action: action})
}

// Send opens the pending items as a new menu for npcObjectID and returns
// its id. Previous menu ids become stale.
func (m *Menu) Send(textID, npcObjectID uint32) uuid.UUID {
	m.id = uuid.New()
	m.npcID = npcObjectID
	m.textID = textID
	m.open = true
	return m.id
}

// Close closes the menu and drops its items.
func (m *Menu) Close() {
	m.open = false
	m.id = uuid.Nil
	m.items = m.items[:0]
}

// IsOpen reports whether a menu is shown to the player.
func (m *Menu) IsOpen() bool {
	return m.open
}

// ID returns the open menu id (uuid.Nil when closed).
func (m *Menu) ID() uuid.UUID {
	return m.id
}

// NpcObjectID returns the NPC the open menu belongs to.
func (m *Menu) NpcObjectID() uint32 {
	return m.npcID
}

// TextID returns the text id the menu was sent with.
func (m *Menu) TextID() uint32 {
	return m.textID
}

// Items returns a copy of the current items.
func (m *Menu) Items() []Item {
	return append([]Item(nil), m.items...)
}

// Select resolves the item chosen by the client.
func (m *Menu) Select(menuID uuid.UUID, index int) (Item, error) {
	if !m.open {
		return Item{}, ErrMenuClosed
	}
	if menuID != m.id {
		return Item{}, ErrStaleMenu
	}
	if index < 0 || index >= len(m.items) {
		return Item{}, fmt.Errorf("index %d of %d: %w", index, len(m.items), ErrNoSuchItem)
	}
	return m.items[index], nil
}
