package html

import (
	"fmt"
	stdhtml "html"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/udisondev/beastmaster/internal/game/gossip"
)

// iconNames are shown in brackets in front of menu items.
var iconNames = map[gossip.Icon]string{
	gossip.IconChat:      "chat",
	gossip.IconVendor:    "vendor",
	gossip.IconTaxi:      "taxi",
	gossip.IconTrainer:   "trainer",
	gossip.IconInteract1: "gear",
	gossip.IconInteract2: "gear",
	gossip.IconMoneyBag:  "money",
	gossip.IconTalk:      "talk",
	gossip.IconTabard:    "tabard",
	gossip.IconBattle:    "battle",
	gossip.IconDot:       "dot",
}

// DialogManager resolves gossip text by text id and renders menus.
type DialogManager struct {
	cache *Cache
}

// NewDialogManager creates a new DialogManager backed by the given Cache.
func NewDialogManager(cache *Cache) *DialogManager {
	return &DialogManager{cache: cache}
}

// GossipText returns the rendered text shown above a menu.
//
// Resolution order:
//  1. gossip/<textID>.htm
//  2. gossip/default.htm for gossip.DefaultTextID
//
// Returns FallbackHTML if nothing found.
func (m *DialogManager) GossipText(textID uint32, data DialogData) (string, error) {
	path := "gossip/" + strconv.FormatUint(uint64(textID), 10) + ".htm"
	if m.cache.Exists(path) {
		return m.cache.Execute(path, data)
	}

	if textID == gossip.DefaultTextID && m.cache.Exists("gossip/default.htm") {
		return m.cache.Execute("gossip/default.htm", data)
	}

	return m.FallbackHTML(data), nil
}

// RenderMenu returns the full dialog: text followed by one bypass link
// per item and a close link.
func (m *DialogManager) RenderMenu(npcObjectID uint32, menuID uuid.UUID, textID uint32, items []gossip.Item, data DialogData) (string, error) {
	text, err := m.GossipText(textID, data)
	if err != nil {
		return "", fmt.Errorf("rendering gossip text %d: %w", textID, err)
	}

	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString(text)
	b.WriteString("<br>")
	for i, it := range items {
		fmt.Fprintf(&b, `<a action="bypass -h %s">[%s] %s</a><br>`,
			GossipBypass(npcObjectID, menuID, i), iconNames[it.Icon], stdhtml.EscapeString(it.Text))
	}
	fmt.Fprintf(&b, `<a action="bypass -h %s">Goodbye</a>`, CloseBypass(npcObjectID))
	b.WriteString("</body></html>")
	return b.String(), nil
}

// FallbackHTML returns a hardcoded greeting when no template is found.
func (m *DialogManager) FallbackHTML(data DialogData) string {
	name, _ := data["npcname"].(string)
	if name == "" {
		name = "NPC"
	}
	return stdhtml.EscapeString(name) + ": Greetings, traveler."
}
