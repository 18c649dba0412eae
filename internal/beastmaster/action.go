package beastmaster

import "fmt"

// ActionKind tags the variant of a menu Action.
type ActionKind uint8

const (
	ActionNavigate ActionKind = iota + 1
	ActionSelectPet
	ActionStable
	ActionVendor
)

// Page is a state of the beastmaster dialog.
type Page uint8

const (
	PageRoot Page = iota
	PagePets1
	PagePets2
	PagePets3
	PageExotic
	PageRare
	PageRemoveSkills
)

var pageNames = [...]string{
	PageRoot:         "root",
	PagePets1:        "pets1",
	PagePets2:        "pets2",
	PagePets3:        "pets3",
	PageExotic:       "exotic",
	PageRare:         "rare",
	PageRemoveSkills: "remove",
}

func (p Page) String() string {
	if int(p) < len(pageNames) {
		return pageNames[p]
	}
	return fmt.Sprintf("page(%d)", uint8(p))
}

// Action is what a beastmaster menu item does when picked:
// open a page, adopt a pet, open the stable or open the vendor.
type Action struct {
	Kind  ActionKind
	Page  Page   // ActionNavigate
	Entry uint32 // ActionSelectPet: creature template
}

// Navigate opens a dialog page.
func Navigate(p Page) Action { return Action{Kind: ActionNavigate, Page: p} }

// SelectPet adopts the creature template entry.
func SelectPet(entry uint32) Action { return Action{Kind: ActionSelectPet, Entry: entry} }

// Stable opens the host stable window.
func Stable() Action { return Action{Kind: ActionStable} }

// Vendor opens the host vendor window.
func Vendor() Action { return Action{Kind: ActionVendor} }

// Gossip option codes of the classic menu, kept for logs.
const (
	codeOptionVendor    uint32 = 3
	codeOptionStablePet uint32 = 14
)

var pageCodes = [...]uint32{
	PageRoot:         50,
	PagePets1:        51,
	PagePets2:        52,
	PagePets3:        53,
	PageExotic:       60,
	PageRare:         70,
	PageRemoveSkills: 80,
}

// Code returns the numeric action code the classic script used for this
// action. Only for logging: dispatch goes by Kind.
func (a Action) Code() uint32 {
	switch a.Kind {
	case ActionNavigate:
		if int(a.Page) < len(pageCodes) {
			return pageCodes[a.Page]
		}
	case ActionSelectPet:
		return a.Entry
	case ActionStable:
		return codeOptionStablePet
	case ActionVendor:
		return codeOptionVendor
	}
	return 0
}

func (a Action) String() string {
	switch a.Kind {
	case ActionNavigate:
		return "navigate:" + a.Page.String()
	case ActionSelectPet:
		return fmt.Sprintf("pet:%d", a.Entry)
	case ActionStable:
		return "stable"
	case ActionVendor:
		return "vendor"
	default:
		return fmt.Sprintf("action(%d)", uint8(a.Kind))
	}
}
