package beastmaster

import "github.com/udisondev/beastmaster/internal/model"

// NpcEntry is the creature template of the beastmaster NPC.
const NpcEntry uint32 = 601026

// ConfName is the script conf file name.
const ConfName = "npc_beastmaster.conf"

const (
	// MinLevel is the lowest level allowed to talk to the beastmaster.
	MinLevel int32 = 10

	// GreetingTextID is the gossip text shown on first approach.
	GreetingTextID uint32 = 601026

	// HowlSound is played to the player when the main menu opens.
	HowlSound uint32 = 9036

	// PetHandlingClass is the class for which pets are the native mechanic.
	PetHandlingClass = model.ClassHunter
)

// Spells.
const (
	SpellCallPet     int32 = 883
	SpellDismissPet  int32 = 2641
	SpellRevivePet   int32 = 982
	SpellFeedPet     int32 = 6991
	SpellMendPet     int32 = 48990
	SpellEyesOfBeast int32 = 1002
	SpellBeastLore   int32 = 1462
	SpellEagleEye    int32 = 6197

	// SpellBeastMastery allows taming exotic beasts.
	SpellBeastMastery int32 = 53270
)

// CompanionSpells are taught to non-hunters with their first pet and
// removed by "Remove Pet Skills".
var CompanionSpells = [...]int32{
	SpellCallPet,
	SpellRevivePet,
	SpellDismissPet,
	SpellFeedPet,
	SpellMendPet,
	SpellEyesOfBeast,
	SpellBeastLore,
	SpellEagleEye,
}

// Whispers.
const (
	msgHunterOnly    = "Silly fool, Pets are for Hunters!"
	msgUnderLevel    = "Pets are not for the inexperienced!"
	msgAlreadyHasPet = "First you must abandon or stable your current pet!"
	msgTaughtExotic  = "I have taught you the art of Beast Mastery %s."
	msgAdopted       = "A fine choice %s! Your %s shall know no law but that of the club and fang."

	// MsgAnnounce is sent on login when BeastMaster.Announce is set.
	MsgAnnounce = "This server is running the |cff4CFF00BeastMasterNPC |rmodule"
)
