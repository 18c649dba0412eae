package model

import "strconv"

// ClassID identifies a playable class (ChrClasses.dbc ids).
type ClassID uint8

const (
	ClassWarrior     ClassID = 1
	ClassPaladin     ClassID = 2
	ClassHunter      ClassID = 3
	ClassRogue       ClassID = 4
	ClassPriest      ClassID = 5
	ClassDeathKnight ClassID = 6
	ClassShaman      ClassID = 7
	ClassMage        ClassID = 8
	ClassWarlock     ClassID = 9
	ClassDruid       ClassID = 11
)

var classNames = map[ClassID]string{
	ClassWarrior:     "warrior",
	ClassPaladin:     "paladin",
	ClassHunter:      "hunter",
	ClassRogue:       "rogue",
	ClassPriest:      "priest",
	ClassDeathKnight: "deathknight",
	ClassShaman:      "shaman",
	ClassMage:        "mage",
	ClassWarlock:     "warlock",
	ClassDruid:       "druid",
}

// String returns lowercase class name ("hunter").
func (c ClassID) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether c is a known playable class.
func (c ClassID) Valid() bool {
	_, ok := classNames[c]
	return ok
}

// ParseClass resolves a class by lowercase name or numeric id.
func ParseClass(s string) (ClassID, bool) {
	for id, name := range classNames {
		if name == s {
			return id, true
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	c := ClassID(n)
	return c, c.Valid()
}

// MaxPlayerLevel is the level cap.
const MaxPlayerLevel int32 = 80

// Emote is a one-shot creature animation (Emotes.dbc).
type Emote uint32

const (
	EmoteOneshotLaugh Emote = 11
	EmoteOneshotRoar  Emote = 15
	EmoteOneshotPoint Emote = 25
)

var emoteNames = map[Emote]string{
	EmoteOneshotLaugh: "laugh",
	EmoteOneshotRoar:  "roar",
	EmoteOneshotPoint: "point",
}

func (e Emote) String() string {
	if name, ok := emoteNames[e]; ok {
		return name
	}
	return "emote"
}
