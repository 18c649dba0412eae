package beastmaster

// Conf keys.
const (
	KeyAnnounce        = "BeastMaster.Announce"
	KeyHunterOnly      = "BeastMaster.HunterOnly"
	KeyExoticNoSpec    = "BeastMaster.ExoticNoSpec"
	KeyPetScale        = "BeastMaster.PetScale"
	KeyKeepPetHappy    = "BeastMaster.KeepPetHappy"
	KeyPetsPage1       = "BeastMaster.PetsPage1"
	KeyPetsPage2       = "BeastMaster.PetsPage2"
	KeyPetsPage3       = "BeastMaster.PetsPage3"
	KeyExoticPetsPage1 = "BeastMaster.ExoticPetsPage1"
	KeyRarePetsPage1   = "BeastMaster.RarePetsPage1"
)

// ConfSource reads typed values with defaults. Satisfied by *config.Conf.
type ConfSource interface {
	GetBoolDefault(key string, def bool) bool
	GetIntDefault(key string, def int) int
	GetStringDefault(key, def string) string
}

// Settings is the module configuration. Built once per config load and
// never modified; components share it by pointer.
type Settings struct {
	Announce     bool
	HunterOnly   bool
	ExoticNoSpec bool
	PetScale     int
	KeepPetHappy bool

	PetsPage1       Catalog
	PetsPage2       Catalog
	PetsPage3       Catalog
	ExoticPetsPage1 Catalog
	RarePetsPage1   Catalog
}

// DefaultSettings returns settings used before any conf is loaded.
func DefaultSettings() *Settings {
	return &Settings{
		Announce:        true,
		HunterOnly:      true,
		ExoticNoSpec:    true,
		PetScale:        1,
		KeepPetHappy:    false,
		PetsPage1:       Catalog{},
		PetsPage2:       Catalog{},
		PetsPage3:       Catalog{},
		ExoticPetsPage1: Catalog{},
		RarePetsPage1:   Catalog{},
	}
}

// LoadSettings reads every module key from src, falling back to the
// documented defaults.
func LoadSettings(src ConfSource) *Settings {
	def := DefaultSettings()
	return &Settings{
		Announce:     src.GetBoolDefault(KeyAnnounce, def.Announce),
		HunterOnly:   src.GetBoolDefault(KeyHunterOnly, def.HunterOnly),
		ExoticNoSpec: src.GetBoolDefault(KeyExoticNoSpec, def.ExoticNoSpec),
		PetScale:     src.GetIntDefault(KeyPetScale, def.PetScale),
		KeepPetHappy: src.GetBoolDefault(KeyKeepPetHappy, def.KeepPetHappy),

		PetsPage1:       ParseCatalog(src.GetStringDefault(KeyPetsPage1, "")),
		PetsPage2:       ParseCatalog(src.GetStringDefault(KeyPetsPage2, "")),
		PetsPage3:       ParseCatalog(src.GetStringDefault(KeyPetsPage3, "")),
		ExoticPetsPage1: ParseCatalog(src.GetStringDefault(KeyExoticPetsPage1, "")),
		RarePetsPage1:   ParseCatalog(src.GetStringDefault(KeyRarePetsPage1, "")),
	}
}

// Catalog returns the catalog listed on a page, or nil for pages
// without pets.
func (s *Settings) Catalog(p Page) Catalog {
	switch p {
	case PagePets1:
		return s.PetsPage1
	case PagePets2:
		return s.PetsPage2
	case PagePets3:
		return s.PetsPage3
	case PageExotic:
		return s.ExoticPetsPage1
	case PageRare:
		return s.RarePetsPage1
	default:
		return nil
	}
}
