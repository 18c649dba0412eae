package data

// SetTestCreature adds a creature template for tests of other packages.
func SetTestCreature(t CreatureTemplate) {
	if CreatureTable == nil {
		CreatureTable = make(map[uint32]*CreatureTemplate, 8)
	}
	CreatureTable[t.Entry] = &t
}

// SetTestPetFamily adds a pet family for tests of other packages.
func SetTestPetFamily(f PetFamily) {
	if PetFamilyTable == nil {
		PetFamilyTable = make(map[uint32]*PetFamily, 8)
	}
	PetFamilyTable[f.ID] = &f
}

// ClearTestTables resets all tables for test isolation.
func ClearTestTables() {
	CreatureTable = make(map[uint32]*CreatureTemplate, 8)
	PetFamilyTable = make(map[uint32]*PetFamily, 8)
	VendorTable = make(map[uint32][]VendorItem, 8)
}
