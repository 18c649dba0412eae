package data

import (
	"fmt"
	"log/slog"
)

// VendorItem is one entry of a vendor list.
type VendorItem struct {
	ItemID   int32  `yaml:"item"`
	Name     string `yaml:"name"`
	MinLevel int32  `yaml:"min_level"`
	Price    int64  `yaml:"price"` // copper
}

// VendorTable maps NPC entry to its item list.
var VendorTable map[uint32][]VendorItem

// VendorItems returns the list sold by the NPC entry.
func VendorItems(entry uint32) []VendorItem {
	if VendorTable == nil {
		return nil
	}
	return VendorTable[entry]
}

// LoadVendors builds VendorTable from vendors.yaml.
func LoadVendors() error {
	var file struct {
		Vendors []struct {
			Entry uint32       `yaml:"entry"`
			Items []VendorItem `yaml:"items"`
		} `yaml:"vendors"`
	}
	if err := decodeYAML("vendors.yaml", &file); err != nil {
		return err
	}

	table := make(map[uint32][]VendorItem, len(file.Vendors))
	for _, v := range file.Vendors {
		if _, dup := table[v.Entry]; dup {
			return fmt.Errorf("duplicate vendor %d", v.Entry)
		}
		table[v.Entry] = v.Items
	}
	VendorTable = table

	slog.Info("loaded vendor lists", "count", len(VendorTable))
	return nil
}
