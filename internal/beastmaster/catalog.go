package beastmaster

import (
	"math"
	"slices"
	"strings"
)

// Catalog maps a pet display name to its creature template entry.
type Catalog map[string]uint32

// Names returns display names in ascending order, the order menu
// items are listed in.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseCatalog builds a catalog from "name,id,name,id,...".
//
// Tokens pair up as name then id. A trailing name without an id is
// dropped. Ids follow atoi: leading digits are used, a token with no
// digits reads as 0 and is kept. Negative ids and ids above uint32
// range drop their pair. Names are used verbatim, surrounding spaces
// included; a repeated name keeps the last id.
func ParseCatalog(s string) Catalog {
	c := make(Catalog)
	if s == "" {
		return c
	}

	tokens := strings.Split(s, ",")
	for i := 0; i+1 < len(tokens); i += 2 {
		name := tokens[i]
		id, ok := atoi(tokens[i+1])
		if !ok || id < 0 || id > math.MaxUint32 {
			continue
		}
		c[name] = uint32(id)
	}
	return c
}

// atoi mirrors C atoi on the prefix of s. ok is false only when the
// digit run overflows int64.
func atoi(s string) (n int64, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	for i := 0; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '9' {
			break
		}
		if n > (math.MaxInt64-int64(d-'0'))/10 {
			return 0, false
		}
		n = n*10 + int64(d-'0')
	}

	if neg {
		n = -n
	}
	return n, true
}
