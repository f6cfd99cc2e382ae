package entity

// WeaponType identifies a weapon kind. Values outside the catalog are kept
// verbatim so custom records survive a save/load cycle.
type WeaponType string

const (
	WeaponFists WeaponType = "fists"
	WeaponBat   WeaponType = "bat"
	WeaponSword WeaponType = "sword"
)

// Weapon is an immutable named damage source.
type Weapon struct {
	name   string
	damage int
	kind   WeaponType
}

// Catalog weapons.
var (
	Fist  = Weapon{name: "Fists", damage: 10, kind: WeaponFists}
	Bat   = Weapon{name: "Bat", damage: 25, kind: WeaponBat}
	Sword = Weapon{name: "Sword", damage: 50, kind: WeaponSword}
)

// Catalog returns the fixed weapon catalog, weakest first.
func Catalog() []Weapon {
	return []Weapon{Fist, Bat, Sword}
}

// Name returns the display name.
func (w Weapon) Name() string { return w.name }

// Damage returns the damage dealt per hit.
func (w Weapon) Damage() int { return w.damage }

// Type returns the weapon kind.
func (w Weapon) Type() WeaponType { return w.kind }

// String implements fmt.Stringer.
func (w Weapon) String() string { return w.name }

// WeaponData is the serialized form of a Weapon.
type WeaponData struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
	Type   string `json:"type"`
}

// ToData converts the weapon to its serialized form.
func (w Weapon) ToData() WeaponData {
	return WeaponData{Name: w.name, Damage: w.damage, Type: string(w.kind)}
}

// WeaponFromData rebuilds a weapon. A blank record yields Fist.
func WeaponFromData(d WeaponData) Weapon {
	if d == (WeaponData{}) {
		return Fist
	}
	return Weapon{name: d.Name, damage: d.Damage, kind: WeaponType(d.Type)}
}
