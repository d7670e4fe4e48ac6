package game

// PerkKind is the effect a pickup grants.
type PerkKind uint8

const (
	PerkHealth PerkKind = iota
	PerkAmmo
	PerkSpeed
	PerkRapidFire
	PerkGrenade

	perkKindCount
)

var perkNames = [perkKindCount]string{
	PerkHealth:    "health",
	PerkAmmo:      "ammo",
	PerkSpeed:     "speed",
	PerkRapidFire: "rapid_fire",
	PerkGrenade:   "grenade",
}

func (k PerkKind) Valid() bool { return k < perkKindCount }

func (k PerkKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return perkNames[k]
}

// Label is the single letter drawn on the pickup.
func (k PerkKind) Label() rune {
	switch k {
	case PerkHealth:
		return 'H'
	case PerkAmmo:
		return 'A'
	case PerkSpeed:
		return 'S'
	case PerkRapidFire:
		return 'R'
	case PerkGrenade:
		return 'G'
	}
	return '?'
}

// Color is the pickup's fill colour.
func (k PerkKind) Color() RGB {
	switch k {
	case PerkHealth:
		return Palette.PerkHealth
	case PerkAmmo:
		return Palette.PerkAmmo
	case PerkSpeed:
		return Palette.PerkSpeed
	case PerkRapidFire:
		return Palette.PerkRapid
	case PerkGrenade:
		return Palette.PerkGrenade
	}
	return Palette.Text
}

// dropPerk rolls the drop chance and, on success, places a perk with its
// top-left corner at (x, y).
func (s *Session) dropPerk(x, y float64) {
	if s.rng.Float64() >= PerkDropRate {
		return
	}
	kind := PerkKind(floorN(s.rng.Float64(), int(perkKindCount)))
	s.Perks = append(s.Perks, Perk{
		Rect:  Rect{X: x, Y: y, W: PerkSize, H: PerkSize},
		Kind:  kind,
		Speed: PerkDriftSpeed,
	})
	s.events.Emit(Event{Type: EventPerkDropped, X: x, Y: y, Perk: kind})
}

// applyPerk grants a perk's effect. Unknown kinds are ignored.
func (s *Session) applyPerk(kind PerkKind) {
	switch kind {
	case PerkHealth:
		s.Player.Health.Fill(PerkHealthAmount)
	case PerkAmmo:
		s.Player.Ammo.Fill(PerkAmmoAmount)
	case PerkSpeed:
		s.Status.SpeedBoost.Start(SpeedBoostDuration)
		s.Player.Speed = PlayerBoostSpeed
	case PerkRapidFire:
		s.Status.RapidFire.Start(RapidFireDuration)
	case PerkGrenade:
		s.Grenades.Fill(1)
	default:
		return
	}
	s.events.Emit(Event{Type: EventPerkCollected, X: s.Player.X, Y: s.Player.Y, Perk: kind})
}
