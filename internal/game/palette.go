package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Float returns the colour as normalized channels for GL uploads.
func (c RGB) Float() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background  RGB
	Player      RGB
	BoostRing   RGB
	Bullet      RGB
	EnemyBullet RGB
	EnemyHull   RGB
	EnemyCore   RGB
	EnemyEye    RGB
	EnemyGun    RGB
	BarTrack    RGB
	BarHigh     RGB
	BarMid      RGB
	BarLow      RGB
	Muzzle      RGB
	Hit         RGB
	Explosion   RGB
	Text        RGB
	Badge       RGB
	PerkHealth  RGB
	PerkAmmo    RGB
	PerkSpeed   RGB
	PerkRapid   RGB
	PerkGrenade RGB
}{
	Background:  RGB{R: 0, G: 0, B: 0},
	Player:      RGB{R: 0, G: 0, B: 255},
	BoostRing:   RGB{R: 0, G: 255, B: 255},
	Bullet:      RGB{R: 255, G: 255, B: 0},
	EnemyBullet: RGB{R: 0, G: 255, B: 255},
	EnemyHull:   RGB{R: 255, G: 0, B: 0},
	EnemyCore:   RGB{R: 136, G: 0, B: 0},
	EnemyEye:    RGB{R: 255, G: 255, B: 255},
	EnemyGun:    RGB{R: 0, G: 255, B: 255},
	BarTrack:    RGB{R: 51, G: 51, B: 51},
	BarHigh:     RGB{R: 0, G: 255, B: 0},
	BarMid:      RGB{R: 255, G: 255, B: 0},
	BarLow:      RGB{R: 255, G: 0, B: 0},
	Muzzle:      RGB{R: 255, G: 255, B: 0},
	Hit:         RGB{R: 255, G: 0, B: 0},
	Explosion:   RGB{R: 255, G: 170, B: 0},
	Text:        RGB{R: 255, G: 255, B: 255},
	Badge:       RGB{R: 0, G: 255, B: 255},
	PerkHealth:  RGB{R: 0, G: 255, B: 0},
	PerkAmmo:    RGB{R: 255, G: 255, B: 0},
	PerkSpeed:   RGB{R: 0, G: 255, B: 255},
	PerkRapid:   RGB{R: 255, G: 0, B: 255},
	PerkGrenade: RGB{R: 255, G: 170, B: 0},
}
