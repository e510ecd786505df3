package world

import "fmt"

// Kind tags the closed set of things that occupy the map.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlatform
	KindGround
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlatform:
		return "platform"
	case KindGround:
		return "ground"
	case KindPowerUp:
		return "powerup"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Body is anything with a world position whose on-screen rectangle follows
// the camera. SyncScreen recomputes the screen rect from the world rect.
type Body interface {
	Kind() Kind
	SyncScreen(scroll float64)
}

// SyncAll recomputes the screen position of every body.
func SyncAll(scroll float64, bodies ...Body) {
	for _, b := range bodies {
		b.SyncScreen(scroll)
	}
}
