package tags

import "github.com/yohamta/donburi"

var (
	Mascot = donburi.NewTag().SetName("Mascot")
)
