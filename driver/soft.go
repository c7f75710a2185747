package driver

import (
	"github.com/gogpu/glhal/internal/softgl"
	"github.com/gogpu/glhal/profile"
)

// soft adapts the software device. Embedding keeps its direct state
// access methods visible to type assertions.
type soft struct {
	*softgl.Device
}

func (soft) Close() error { return nil }

func openSoft(want profile.Profile) (Driver, error) {
	if want.Caps.MaxTextureUnits == 0 {
		want.Caps.MaxTextureUnits = profile.Default(want.Target).Caps.MaxTextureUnits
	}
	return soft{softgl.New(want)}, nil
}

func init() {
	Register(Soft, openSoft)
}
