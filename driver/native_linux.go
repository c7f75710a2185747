//go:build linux && !(js && wasm)

package driver

import (
	"github.com/gogpu/glhal/driver/native"
	"github.com/gogpu/glhal/profile"
)

func openNative(want profile.Profile) (Driver, error) {
	d, err := native.Open(want)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func init() {
	Register(Native, openNative)
}
