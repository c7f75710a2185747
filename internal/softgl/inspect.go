package softgl

import (
	"maps"

	"github.com/gogpu/glhal/gl"
)

// Level describes one stored image of a texture.
type Level struct {
	Internal   gl.TextureFormat
	Format     gl.PixelFormat
	Type       gl.PixelType
	Compressed gl.CompressedPixelFormat
	Size       [3]int
	Data       []byte
}

// LevelKey identifies an image by face and mip level. Face is the
// texture's target except for cube maps.
type LevelKey struct {
	Face  gl.Enum
	Level int
}

// State is a copy of everything a texture object holds. Two textures
// configured through different protocols compare equal with
// reflect.DeepEqual when they ended up in the same state.
type State struct {
	Target     gl.Enum
	Wrap       [3]gl.Enum
	MinFilter  gl.Enum
	MagFilter  gl.Enum
	Anisotropy float32
	Border     [4]float32
	Levels     map[LevelKey]Level
}

// Inspect returns a copy of the state of t.
func (d *Device) Inspect(t gl.Texture) (State, bool) {
	o, ok := d.textures[t]
	if !ok {
		return State{}, false
	}
	s := State{
		Target:     o.target,
		Wrap:       o.wrap,
		MinFilter:  o.minFilter,
		MagFilter:  o.magFilter,
		Anisotropy: o.anisotropy,
		Border:     o.border,
		Levels:     make(map[LevelKey]Level, len(o.images)),
	}
	for k, l := range o.images {
		s.Levels[LevelKey{k.face, k.level}] = Level{
			Internal:   l.internal,
			Format:     l.format,
			Type:       l.typ,
			Compressed: l.compressed,
			Size:       l.size,
			Data:       append([]byte(nil), l.data...),
		}
	}
	return s, true
}

// Level returns one image of t. A zero face selects the texture's target.
func (d *Device) Level(t gl.Texture, face gl.Enum, lvl int) (Level, bool) {
	s, ok := d.Inspect(t)
	if !ok {
		return Level{}, false
	}
	if face == 0 {
		face = s.Target
	}
	l, ok := s.Levels[LevelKey{face, lvl}]
	return l, ok
}

// Bindings returns a copy of the target bindings of unit.
func (d *Device) Bindings(unit int) map[gl.Enum]gl.Texture {
	if unit < 0 || unit >= len(d.bindings) {
		return nil
	}
	return maps.Clone(d.bindings[unit])
}
