package texture

import (
	"log/slog"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/glformat"
	"github.com/gogpu/glhal/pixel"
	"github.com/gogpu/glhal/profile"
)

// Context owns the texture-related state of one GL context: the profile,
// the format registry, the selected state-application protocol and a
// cache of texture unit bindings. It is not safe for concurrent use; one
// goroutine owns a context, as it owns the native context.
type Context struct {
	f   gl.Functions
	dsa gl.DirectStateAccess
	p   profile.Profile
	reg glformat.Registry
	log *slog.Logger

	scratch int
	units   texUnits

	unpack    pixel.Storage
	packAlign int
}

// texUnits caches the active unit and per-unit bindings so repeated
// binds of the same texture reach the driver once.
type texUnits struct {
	active int
	binds  []map[gl.Enum]gl.Texture
}

// NewContext returns a context issuing calls through f under profile p.
// The direct access protocol is used when p has the capability and f
// implements gl.DirectStateAccess, unless disabled by an option.
func NewContext(f gl.Functions, p profile.Profile, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	units := p.Caps.MaxTextureUnits
	if units <= 0 {
		return nil, glhal.Violation("NewContext", "profile %v has no texture units", p)
	}
	if o.scratch < 0 {
		o.scratch = units - 1
	}
	if o.scratch >= units {
		return nil, glhal.Violation("NewContext", "scratch unit %d out of range [0, %d)", o.scratch, units)
	}
	c := &Context{
		f:         f,
		p:         p,
		reg:       glformat.New(p),
		log:       o.logger,
		scratch:   o.scratch,
		units:     texUnits{active: -1, binds: make([]map[gl.Enum]gl.Texture, units)},
		packAlign: 4,
	}
	for i := range c.units.binds {
		c.units.binds[i] = make(map[gl.Enum]gl.Texture)
	}
	if d, ok := f.(gl.DirectStateAccess); ok && o.dsa && p.Caps.DirectStateAccess {
		c.dsa = d
	}
	c.logger().Debug("texture: context created",
		"profile", p.String(),
		"directAccess", c.dsa != nil,
		"scratchUnit", c.scratch)
	return c, nil
}

// Profile returns the context's profile.
func (c *Context) Profile() profile.Profile { return c.p }

// Registry returns the format registry for the context's profile.
func (c *Context) Registry() glformat.Registry { return c.reg }

// DirectAccess reports whether textures are configured through the direct
// access protocol.
func (c *Context) DirectAccess() bool { return c.dsa != nil }

// ScratchUnit returns the unit used by the bind-then-configure protocol.
func (c *Context) ScratchUnit() int { return c.scratch }

func (c *Context) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return glhal.Logger()
}

// NewTexture creates a texture of kind k.
func (c *Context) NewTexture(k Kind) (*Texture, error) {
	if !k.IsValid() {
		return nil, glhal.Violation("NewTexture", "invalid kind %v", k)
	}
	if !k.IsAvailable(c.p) {
		return nil, glhal.Unsupported("NewTexture", k.String(), c.p.Target.String())
	}
	t := &Texture{
		c:       c,
		kind:    k,
		name:    c.f.GenTexture(),
		sampler: defaultSampler(k),
		levels:  make(map[levelKey]levelInfo),
	}
	if c.dsa != nil {
		t.acc = dsaAccess{d: c.dsa, name: t.name}
	} else {
		t.acc = bindAccess{t: t}
	}
	if err := c.check("NewTexture"); err != nil {
		c.f.DeleteTexture(t.name)
		return nil, err
	}
	return t, nil
}

// bindScratch binds t to the scratch unit.
func (c *Context) bindScratch(t *Texture) {
	c.bindUnit(c.scratch, t.kind.Target(), t.name)
}

func (c *Context) bindUnit(unit int, target gl.Enum, name gl.Texture) {
	if c.units.active != unit {
		c.f.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
		c.units.active = unit
	}
	if c.units.binds[unit][target] != name {
		c.f.BindTexture(target, name)
		c.units.binds[unit][target] = name
	}
}

// forget drops name from the binding cache. The driver unbinds deleted
// textures from every unit.
func (c *Context) forget(name gl.Texture) {
	for _, u := range c.units.binds {
		for target, bound := range u {
			if bound == name {
				delete(u, target)
			}
		}
	}
}

// setUnpack brings the driver's unpack state in line with s. Only the
// alignment exists on GLES2 and WebGL1.
func (c *Context) setUnpack(op string, s pixel.Storage) error {
	if !s.IsDefault() && c.p.Target.IsES2Class() {
		return glhal.Unsupported(op, "unpack row length, image height and skip", c.p.Target.String())
	}
	if a := s.EffectiveAlignment(); a != c.unpack.EffectiveAlignment() {
		c.f.PixelStorei(gl.UNPACK_ALIGNMENT, int32(a))
	}
	if c.p.Target.IsES2Class() {
		c.unpack.Alignment = s.EffectiveAlignment()
		return nil
	}
	set := func(pname gl.Enum, v, cur int) {
		if v != cur {
			c.f.PixelStorei(pname, int32(v))
		}
	}
	set(gl.UNPACK_ROW_LENGTH, s.RowLength, c.unpack.RowLength)
	set(gl.UNPACK_IMAGE_HEIGHT, s.ImageHeight, c.unpack.ImageHeight)
	set(gl.UNPACK_SKIP_PIXELS, s.Skip[0], c.unpack.Skip[0])
	set(gl.UNPACK_SKIP_ROWS, s.Skip[1], c.unpack.Skip[1])
	set(gl.UNPACK_SKIP_IMAGES, s.Skip[2], c.unpack.Skip[2])
	c.unpack = s
	c.unpack.Alignment = s.EffectiveAlignment()
	return nil
}

func (c *Context) setPackAlignment(a int) {
	if a != c.packAlign {
		c.f.PixelStorei(gl.PACK_ALIGNMENT, int32(a))
		c.packAlign = a
	}
}

// check reads back the driver error state after op.
func (c *Context) check(op string) error {
	return glhal.CheckDriver(op, c.f.GetError())
}
