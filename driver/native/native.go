//go:build linux && !(js && wasm)

// Package native drives a real GL or GLES context created through EGL.
//
// The wgpu GLES backend's function table supplies the core texture entry
// points. Everything else texture code needs (1D and 3D images,
// compressed uploads, parameter and level queries, readback) is loaded
// from the same proc address function and called through goffi.
package native

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/wgpu/hal/gles/egl"
	wgl "github.com/gogpu/wgpu/hal/gles/gl"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/profile"
)

// ErrClosed is returned by Close on a device that was already closed.
var ErrClosed = errors.New("native: device closed")

// Device is a live GL context. It implements gl.Functions. Like the
// context it wraps, it must be used from the thread that made it current.
type Device struct {
	ctx   *wgl.Context
	procs procs
	egl   *egl.Context
	p     profile.Profile

	// err holds an error raised on the Go side, reported ahead of the
	// driver's own.
	err uint32
}

// Load builds a device over the context current on the calling thread.
// The profile is queried from the driver.
func Load(getProcAddr wgl.ProcAddressFunc) (*Device, error) {
	d := &Device{ctx: &wgl.Context{}, procs: newProcs()}
	if err := d.ctx.Load(getProcAddr); err != nil {
		return nil, fmt.Errorf("native: load GL functions: %w", err)
	}
	if err := d.procs.load(getProcAddr); err != nil {
		return nil, err
	}
	p, err := profile.Query(d)
	if err != nil {
		return nil, err
	}
	d.p = p
	return d, nil
}

// Open creates a headless EGL context suited to want and loads a device
// over it. Only the target of want is used; capabilities are detected.
func Open(want profile.Profile) (*Device, error) {
	if want.Target.IsWebGL() {
		return nil, glhal.Unsupported("native.Open", "WebGL contexts", want.Target.String())
	}
	if err := egl.Init(); err != nil {
		return nil, fmt.Errorf("native: init EGL: %w", err)
	}
	cfg := egl.DefaultContextConfig()
	cfg.Surfaceless = true
	switch want.Target {
	case profile.GLES2:
		cfg.GLES, cfg.GLVersionMajor, cfg.GLVersionMinor, cfg.CoreProfile = true, 2, 0, false
	case profile.GLES3:
		cfg.GLES, cfg.GLVersionMajor, cfg.GLVersionMinor, cfg.CoreProfile = true, 3, 0, false
	}
	ec, err := egl.NewContext(cfg)
	if err != nil {
		return nil, fmt.Errorf("native: create EGL context: %w", err)
	}
	if err := ec.MakeCurrent(); err != nil {
		ec.Destroy()
		return nil, fmt.Errorf("native: make context current: %w", err)
	}
	d, err := Load(egl.GetGLProcAddress)
	if err != nil {
		ec.Destroy()
		return nil, err
	}
	d.egl = ec
	glhal.Logger().Info("native: device opened", "profile", d.p.String())
	return d, nil
}

// Profile returns the detected profile.
func (d *Device) Profile() profile.Profile { return d.p }

// Close destroys the EGL context if Open created it.
func (d *Device) Close() error {
	if d.ctx == nil {
		return ErrClosed
	}
	if d.egl != nil {
		d.egl.Destroy()
		d.egl = nil
	}
	d.ctx = nil
	return nil
}

// fail records INVALID_OPERATION for a call that never reached the
// driver, either because the entry point is missing or because goffi
// rejected it.
func (d *Device) fail(pr *proc, err error) {
	glhal.Logger().Warn("native: call failed", "name", pr.name, "err", err)
	if d.err == gl.NO_ERROR {
		d.err = gl.INVALID_OPERATION
	}
}

func (d *Device) invoke(pr *proc, args ...unsafe.Pointer) {
	if err := pr.call(args...); err != nil {
		d.fail(pr, err)
	}
}

func (d *Device) GetError() uint32 {
	if e := d.err; e != gl.NO_ERROR {
		d.err = gl.NO_ERROR
		return e
	}
	return d.ctx.GetError()
}

func (d *Device) GetString(name gl.Enum) string { return d.ctx.GetString(uint32(name)) }

func (d *Device) GetInteger(pname gl.Enum) int32 {
	var v int32
	d.ctx.GetIntegerv(uint32(pname), &v)
	return v
}

func (d *Device) GetFloat(pname gl.Enum) float32 {
	var v [4]float32
	d.GetFloatv(pname, v[:])
	return v[0]
}

// GetFloatv reads a float state vector into dst.
func (d *Device) GetFloatv(pname gl.Enum, dst []float32) {
	pn, ptr := uint32(pname), floatPtr(dst)
	d.invoke(&d.procs.getFloatv, unsafe.Pointer(&pn), unsafe.Pointer(&ptr))
}

func (d *Device) GenTexture() gl.Texture { return gl.Texture(d.ctx.GenTextures(1)) }

func (d *Device) DeleteTexture(t gl.Texture) { d.ctx.DeleteTextures(uint32(t)) }

func (d *Device) ActiveTexture(unit gl.Enum) { d.ctx.ActiveTexture(uint32(unit)) }

func (d *Device) BindTexture(target gl.Enum, t gl.Texture) {
	d.ctx.BindTexture(uint32(target), uint32(t))
}

func (d *Device) TexParameteri(target, pname gl.Enum, param int32) {
	d.ctx.TexParameteri(uint32(target), uint32(pname), param)
}

func (d *Device) TexParameterf(target, pname gl.Enum, param float32) {
	tg, pn := uint32(target), uint32(pname)
	d.invoke(&d.procs.texParameterf, unsafe.Pointer(&tg), unsafe.Pointer(&pn), unsafe.Pointer(&param))
}

func (d *Device) TexParameterfv(target, pname gl.Enum, params []float32) {
	tg, pn, ptr := uint32(target), uint32(pname), floatPtr(params)
	d.invoke(&d.procs.texParameterfv, unsafe.Pointer(&tg), unsafe.Pointer(&pn), unsafe.Pointer(&ptr))
}

func (d *Device) GetTexParameteri(target, pname gl.Enum) int32 {
	return int32(d.GetTexParameterf(target, pname))
}

func (d *Device) GetTexParameterf(target, pname gl.Enum) float32 {
	var v [4]float32
	d.GetTexParameterfv(target, pname, v[:])
	return v[0]
}

func (d *Device) GetTexParameterfv(target, pname gl.Enum, dst []float32) {
	tg, pn, ptr := uint32(target), uint32(pname), floatPtr(dst)
	d.invoke(&d.procs.getTexParameterfv, unsafe.Pointer(&tg), unsafe.Pointer(&pn), unsafe.Pointer(&ptr))
}

func (d *Device) GetTexLevelParameteri(target gl.Enum, level int, pname gl.Enum) int32 {
	var v int32
	tg, lv, pn, ptr := uint32(target), int32(level), uint32(pname), unsafe.Pointer(&v)
	d.invoke(&d.procs.getTexLevelParameteriv, unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&pn), unsafe.Pointer(&ptr))
	return v
}

func (d *Device) PixelStorei(pname gl.Enum, param int32) {
	d.ctx.PixelStorei(uint32(pname), param)
}

func (d *Device) TexImage1D(target gl.Enum, level int, internal gl.TextureFormat, width int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	tg, lv, in, w, border := uint32(target), int32(level), int32(internal), int32(width), int32(0)
	fm, ty, ptr := uint32(format), uint32(typ), dataPtr(data)
	d.invoke(&d.procs.texImage1D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&in), unsafe.Pointer(&w),
		unsafe.Pointer(&border), unsafe.Pointer(&fm), unsafe.Pointer(&ty), unsafe.Pointer(&ptr))
}

func (d *Device) TexImage2D(target gl.Enum, level int, internal gl.TextureFormat, width, height int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	d.ctx.TexImage2D(uint32(target), int32(level), int32(internal), int32(width), int32(height), 0,
		uint32(format), uint32(typ), uintptr(dataPtr(data)))
}

func (d *Device) TexImage3D(target gl.Enum, level int, internal gl.TextureFormat, width, height, depth int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	tg, lv, in := uint32(target), int32(level), int32(internal)
	w, h, dp, border := int32(width), int32(height), int32(depth), int32(0)
	fm, ty, ptr := uint32(format), uint32(typ), dataPtr(data)
	d.invoke(&d.procs.texImage3D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&in), unsafe.Pointer(&w), unsafe.Pointer(&h),
		unsafe.Pointer(&dp), unsafe.Pointer(&border), unsafe.Pointer(&fm), unsafe.Pointer(&ty), unsafe.Pointer(&ptr))
}

func (d *Device) TexSubImage1D(target gl.Enum, level, x, width int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	tg, lv, ox, w := uint32(target), int32(level), int32(x), int32(width)
	fm, ty, ptr := uint32(format), uint32(typ), dataPtr(data)
	d.invoke(&d.procs.texSubImage1D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&ox), unsafe.Pointer(&w),
		unsafe.Pointer(&fm), unsafe.Pointer(&ty), unsafe.Pointer(&ptr))
}

func (d *Device) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	d.ctx.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height),
		uint32(format), uint32(typ), uintptr(dataPtr(data)))
}

func (d *Device) TexSubImage3D(target gl.Enum, level, x, y, z, width, height, depth int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	tg, lv := uint32(target), int32(level)
	ox, oy, oz := int32(x), int32(y), int32(z)
	w, h, dp := int32(width), int32(height), int32(depth)
	fm, ty, ptr := uint32(format), uint32(typ), dataPtr(data)
	d.invoke(&d.procs.texSubImage3D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&ox), unsafe.Pointer(&oy), unsafe.Pointer(&oz),
		unsafe.Pointer(&w), unsafe.Pointer(&h), unsafe.Pointer(&dp),
		unsafe.Pointer(&fm), unsafe.Pointer(&ty), unsafe.Pointer(&ptr))
}

func (d *Device) CompressedTexImage2D(target gl.Enum, level int, format gl.CompressedPixelFormat, width, height int, data []byte) {
	tg, lv, fm := uint32(target), int32(level), uint32(format)
	w, h, border, n, ptr := int32(width), int32(height), int32(0), int32(len(data)), dataPtr(data)
	d.invoke(&d.procs.compressedTexImage2D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&fm), unsafe.Pointer(&w),
		unsafe.Pointer(&h), unsafe.Pointer(&border), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

func (d *Device) CompressedTexImage3D(target gl.Enum, level int, format gl.CompressedPixelFormat, width, height, depth int, data []byte) {
	tg, lv, fm := uint32(target), int32(level), uint32(format)
	w, h, dp, border := int32(width), int32(height), int32(depth), int32(0)
	n, ptr := int32(len(data)), dataPtr(data)
	d.invoke(&d.procs.compressedTexImage3D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&fm), unsafe.Pointer(&w), unsafe.Pointer(&h),
		unsafe.Pointer(&dp), unsafe.Pointer(&border), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

func (d *Device) CompressedTexSubImage2D(target gl.Enum, level, x, y, width, height int, format gl.CompressedPixelFormat, data []byte) {
	tg, lv, ox, oy := uint32(target), int32(level), int32(x), int32(y)
	w, h, fm := int32(width), int32(height), uint32(format)
	n, ptr := int32(len(data)), dataPtr(data)
	d.invoke(&d.procs.compressedTexSubImage2D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&ox), unsafe.Pointer(&oy),
		unsafe.Pointer(&w), unsafe.Pointer(&h), unsafe.Pointer(&fm), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

func (d *Device) CompressedTexSubImage3D(target gl.Enum, level, x, y, z, width, height, depth int, format gl.CompressedPixelFormat, data []byte) {
	tg, lv := uint32(target), int32(level)
	ox, oy, oz := int32(x), int32(y), int32(z)
	w, h, dp, fm := int32(width), int32(height), int32(depth), uint32(format)
	n, ptr := int32(len(data)), dataPtr(data)
	d.invoke(&d.procs.compressedTexSubImage3D,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&ox), unsafe.Pointer(&oy), unsafe.Pointer(&oz),
		unsafe.Pointer(&w), unsafe.Pointer(&h), unsafe.Pointer(&dp),
		unsafe.Pointer(&fm), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

func (d *Device) GenerateMipmap(target gl.Enum) { d.ctx.GenerateMipmap(uint32(target)) }

func (d *Device) GetTexImage(target gl.Enum, level int, format gl.PixelFormat, typ gl.PixelType, dst []byte) {
	tg, lv, fm, ty, ptr := uint32(target), int32(level), uint32(format), uint32(typ), dataPtr(dst)
	d.invoke(&d.procs.getTexImage,
		unsafe.Pointer(&tg), unsafe.Pointer(&lv), unsafe.Pointer(&fm), unsafe.Pointer(&ty), unsafe.Pointer(&ptr))
}

var _ gl.Functions = (*Device)(nil)
