//go:build linux && !(js && wasm)

package native

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
	wgl "github.com/gogpu/wgpu/hal/gles/gl"
)

var (
	errNotLoaded   = errors.New("native: entry point not available")
	errNotPrepared = errors.New("native: call interface not prepared")
)

// proc is a GL entry point the wgpu context does not expose.
// sig spells the argument kinds: u for GLenum and GLuint, i for GLint and
// GLsizei, f for GLfloat and p for pointers.
type proc struct {
	name string
	sig  string
	fn   unsafe.Pointer
	cif  types.CallInterface
}

// procs holds the entry points loaded next to the wgpu context. Optional
// ones stay nil when the driver lacks them; calling them sets
// INVALID_OPERATION instead.
type procs struct {
	getFloatv               proc
	texParameterf           proc
	texParameterfv          proc
	getTexParameterfv       proc
	getTexLevelParameteriv  proc
	texImage1D              proc
	texImage3D              proc
	texSubImage1D           proc
	texSubImage3D           proc
	compressedTexImage2D    proc
	compressedTexImage3D    proc
	compressedTexSubImage2D proc
	compressedTexSubImage3D proc
	getTexImage             proc
}

func (ps *procs) all() []*proc {
	return []*proc{
		&ps.getFloatv, &ps.texParameterf, &ps.texParameterfv, &ps.getTexParameterfv,
		&ps.getTexLevelParameteriv, &ps.texImage1D, &ps.texImage3D, &ps.texSubImage1D,
		&ps.texSubImage3D, &ps.compressedTexImage2D, &ps.compressedTexImage3D,
		&ps.compressedTexSubImage2D, &ps.compressedTexSubImage3D, &ps.getTexImage,
	}
}

func newProcs() procs {
	return procs{
		getFloatv:               proc{name: "glGetFloatv", sig: "up"},
		texParameterf:           proc{name: "glTexParameterf", sig: "uuf"},
		texParameterfv:          proc{name: "glTexParameterfv", sig: "uup"},
		getTexParameterfv:       proc{name: "glGetTexParameterfv", sig: "uup"},
		getTexLevelParameteriv:  proc{name: "glGetTexLevelParameteriv", sig: "uiup"},
		texImage1D:              proc{name: "glTexImage1D", sig: "uiiiiuup"},
		texImage3D:              proc{name: "glTexImage3D", sig: "uiiiiiiuup"},
		texSubImage1D:           proc{name: "glTexSubImage1D", sig: "uiiiuup"},
		texSubImage3D:           proc{name: "glTexSubImage3D", sig: "uiiiiiiiuup"},
		compressedTexImage2D:    proc{name: "glCompressedTexImage2D", sig: "uiuiiiip"},
		compressedTexImage3D:    proc{name: "glCompressedTexImage3D", sig: "uiuiiiiip"},
		compressedTexSubImage2D: proc{name: "glCompressedTexSubImage2D", sig: "uiiiiiuip"},
		compressedTexSubImage3D: proc{name: "glCompressedTexSubImage3D", sig: "uiiiiiiiuip"},
		getTexImage:             proc{name: "glGetTexImage", sig: "uiuup"},
	}
}

func descriptor(c byte) *types.TypeDescriptor {
	switch c {
	case 'u':
		return types.UInt32TypeDescriptor
	case 'i':
		return types.SInt32TypeDescriptor
	case 'f':
		return types.FloatTypeDescriptor
	}
	return types.PointerTypeDescriptor
}

// load resolves every entry point and prepares its call interface.
func (ps *procs) load(getProcAddr wgl.ProcAddressFunc) error {
	for _, pr := range ps.all() {
		args := make([]*types.TypeDescriptor, len(pr.sig))
		for n := range pr.sig {
			args[n] = descriptor(pr.sig[n])
		}
		if err := ffi.PrepareCallInterface(&pr.cif, types.DefaultCall, types.VoidTypeDescriptor, args); err != nil {
			return fmt.Errorf("native: prepare %s: %w", pr.name, err)
		}
		pr.fn = getProcAddr(pr.name)
	}
	return nil
}

// call invokes the entry point with pointers to its argument values.
func (pr *proc) call(args ...unsafe.Pointer) error {
	if pr.fn == nil {
		return errNotLoaded
	}
	if pr.cif.ReturnType == nil || pr.cif.ArgCount != len(args) {
		return errNotPrepared
	}
	if err := ffi.CallFunction(&pr.cif, pr.fn, nil, args); err != nil {
		return fmt.Errorf("native: call %s: %w", pr.name, err)
	}
	return nil
}

// dataPtr returns a pointer argument for b: the address of its first byte,
// or NULL for an empty slice.
func dataPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func floatPtr(v []float32) unsafe.Pointer {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Pointer(&v[0])
}
