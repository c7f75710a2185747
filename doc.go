// Package glhal is a hardware abstraction layer for GL-family texture
// resources and pixel data.
//
// # Overview
//
// Application code describes pixel data in one portable vocabulary
// ([github.com/gogpu/glhal/pixel]) and glhal translates it into the
// enumerations, byte layouts and call sequences of the active API profile:
// desktop GL, GLES2, GLES3, WebGL1 or WebGL2.
//
//   - [github.com/gogpu/glhal/profile] describes the active target and its
//     capabilities.
//   - [github.com/gogpu/glhal/glformat] maps portable formats to native
//     format/type pairs and computes pixel sizes.
//   - [github.com/gogpu/glhal/texture] implements one texture resource for
//     every dimensionality, applying state through direct access when the
//     driver offers it and through bind-then-configure otherwise.
//   - [github.com/gogpu/glhal/driver] opens a [github.com/gogpu/glhal/gl.Functions]
//     implementation by name: a software model or a native EGL context.
//
// # Quick Start
//
//	drv, _ := driver.Open(driver.Soft, profile.Default(profile.GLES3))
//	defer drv.Close()
//	ctx, _ := texture.NewContext(drv, drv.Profile())
//	tex, _ := ctx.NewTexture(texture.Texture2D)
//	defer tex.Destroy()
//
//	img := pixel.NewImage2D(pixel.RGBA8Unorm, 4, 4, data)
//	_ = tex.SetWrapping(texture.Repeat)
//	_ = tex.SetImage(0, img)
//
// # Errors
//
// Three failure classes are distinguished:
//
//   - contract violations (caller bugs), matched with [ErrContract];
//   - profile-unsupported requests, matched with [ErrUnsupported];
//   - driver-reported failures, typed as [*DriverError].
//
// Contract violations are returned as errors by default. Building with the
// glhal_assert tag, or calling [SetPanicOnViolation], turns them into panics.
//
// # Logging
//
// glhal is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog] handler.
package glhal
