// Package texture provides a dimension-generic texture resource over a
// gl.Functions driver.
//
// A [Context] wraps one driver and one profile. It picks the state
// application protocol once: direct state access when the profile has
// the capability and the driver implements gl.DirectStateAccess,
// bind-then-configure on a scratch texture unit otherwise. Both protocols
// leave a texture in the same state.
//
// A [Texture] has a [Kind]. The kind fixes the dimension count, the bind
// target and which sampler settings are legal. Setters validate at once
// and report contract violations through glhal.ErrContract; the recorded
// values are sent to the driver lazily.
//
//	c, err := texture.NewContext(funcs, p)
//	if err != nil {
//		return err
//	}
//	t, err := c.NewTexture(texture.Texture2DArray)
//	if err != nil {
//		return err
//	}
//	defer t.Destroy()
//	_ = t.SetWrapping(texture.ClampToEdge)
//	_ = t.SetMinificationFilter(texture.Linear, texture.MipmapLinear)
//	_ = t.SetImage(0, pixel.NewImage3D(pixel.RGBA8Unorm, 256, 256, 4, nil))
//	// fill layer 2 with a 2D image
//	_ = t.SetSubImage(0, [3]int{0, 0, 2}, layer)
//	_ = t.GenerateMipmap()
package texture
