package glformat

import (
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/pixel"
	"github.com/gogpu/glhal/profile"
)

// targetMask is a set of targets.
type targetMask uint8

const (
	maskGL     targetMask = 1 << profile.GL
	maskGLES3  targetMask = 1 << profile.GLES3
	maskWebGL2 targetMask = 1 << profile.WebGL2

	maskGLES2  targetMask = 1 << profile.GLES2
	maskWebGL1 targetMask = 1 << profile.WebGL1

	coreTargets = maskGL | maskGLES3 | maskWebGL2
	allTargets  = coreTargets | maskGLES2 | maskWebGL1
	// ETC2 and EAC are core in GL 4.3 and GLES3, and exposed by
	// WEBGL_compressed_texture_etc on both WebGL versions.
	etcTargets = coreTargets | maskWebGL1
)

func (m targetMask) has(t profile.Target) bool { return m&(1<<t) != 0 }

// entry is the native representation of a format on one target. A zero
// format means the format is not representable there.
type entry struct {
	format   gl.PixelFormat
	typ      gl.PixelType
	internal gl.TextureFormat
}

// layout is a format/type pair used on GLES2 and WebGL1, where the
// internal format is the unsized pixel format.
type layout struct {
	format gl.PixelFormat
	typ    gl.PixelType
}

// mapping describes one portable format across all targets: the sized
// mapping used on GL, GLES3 and WebGL2 (restricted to core) plus the
// layouts used on GLES2 and WebGL1.
type mapping struct {
	core   entry
	on     targetMask
	gles2  layout
	webgl1 layout
	// esInternal replaces core.internal on GLES3 when non-zero.
	esInternal gl.TextureFormat
}

// mappings is indexed by pixel.Format.
var mappings = [pixel.FormatCount]mapping{
	pixel.R8Unorm:                {core: entry{gl.Red, gl.UnsignedByte, gl.R8}, on: coreTargets, gles2: layout{gl.Red, gl.UnsignedByte}, webgl1: layout{gl.Luminance, gl.UnsignedByte}},
	pixel.RG8Unorm:               {core: entry{gl.RG, gl.UnsignedByte, gl.RG8}, on: coreTargets, gles2: layout{gl.RG, gl.UnsignedByte}, webgl1: layout{gl.LuminanceAlpha, gl.UnsignedByte}},
	pixel.RGB8Unorm:              {core: entry{gl.RGB, gl.UnsignedByte, gl.RGB8}, on: coreTargets, gles2: layout{gl.RGB, gl.UnsignedByte}, webgl1: layout{gl.RGB, gl.UnsignedByte}},
	pixel.RGBA8Unorm:             {core: entry{gl.RGBA, gl.UnsignedByte, gl.RGBA8}, on: coreTargets, gles2: layout{gl.RGBA, gl.UnsignedByte}, webgl1: layout{gl.RGBA, gl.UnsignedByte}},
	pixel.R8Snorm:                {core: entry{gl.Red, gl.Byte, gl.R8Snorm}, on: coreTargets},
	pixel.RG8Snorm:               {core: entry{gl.RG, gl.Byte, gl.RG8Snorm}, on: coreTargets},
	pixel.RGB8Snorm:              {core: entry{gl.RGB, gl.Byte, gl.RGB8Snorm}, on: coreTargets},
	pixel.RGBA8Snorm:             {core: entry{gl.RGBA, gl.Byte, gl.RGBA8Snorm}, on: coreTargets},
	pixel.R8Srgb:                 {core: entry{gl.Red, gl.UnsignedByte, gl.SR8}, on: maskGL | maskGLES3},
	pixel.RG8Srgb:                {core: entry{gl.RG, gl.UnsignedByte, gl.SRG8}, on: maskGL},
	pixel.RGB8Srgb:               {core: entry{gl.RGB, gl.UnsignedByte, gl.SRGB8}, on: coreTargets, gles2: layout{gl.SRGB, gl.UnsignedByte}, webgl1: layout{gl.SRGB, gl.UnsignedByte}},
	pixel.RGBA8Srgb:              {core: entry{gl.RGBA, gl.UnsignedByte, gl.SRGB8Alpha8}, on: coreTargets, gles2: layout{gl.SRGBAlpha, gl.UnsignedByte}, webgl1: layout{gl.SRGBAlpha, gl.UnsignedByte}},
	pixel.R8UI:                   {core: entry{gl.RedInteger, gl.UnsignedByte, gl.R8UI}, on: coreTargets},
	pixel.RG8UI:                  {core: entry{gl.RGInteger, gl.UnsignedByte, gl.RG8UI}, on: coreTargets},
	pixel.RGB8UI:                 {core: entry{gl.RGBInteger, gl.UnsignedByte, gl.RGB8UI}, on: coreTargets},
	pixel.RGBA8UI:                {core: entry{gl.RGBAInteger, gl.UnsignedByte, gl.RGBA8UI}, on: coreTargets},
	pixel.R8I:                    {core: entry{gl.RedInteger, gl.Byte, gl.R8I}, on: coreTargets},
	pixel.RG8I:                   {core: entry{gl.RGInteger, gl.Byte, gl.RG8I}, on: coreTargets},
	pixel.RGB8I:                  {core: entry{gl.RGBInteger, gl.Byte, gl.RGB8I}, on: coreTargets},
	pixel.RGBA8I:                 {core: entry{gl.RGBAInteger, gl.Byte, gl.RGBA8I}, on: coreTargets},
	pixel.R16Unorm:               {core: entry{gl.Red, gl.UnsignedShort, gl.R16}, on: maskGL | maskGLES3},
	pixel.RG16Unorm:              {core: entry{gl.RG, gl.UnsignedShort, gl.RG16}, on: maskGL | maskGLES3},
	pixel.RGB16Unorm:             {core: entry{gl.RGB, gl.UnsignedShort, gl.RGB16}, on: maskGL | maskGLES3},
	pixel.RGBA16Unorm:            {core: entry{gl.RGBA, gl.UnsignedShort, gl.RGBA16}, on: maskGL | maskGLES3},
	pixel.R16Snorm:               {core: entry{gl.Red, gl.Short, gl.R16Snorm}, on: maskGL | maskGLES3},
	pixel.RG16Snorm:              {core: entry{gl.RG, gl.Short, gl.RG16Snorm}, on: maskGL | maskGLES3},
	pixel.RGB16Snorm:             {core: entry{gl.RGB, gl.Short, gl.RGB16Snorm}, on: maskGL | maskGLES3},
	pixel.RGBA16Snorm:            {core: entry{gl.RGBA, gl.Short, gl.RGBA16Snorm}, on: maskGL | maskGLES3},
	pixel.R16UI:                  {core: entry{gl.RedInteger, gl.UnsignedShort, gl.R16UI}, on: coreTargets},
	pixel.RG16UI:                 {core: entry{gl.RGInteger, gl.UnsignedShort, gl.RG16UI}, on: coreTargets},
	pixel.RGB16UI:                {core: entry{gl.RGBInteger, gl.UnsignedShort, gl.RGB16UI}, on: coreTargets},
	pixel.RGBA16UI:               {core: entry{gl.RGBAInteger, gl.UnsignedShort, gl.RGBA16UI}, on: coreTargets},
	pixel.R16I:                   {core: entry{gl.RedInteger, gl.Short, gl.R16I}, on: coreTargets},
	pixel.RG16I:                  {core: entry{gl.RGInteger, gl.Short, gl.RG16I}, on: coreTargets},
	pixel.RGB16I:                 {core: entry{gl.RGBInteger, gl.Short, gl.RGB16I}, on: coreTargets},
	pixel.RGBA16I:                {core: entry{gl.RGBAInteger, gl.Short, gl.RGBA16I}, on: coreTargets},
	pixel.R16F:                   {core: entry{gl.Red, gl.HalfFloat, gl.R16F}, on: coreTargets, gles2: layout{gl.Red, gl.HalfFloatOES}, webgl1: layout{gl.Luminance, gl.HalfFloatOES}},
	pixel.RG16F:                  {core: entry{gl.RG, gl.HalfFloat, gl.RG16F}, on: coreTargets, gles2: layout{gl.RG, gl.HalfFloatOES}, webgl1: layout{gl.LuminanceAlpha, gl.HalfFloatOES}},
	pixel.RGB16F:                 {core: entry{gl.RGB, gl.HalfFloat, gl.RGB16F}, on: coreTargets, gles2: layout{gl.RGB, gl.HalfFloatOES}, webgl1: layout{gl.RGB, gl.HalfFloatOES}},
	pixel.RGBA16F:                {core: entry{gl.RGBA, gl.HalfFloat, gl.RGBA16F}, on: coreTargets, gles2: layout{gl.RGBA, gl.HalfFloatOES}, webgl1: layout{gl.RGBA, gl.HalfFloatOES}},
	pixel.R32UI:                  {core: entry{gl.RedInteger, gl.UnsignedInt, gl.R32UI}, on: coreTargets},
	pixel.RG32UI:                 {core: entry{gl.RGInteger, gl.UnsignedInt, gl.RG32UI}, on: coreTargets},
	pixel.RGB32UI:                {core: entry{gl.RGBInteger, gl.UnsignedInt, gl.RGB32UI}, on: coreTargets},
	pixel.RGBA32UI:               {core: entry{gl.RGBAInteger, gl.UnsignedInt, gl.RGBA32UI}, on: coreTargets},
	pixel.R32I:                   {core: entry{gl.RedInteger, gl.Int, gl.R32I}, on: coreTargets},
	pixel.RG32I:                  {core: entry{gl.RGInteger, gl.Int, gl.RG32I}, on: coreTargets},
	pixel.RGB32I:                 {core: entry{gl.RGBInteger, gl.Int, gl.RGB32I}, on: coreTargets},
	pixel.RGBA32I:                {core: entry{gl.RGBAInteger, gl.Int, gl.RGBA32I}, on: coreTargets},
	pixel.R32F:                   {core: entry{gl.Red, gl.Float, gl.R32F}, on: coreTargets, gles2: layout{gl.Red, gl.Float}, webgl1: layout{gl.Luminance, gl.Float}},
	pixel.RG32F:                  {core: entry{gl.RG, gl.Float, gl.RG32F}, on: coreTargets, gles2: layout{gl.RG, gl.Float}, webgl1: layout{gl.LuminanceAlpha, gl.Float}},
	pixel.RGB32F:                 {core: entry{gl.RGB, gl.Float, gl.RGB32F}, on: coreTargets, gles2: layout{gl.RGB, gl.Float}, webgl1: layout{gl.RGB, gl.Float}},
	pixel.RGBA32F:                {core: entry{gl.RGBA, gl.Float, gl.RGBA32F}, on: coreTargets, gles2: layout{gl.RGBA, gl.Float}, webgl1: layout{gl.RGBA, gl.Float}},
	pixel.Depth16Unorm:           {core: entry{gl.DepthComponent, gl.UnsignedShort, gl.DepthComponent16}, on: coreTargets, gles2: layout{gl.DepthComponent, gl.UnsignedShort}, webgl1: layout{gl.DepthComponent, gl.UnsignedShort}},
	pixel.Depth24Unorm:           {core: entry{gl.DepthComponent, gl.UnsignedInt, gl.DepthComponent24}, on: coreTargets, gles2: layout{gl.DepthComponent, gl.UnsignedInt}, webgl1: layout{gl.DepthComponent, gl.UnsignedInt}},
	pixel.Depth32F:               {core: entry{gl.DepthComponent, gl.Float, gl.DepthComponent32F}, on: coreTargets},
	pixel.Stencil8UI:             {core: entry{gl.StencilIndex, gl.UnsignedByte, gl.StencilIndex8}, on: maskGL | maskGLES3},
	pixel.Depth16UnormStencil8UI: {}, // no native packed 16+8 depth/stencil
	pixel.Depth24UnormStencil8UI: {core: entry{gl.DepthStencil, gl.UnsignedInt248, gl.Depth24Stencil8}, on: coreTargets, gles2: layout{gl.DepthStencil, gl.UnsignedInt248}, webgl1: layout{gl.DepthStencil, gl.UnsignedInt248}},
	pixel.Depth32FStencil8UI:     {core: entry{gl.DepthStencil, gl.Float32UnsignedInt248Rev, gl.Depth32FStencil8}, on: coreTargets},
	pixel.RGB565Unorm:            {core: entry{gl.RGB, gl.UnsignedShort565, gl.RGB565}, on: coreTargets, gles2: layout{gl.RGB, gl.UnsignedShort565}, webgl1: layout{gl.RGB, gl.UnsignedShort565}},
	pixel.RGBA4Unorm:             {core: entry{gl.RGBA, gl.UnsignedShort4444, gl.RGBA4}, on: coreTargets, gles2: layout{gl.RGBA, gl.UnsignedShort4444}, webgl1: layout{gl.RGBA, gl.UnsignedShort4444}},
	pixel.RGB5A1Unorm:            {core: entry{gl.RGBA, gl.UnsignedShort5551, gl.RGB5A1}, on: coreTargets, gles2: layout{gl.RGBA, gl.UnsignedShort5551}, webgl1: layout{gl.RGBA, gl.UnsignedShort5551}},
	pixel.RGB10A2Unorm:           {core: entry{gl.RGBA, gl.UnsignedInt2101010Rev, gl.RGB10A2}, on: coreTargets},
	pixel.RGB10A2UI:              {core: entry{gl.RGBAInteger, gl.UnsignedInt2101010Rev, gl.RGB10A2UI}, on: coreTargets},
	pixel.RG11B10F:               {core: entry{gl.RGB, gl.UnsignedInt10F11F11FRev, gl.R11FG11FB10F}, on: coreTargets},
	pixel.RGB9E5F:                {core: entry{gl.RGB, gl.UnsignedInt5999Rev, gl.RGB9E5}, on: coreTargets},
	pixel.BGRA8Unorm:             {core: entry{gl.BGRA, gl.UnsignedByte, gl.RGBA8}, on: maskGL | maskGLES3, gles2: layout{gl.BGRA, gl.UnsignedByte}, esInternal: gl.TextureFormat(gl.BGRA)},
}

// compressedMapping is the native value of one compressed format and the
// targets where it is representable.
type compressedMapping struct {
	format gl.CompressedPixelFormat
	on     targetMask
}

// compressedMappings is indexed by pixel.CompressedFormat.
var compressedMappings = [pixel.CompressedFormatCount]compressedMapping{
	pixel.BC1RGBUnorm:        {gl.CompressedRGBS3TCDXT1, allTargets},
	pixel.BC1RGBSrgb:         {gl.CompressedSRGBS3TCDXT1, allTargets},
	pixel.BC1RGBAUnorm:       {gl.CompressedRGBAS3TCDXT1, allTargets},
	pixel.BC1RGBASrgb:        {gl.CompressedSRGBAlphaS3TCDXT1, allTargets},
	pixel.BC2RGBAUnorm:       {gl.CompressedRGBAS3TCDXT3, allTargets},
	pixel.BC2RGBASrgb:        {gl.CompressedSRGBAlphaS3TCDXT3, allTargets},
	pixel.BC3RGBAUnorm:       {gl.CompressedRGBAS3TCDXT5, allTargets},
	pixel.BC3RGBASrgb:        {gl.CompressedSRGBAlphaS3TCDXT5, allTargets},
	pixel.BC4RUnorm:          {gl.CompressedRedRGTC1, coreTargets},
	pixel.BC4RSnorm:          {gl.CompressedSignedRedRGTC1, coreTargets},
	pixel.BC5RGUnorm:         {gl.CompressedRGRGTC2, coreTargets},
	pixel.BC5RGSnorm:         {gl.CompressedSignedRGRGTC2, coreTargets},
	pixel.BC6hRGBUfloat:      {gl.CompressedRGBBPTCUnsignedFloat, coreTargets},
	pixel.BC6hRGBSfloat:      {gl.CompressedRGBBPTCSignedFloat, coreTargets},
	pixel.BC7RGBAUnorm:       {gl.CompressedRGBABPTCUnorm, coreTargets},
	pixel.BC7RGBASrgb:        {gl.CompressedSRGBAlphaBPTCUnorm, coreTargets},
	pixel.EACR11Unorm:        {gl.CompressedR11EAC, etcTargets},
	pixel.EACR11Snorm:        {gl.CompressedSignedR11EAC, etcTargets},
	pixel.EACRG11Unorm:       {gl.CompressedRG11EAC, etcTargets},
	pixel.EACRG11Snorm:       {gl.CompressedSignedRG11EAC, etcTargets},
	pixel.ETC2RGB8Unorm:      {gl.CompressedRGB8ETC2, etcTargets},
	pixel.ETC2RGB8Srgb:       {gl.CompressedSRGB8ETC2, etcTargets},
	pixel.ETC2RGB8A1Unorm:    {gl.CompressedRGB8PunchthroughAlpha1ETC2, etcTargets},
	pixel.ETC2RGB8A1Srgb:     {gl.CompressedSRGB8PunchthroughAlpha1ETC2, etcTargets},
	pixel.ETC2RGBA8Unorm:     {gl.CompressedRGBA8ETC2EAC, etcTargets},
	pixel.ETC2RGBA8Srgb:      {gl.CompressedSRGB8Alpha8ETC2EAC, etcTargets},
	pixel.ASTC4x4RGBAUnorm:   {gl.CompressedRGBAASTC4x4, allTargets},
	pixel.ASTC4x4RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC4x4, allTargets},
	pixel.ASTC5x4RGBAUnorm:   {gl.CompressedRGBAASTC5x4, allTargets},
	pixel.ASTC5x4RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC5x4, allTargets},
	pixel.ASTC5x5RGBAUnorm:   {gl.CompressedRGBAASTC5x5, allTargets},
	pixel.ASTC5x5RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC5x5, allTargets},
	pixel.ASTC6x5RGBAUnorm:   {gl.CompressedRGBAASTC6x5, allTargets},
	pixel.ASTC6x5RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC6x5, allTargets},
	pixel.ASTC6x6RGBAUnorm:   {gl.CompressedRGBAASTC6x6, allTargets},
	pixel.ASTC6x6RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC6x6, allTargets},
	pixel.ASTC8x5RGBAUnorm:   {gl.CompressedRGBAASTC8x5, allTargets},
	pixel.ASTC8x5RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC8x5, allTargets},
	pixel.ASTC8x6RGBAUnorm:   {gl.CompressedRGBAASTC8x6, allTargets},
	pixel.ASTC8x6RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC8x6, allTargets},
	pixel.ASTC8x8RGBAUnorm:   {gl.CompressedRGBAASTC8x8, allTargets},
	pixel.ASTC8x8RGBASrgb:    {gl.CompressedSRGB8Alpha8ASTC8x8, allTargets},
	pixel.ASTC10x5RGBAUnorm:  {gl.CompressedRGBAASTC10x5, allTargets},
	pixel.ASTC10x5RGBASrgb:   {gl.CompressedSRGB8Alpha8ASTC10x5, allTargets},
	pixel.ASTC10x6RGBAUnorm:  {gl.CompressedRGBAASTC10x6, allTargets},
	pixel.ASTC10x6RGBASrgb:   {gl.CompressedSRGB8Alpha8ASTC10x6, allTargets},
	pixel.ASTC10x8RGBAUnorm:  {gl.CompressedRGBAASTC10x8, allTargets},
	pixel.ASTC10x8RGBASrgb:   {gl.CompressedSRGB8Alpha8ASTC10x8, allTargets},
	pixel.ASTC10x10RGBAUnorm: {gl.CompressedRGBAASTC10x10, allTargets},
	pixel.ASTC10x10RGBASrgb:  {gl.CompressedSRGB8Alpha8ASTC10x10, allTargets},
	pixel.ASTC12x10RGBAUnorm: {gl.CompressedRGBAASTC12x10, allTargets},
	pixel.ASTC12x10RGBASrgb:  {gl.CompressedSRGB8Alpha8ASTC12x10, allTargets},
	pixel.ASTC12x12RGBAUnorm: {gl.CompressedRGBAASTC12x12, allTargets},
	pixel.ASTC12x12RGBASrgb:  {gl.CompressedSRGB8Alpha8ASTC12x12, allTargets},
}
