// Command glinfo prints what a GL profile offers for textures and can
// upload a decoded image through the texture layer.
//
//	glinfo -target GLES2 -formats
//	glinfo -driver native -compressed
//	glinfo -target GL -image photo.webp -out level2.bmp -level 2
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/driver"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/glformat"
	"github.com/gogpu/glhal/pixel"
	"github.com/gogpu/glhal/profile"
	"github.com/gogpu/glhal/texture"
)

func main() {
	var (
		target     = flag.String("target", "GLES3", "profile target: GL, GLES2, GLES3, WebGL1 or WebGL2")
		drv        = flag.String("driver", driver.Soft, "driver name, or \"auto\" for the best available")
		formats    = flag.Bool("formats", false, "print the uncompressed format table")
		compressed = flag.Bool("compressed", false, "print the compressed format table")
		input      = flag.String("image", "", "upload this image (PNG, JPEG, BMP, TIFF or WebP)")
		mipmaps    = flag.Bool("mipmaps", true, "build a mip chain for the uploaded image")
		output     = flag.String("out", "", "read a level of the uploaded image back into this BMP file")
		level      = flag.Int("level", 0, "level to read back with -out")
		strict     = flag.Bool("strict", false, "panic on contract violations")
	)
	flag.Parse()
	glhal.SetPanicOnViolation(*strict)

	t, err := profile.ParseTarget(*target)
	if err != nil {
		log.Fatal(err)
	}
	want := profile.Default(t)
	var d driver.Driver
	if *drv == "auto" {
		d, err = driver.Default(want)
	} else {
		d, err = driver.Open(*drv, want)
	}
	if err != nil {
		log.Fatalf("Failed to open driver: %v", err)
	}
	defer d.Close()

	p := d.Profile()
	printProfile(os.Stdout, d, p)
	reg := glformat.New(p)
	if *formats {
		printFormats(os.Stdout, reg)
	}
	if *compressed {
		printCompressed(os.Stdout, reg)
	}
	if *input != "" {
		if err := upload(d, p, *input, *mipmaps, *output, *level); err != nil {
			log.Fatalf("Upload failed: %v", err)
		}
	}
}

func printProfile(w io.Writer, d driver.Driver, p profile.Profile) {
	renderer := d.GetString(gl.RENDERER)
	info := profile.ClassifyAdapter(renderer)
	fmt.Fprintf(w, "version:  %s\n", d.GetString(gl.VERSION))
	fmt.Fprintf(w, "renderer: %s (%s)\n", renderer, info.Type)
	fmt.Fprintf(w, "profile:  %s\n", p)
	fmt.Fprintf(w, "kinds:   ")
	for _, k := range texture.Kinds() {
		if k.IsAvailable(p) {
			fmt.Fprintf(w, " %v", k)
		}
	}
	fmt.Fprintln(w)
}

func printFormats(w io.Writer, reg glformat.Registry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tPIXEL FORMAT\tPIXEL TYPE\tINTERNAL\tSIZE\tWEBGPU")
	for _, f := range pixel.Formats() {
		n, err := reg.Translate(f, 0)
		if err != nil {
			fmt.Fprintf(tw, "%v\t-\t-\t-\t-\t-\n", f)
			continue
		}
		size, _ := glformat.PixelSize(n.Format, n.Type)
		gpu := "-"
		if g, ok := f.GPUFormat(); ok {
			gpu = g.String()
		}
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%d\t%s\n", f, n.Format, n.Type, n.Internal, size, gpu)
	}
	tw.Flush()
}

func printCompressed(w io.Writer, reg glformat.Registry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tNATIVE\tBLOCK\tBYTES")
	for _, f := range reg.CompressedFormats() {
		n, _ := reg.CompressedPixelFormat(f)
		bw, bh := f.BlockSize()
		fmt.Fprintf(tw, "%v\t%v\t%dx%d\t%d\n", f, n, bw, bh, f.BlockBytes())
	}
	tw.Flush()
}

func upload(d driver.Driver, p profile.Profile, path string, mipmaps bool, out string, level int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	src, kind, err := image.Decode(f)
	f.Close()
	if err != nil {
		return err
	}
	img, err := pixel.FromImage(src, pixel.RGBA8Unorm)
	if err != nil {
		return err
	}

	c, err := texture.NewContext(d, p)
	if err != nil {
		return err
	}
	tex, err := c.NewTexture(texture.Texture2D)
	if err != nil {
		return err
	}
	defer tex.Destroy()

	if err := tex.SetImage(0, img); err != nil {
		return err
	}
	levels := 1
	if mipmaps {
		if err := tex.GenerateMipmap(); err != nil {
			// Fall back to a chain computed on the CPU.
			log.Printf("GenerateMipmap: %v; uploading a CPU chain", err)
			chain, err := pixel.MipChain(img)
			if err != nil {
				return err
			}
			for i, l := range chain[1:] {
				if err := tex.SetImage(i+1, l); err != nil {
					return err
				}
			}
		}
		levels = pixel.MipLevelCount(img.Extent())
		if err := tex.SetMinificationFilter(texture.Linear, texture.MipmapLinear); err != nil {
			return err
		}
	}
	if err := tex.Flush(); err != nil {
		return err
	}
	log.Printf("Uploaded %s image %s: %dx%d, %d levels, direct access %v",
		kind, path, tex.Width(), tex.Height(), levels, c.DirectAccess())

	for i := range levels {
		size, err := tex.ImageSize(i)
		if err != nil {
			break
		}
		log.Printf("  level %d: %v", i, size)
	}

	if out == "" {
		return nil
	}
	back, err := tex.Image(level, pixel.RGBA8Unorm)
	if err != nil {
		return err
	}
	goImg, err := pixel.ToImage(back)
	if err != nil {
		return err
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, goImg); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
