package texture

import "github.com/gogpu/glhal"

// Description is texture metadata as delivered by an importer: the kind,
// sampling parameters and the index of the image holding its contents in
// the importer's image list.
type Description struct {
	Kind          Kind
	Minification  Filter
	Magnification Filter
	Mipmap        Mipmap
	Wrapping      [3]Wrapping
	Image         int
}

// Apply configures t from d. The kinds must match. Wrapping is applied
// for t's dimensions only.
func (d Description) Apply(t *Texture) error {
	if t.Kind() != d.Kind {
		return glhal.Violation("Description.Apply", "description of a %v applied to a %v", d.Kind, t.Kind())
	}
	if err := t.SetWrapping(d.Wrapping[:d.Kind.Dims()]...); err != nil {
		return err
	}
	if err := t.SetMinificationFilter(d.Minification, d.Mipmap); err != nil {
		return err
	}
	return t.SetMagnificationFilter(d.Magnification)
}
