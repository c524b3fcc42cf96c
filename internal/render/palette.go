package render

import (
	"fmt"
	"image/color"
	"sort"
)

// Palette is every colour the page uses, tuned toward a dark browser
// downloads page.
type Palette struct {
	Background  color.NRGBA
	HeaderText  color.NRGBA
	Muted       color.NRGBA
	SearchBG    color.NRGBA
	Placeholder color.NRGBA
	Card        color.NRGBA
	Link        color.NRGBA
	Outline     color.NRGBA
	ClearAll    color.NRGBA
	Section     color.NRGBA
	Origin      color.NRGBA
	Mark        color.NRGBA
	Glyph       color.NRGBA // magnifier and mini icons
	Doc         color.NRGBA
	DocFold     color.NRGBA
	Track       color.NRGBA
	Bar         color.NRGBA
	Thumb       color.NRGBA

	// document label colour by category
	AccentImage    color.NRGBA
	AccentArchive  color.NRGBA
	AccentDocument color.NRGBA
	AccentOther    color.NRGBA
}

func gray(v uint8) color.NRGBA { return color.NRGBA{v, v, v, 255} }

func DefaultPalette() Palette {
	return Palette{
		Background:  color.NRGBA{19, 22, 27, 255},
		HeaderText:  gray(230),
		Muted:       gray(170),
		SearchBG:    color.NRGBA{33, 36, 41, 255},
		Placeholder: gray(190),
		Card:        color.NRGBA{46, 49, 54, 255},
		Link:        color.NRGBA{170, 200, 255, 255},
		Outline:     color.NRGBA{90, 170, 255, 180},
		ClearAll:    color.NRGBA{180, 220, 255, 255},
		Section:     gray(200),
		Origin:      gray(200),
		Mark:        gray(235),
		Glyph:       color.NRGBA{200, 200, 200, 140},
		Doc:         gray(245),
		DocFold:     gray(230),
		Track:       color.NRGBA{255, 255, 255, 12},
		Bar:         color.NRGBA{120, 170, 255, 140},
		Thumb:       color.NRGBA{255, 255, 255, 40},

		AccentImage:    color.NRGBA{46, 125, 50, 255},
		AccentArchive:  color.NRGBA{176, 110, 20, 255},
		AccentDocument: color.NRGBA{30, 90, 190, 255},
		AccentOther:    gray(80),
	}
}

func (p *Palette) roles() map[string]*color.NRGBA {
	return map[string]*color.NRGBA{
		"background":      &p.Background,
		"header_text":     &p.HeaderText,
		"muted":           &p.Muted,
		"search":          &p.SearchBG,
		"placeholder":     &p.Placeholder,
		"card":            &p.Card,
		"link":            &p.Link,
		"outline":         &p.Outline,
		"clear_all":       &p.ClearAll,
		"section":         &p.Section,
		"origin":          &p.Origin,
		"mark":            &p.Mark,
		"glyph":           &p.Glyph,
		"doc":             &p.Doc,
		"doc_fold":        &p.DocFold,
		"track":           &p.Track,
		"bar":             &p.Bar,
		"thumb":           &p.Thumb,
		"accent_image":    &p.AccentImage,
		"accent_archive":  &p.AccentArchive,
		"accent_document": &p.AccentDocument,
		"accent_other":    &p.AccentOther,
	}
}

// Roles lists the names accepted by Set
func (p *Palette) Roles() []string {
	var names []string
	for name := range p.roles() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set overrides the colour of a named role. The role's alpha is kept so
// translucent roles stay translucent.
func (p *Palette) Set(role string, c color.NRGBA) error {
	dst, ok := p.roles()[role]
	if !ok {
		return fmt.Errorf("unknown palette role %q", role)
	}
	c.A = dst.A
	*dst = c
	return nil
}

// Accent returns the label colour for a document category
func (p *Palette) Accent(c Category) color.NRGBA {
	switch c {
	case CategoryImage:
		return p.AccentImage
	case CategoryArchive:
		return p.AccentArchive
	case CategoryDocument:
		return p.AccentDocument
	default:
		return p.AccentOther
	}
}
