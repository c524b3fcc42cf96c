package render

import (
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
)

// Category groups file extensions for the document icon accent
type Category int

const (
	CategoryOther Category = iota
	CategoryImage
	CategoryArchive
	CategoryDocument
)

func (c Category) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryArchive:
		return "archive"
	case CategoryDocument:
		return "document"
	default:
		return "other"
	}
}

// Classify resolves an extension through the filetype registry. PDF is
// registered as an archive matcher there but reads as a document.
func Classify(ext string) Category {
	kind := filetype.GetType(strings.ToLower(strings.TrimPrefix(ext, ".")))
	if kind == filetype.Unknown {
		return CategoryOther
	}
	switch {
	case kind.MIME.Type == "image":
		return CategoryImage
	case kind.MIME.Value == "application/pdf", in(matchers.Document, kind):
		return CategoryDocument
	case in(matchers.Archive, kind):
		return CategoryArchive
	default:
		return CategoryOther
	}
}

func in(m matchers.Map, kind types.Type) bool {
	_, ok := m[kind]
	return ok
}
