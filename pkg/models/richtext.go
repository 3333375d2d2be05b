package models

import "strings"

// RichText is the editor's structured description document. The shape is
// open-ended; only the fields needed for plain-text flattening are decoded
// and the rest is ignored.
type RichText struct {
	Root RichTextNode `bson:"root" json:"root"`
}

type RichTextNode struct {
	Type     string         `bson:"type,omitempty" json:"type,omitempty"`
	Text     string         `bson:"text,omitempty" json:"text,omitempty"`
	Children []RichTextNode `bson:"children,omitempty" json:"children,omitempty"`
}

// PlainText flattens the document: top-level text nodes contribute their
// text, container nodes contribute their children's text joined without a
// separator, and top-level parts are joined by single spaces.
func (rt *RichText) PlainText() string {
	if rt == nil {
		return ""
	}
	parts := make([]string, 0, len(rt.Root.Children))
	for _, child := range rt.Root.Children {
		switch {
		case child.Type == "text":
			parts = append(parts, child.Text)
		case len(child.Children) > 0:
			var b strings.Builder
			for _, c := range child.Children {
				b.WriteString(c.Text)
			}
			parts = append(parts, b.String())
		default:
			parts = append(parts, "")
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// NewRichText builds a minimal document with one paragraph per argument.
func NewRichText(paragraphs ...string) *RichText {
	rt := &RichText{Root: RichTextNode{Type: "root"}}
	for _, p := range paragraphs {
		rt.Root.Children = append(rt.Root.Children, RichTextNode{
			Type:     "paragraph",
			Children: []RichTextNode{{Type: "text", Text: p}},
		})
	}
	return rt
}
