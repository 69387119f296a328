// Package xmltree is a read-only query layer over a parsed XML document.
//
// It wraps github.com/beevik/etree with the handful of lookups the FGDC
// mapping needs: path queries from the document root, depth-first subtree
// search by tag name, and bounded ancestor walks. Absence is never an
// error; lookups return empty strings, empty slices or nil.
package xmltree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
)

// Element is a node of the parsed tree.
type Element = etree.Element

// Document is an immutable parsed XML tree.
type Document struct {
	doc *etree.Document
}

// Parse parses content into a Document. Documents declaring a non-UTF-8
// encoding such as ISO-8859-1 are decoded to UTF-8. Malformed XML, or XML
// without a root element, returns an error wrapping
// domain.ErrMalformedDocument.
func Parse(content []byte) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", domain.ErrMalformedDocument)
	}
	return &Document{doc: doc}, nil
}

// Root returns the document element.
func (d *Document) Root() *Element {
	return d.doc.Root()
}

// ElementsAt returns all elements matching path, in document order.
// Relative paths ("idinfo/citation") are resolved from the root element;
// paths starting with "//" search the whole document. An invalid path
// matches nothing.
func (d *Document) ElementsAt(path string) []*Element {
	compiled, err := etree.CompilePath(path)
	if err != nil {
		return nil
	}
	var found []*Element
	if strings.HasPrefix(path, "/") {
		found = d.doc.FindElementsPath(compiled)
	} else {
		found = d.Root().FindElementsPath(compiled)
	}
	if len(found) > 1 {
		d.inDocumentOrder(found)
	}
	return found
}

// inDocumentOrder sorts elements by their position in a depth-first walk
// of the document. etree returns "//" matches breadth-first.
func (d *Document) inDocumentOrder(elements []*Element) {
	position := make(map[*Element]int)
	for i, el := range Descendants(d.Root(), "") {
		position[el] = i
	}
	sort.SliceStable(elements, func(i, j int) bool {
		return position[elements[i]] < position[elements[j]]
	})
}

// TextAt returns the text of every element matching path, in order.
func (d *Document) TextAt(path string) []string {
	elements := d.ElementsAt(path)
	texts := make([]string, 0, len(elements))
	for _, el := range elements {
		texts = append(texts, Text(el))
	}
	return texts
}

// FirstTextAt returns the text of the first element matching path,
// or "" when nothing matches.
func (d *Document) FirstTextAt(path string) string {
	elements := d.ElementsAt(path)
	if len(elements) == 0 {
		return ""
	}
	return Text(elements[0])
}

// Text returns the character data directly inside el, before its first
// child element. Returns "" for nil.
func Text(el *Element) string {
	if el == nil {
		return ""
	}
	return el.Text()
}

// Descendants returns el and every element below it whose tag is name,
// depth-first in document order. An empty name matches every element.
func Descendants(el *Element, name string) []*Element {
	if el == nil {
		return nil
	}

	var found []*Element
	stack := []*Element{el}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if name == "" || current.Tag == name {
			found = append(found, current)
		}

		children := current.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return found
}

// FirstDescendant returns the first element Descendants would return,
// or nil.
func FirstDescendant(el *Element, name string) *Element {
	if el == nil {
		return nil
	}

	stack := []*Element{el}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if name == "" || current.Tag == name {
			return current
		}

		children := current.ChildElements()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

// DescendantText returns the text of FirstDescendant(el, name) and whether
// such an element exists.
func DescendantText(el *Element, name string) (string, bool) {
	found := FirstDescendant(el, name)
	if found == nil {
		return "", false
	}
	return Text(found), true
}

// Ancestor returns the element n levels above el, or nil when the walk
// leaves the tree. Ancestor(el, 0) is el.
func Ancestor(el *Element, n int) *Element {
	current := el
	for i := 0; i < n && current != nil; i++ {
		current = parentElement(current)
	}
	return current
}

// parentElement returns the parent element, hiding the document node
// etree places above the root.
func parentElement(el *Element) *Element {
	parent := el.Parent()
	if parent == nil || parent.Parent() == nil && parent.Tag == "" {
		return nil
	}
	return parent
}
