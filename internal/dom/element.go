package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle on an element node of a Document. Two handles for the
// same node compare equal through Is.
type Element struct {
	node *html.Node
	doc  *Document
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.node.Data }

// ID returns the id attribute.
func (e *Element) ID() string { return attr(e.node, "id") }

// Attr returns the named attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// Is reports whether both handles refer to the same node.
func (e *Element) Is(other *Element) bool {
	return other != nil && e.node == other.node
}

// Parent returns the enclosing element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return e.doc.wrap(p)
		}
	}
	return nil
}

// Children is markup parsed in the context of an element but not yet
// attached to it.
type Children struct {
	owner *html.Node
	nodes []*html.Node
}

// ParseInner parses markup as the content of the element without touching
// the document.
func (e *Element) ParseInner(markup string) (*Children, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment for <%s id=%q>: %w", e.Tag(), e.ID(), err)
	}
	return &Children{owner: e.node, nodes: nodes}, nil
}

// ReplaceChildren swaps every child of the element for c, which must come
// from ParseInner on the same element. Listeners attached to the removed
// subtree are dropped.
func (e *Element) ReplaceChildren(c *Children) {
	if c.owner != e.node {
		panic(fmt.Sprintf("dom: children parsed for another element than <%s id=%q>", e.Tag(), e.ID()))
	}
	for n := e.node.FirstChild; n != nil; {
		next := n.NextSibling
		e.doc.forget(n)
		e.node.RemoveChild(n)
		n = next
	}
	for _, n := range c.nodes {
		e.node.AppendChild(n)
	}
	c.nodes = nil
}

// SetInnerHTML replaces every child of the element with the nodes parsed
// from markup. On a parse error the element is left unchanged.
func (e *Element) SetInnerHTML(markup string) error {
	c, err := e.ParseInner(markup)
	if err != nil {
		return err
	}
	e.ReplaceChildren(c)
	return nil
}

// InnerHTML serializes the children of the element.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return buf.String()
		}
	}
	return buf.String()
}

// TextContent concatenates the text of all descendant text nodes.
func (e *Element) TextContent() string {
	var sb strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

// QueryAll returns every descendant matching m, in document order.
func (e *Element) QueryAll(m Matcher) []*Element {
	return e.doc.collect(e.node, m)
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	return strings.Fields(attr(e.node, "class"))
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds name to the class list if missing.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.setClasses(append(e.Classes(), name))
}

// RemoveClass removes every occurrence of name from the class list.
func (e *Element) RemoveClass(name string) {
	if !e.HasClass(name) {
		return
	}
	classes := e.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.setClasses(kept)
}

// ToggleClass flips name in the class list and reports whether it is now
// present.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *Element) setClasses(classes []string) {
	e.SetAttr("class", strings.Join(classes, " "))
}

// ScrollIntoView forwards a scroll request to the document's scroller.
func (e *Element) ScrollIntoView(opts ScrollOptions) {
	e.doc.scroller.ScrollIntoView(e, opts)
}

// Matcher selects elements in queries.
type Matcher func(*Element) bool

// Tag matches elements by tag name.
func Tag(name string) Matcher {
	return func(e *Element) bool { return e.Tag() == name }
}

// HrefPrefix matches anchors whose href starts with prefix.
func HrefPrefix(prefix string) Matcher {
	return func(e *Element) bool {
		if e.Tag() != "a" {
			return false
		}
		href, ok := e.Attr("href")
		return ok && strings.HasPrefix(href, prefix)
	}
}
