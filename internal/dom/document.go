// Package dom is a small in-memory page model on top of golang.org/x/net/html.
//
// It provides the handful of host operations the page pipeline needs:
// lookup by id, full replacement of an element's content, class lists,
// event listeners with click dispatch, and a scroll hook.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoSuchElement is returned when an id lookup finds nothing.
var ErrNoSuchElement = errors.New("no such element")

// ScrollOptions mirrors the options of a scroll-into-view request.
type ScrollOptions struct {
	Behavior string // "smooth" or "auto"
	Block    string // "start", "center", "end" or "nearest"
}

// Scroller receives scroll requests. The in-memory document has no
// viewport, so scrolling is delegated to whoever hosts it.
type Scroller interface {
	ScrollIntoView(el *Element, opts ScrollOptions)
}

type nopScroller struct{}

func (nopScroller) ScrollIntoView(*Element, ScrollOptions) {}

// Document is a parsed page. It is not safe for concurrent use.
type Document struct {
	root      *html.Node
	listeners map[*html.Node][]listener
	nextID    ListenerID
	scroller  Scroller
}

// Parse reads a full HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node][]listener),
		scroller:  nopScroller{},
	}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// SetScroller installs the scroll hook. A nil scroller disables scrolling.
func (d *Document) SetScroller(s Scroller) {
	if s == nil {
		s = nopScroller{}
	}
	d.scroller = s
}

// ElementByID returns the first element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return d.wrap(found)
}

// MustElementByID is ElementByID returning ErrNoSuchElement on a miss.
func (d *Document) MustElementByID(id string) (*Element, error) {
	el := d.ElementByID(id)
	if el == nil {
		return nil, fmt.Errorf("#%s: %w", id, ErrNoSuchElement)
	}
	return el, nil
}

// QueryAll returns every element matching m, in document order.
func (d *Document) QueryAll(m Matcher) []*Element {
	return d.collect(d.root, m)
}

// Render serializes the page.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the serialized page.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{node: n, doc: d}
}

func (d *Document) collect(from *html.Node, m Matcher) []*Element {
	var out []*Element
	for c := from.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) bool {
			if n.Type == html.ElementNode {
				el := d.wrap(n)
				if m == nil || m(el) {
					out = append(out, el)
				}
			}
			return true
		})
	}
	return out
}

// forget drops listeners registered on n and its descendants, as happens
// when a subtree leaves the page.
func (d *Document) forget(n *html.Node) {
	walk(n, func(c *html.Node) bool {
		delete(d.listeners, c)
		return true
	})
}

// walk visits n and its descendants depth first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
