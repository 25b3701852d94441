// Package interact attaches the page's interaction handlers: the mobile
// menu toggle, closing the menu from its links, and smooth scrolling for
// in-page anchors.
package interact

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ziadkadry99/landing/internal/dom"
)

// Element ids and class names the binder relies on.
const (
	ToggleID    = "hamburger"
	MenuID      = "navMenu"
	ActiveClass = "active"
)

// ErrMissingControl is returned when the toggle control or the menu
// container is not on the page.
var ErrMissingControl = errors.New("interaction control missing")

// MenuState is the state of the mobile menu.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// smoothScroll is the scroll request issued for in-page anchors.
var smoothScroll = dom.ScrollOptions{Behavior: "smooth", Block: "start"}

type registration struct {
	el *dom.Element
	id dom.ListenerID
}

// Binding is the set of listeners attached by one Bind call.
type Binding struct {
	doc     *dom.Document
	toggle  *dom.Element
	menu    *dom.Element
	regs    []registration
	anchors []Anchor
}

// Anchor describes one in-page link and whether its target exists.
type Anchor struct {
	Href   string
	Target string
	Found  bool
}

// MenuState derives the menu state from the presentation classes.
func (b *Binding) MenuState() MenuState {
	if b.menu.HasClass(ActiveClass) {
		return MenuOpen
	}
	return MenuClosed
}

// Anchors lists the in-page links found at bind time, in document order.
func (b *Binding) Anchors() []Anchor {
	return append([]Anchor(nil), b.anchors...)
}

// Listeners returns the number of listeners the binding holds.
func (b *Binding) Listeners() int { return len(b.regs) }

// Unbind removes every listener the binding attached.
func (b *Binding) Unbind() {
	for _, r := range b.regs {
		r.el.RemoveEventListener(r.id)
	}
	b.regs = nil
}

func (b *Binding) on(el *dom.Element, fn dom.Handler) {
	b.regs = append(b.regs, registration{el: el, id: el.AddEventListener(dom.EventClick, fn)})
}

// Binder attaches handlers to rendered pages. Binding the same document
// again first removes the handlers of the previous binding, so repeated
// renders never stack listeners.
type Binder struct {
	mu    sync.Mutex
	bound map[*dom.Document]*Binding
}

// NewBinder returns an empty binder.
func NewBinder() *Binder {
	return &Binder{bound: make(map[*dom.Document]*Binding)}
}

// Bind attaches the toggle, auto-close and smooth-scroll handlers. It must
// run after the navigation has been rendered, since it looks up the links
// the renderer produced.
func (bd *Binder) Bind(doc *dom.Document) (*Binding, error) {
	bd.mu.Lock()
	defer bd.mu.Unlock()

	if prev, ok := bd.bound[doc]; ok {
		prev.Unbind()
		delete(bd.bound, doc)
	}

	toggle := doc.ElementByID(ToggleID)
	if toggle == nil {
		return nil, fmt.Errorf("#%s: %w", ToggleID, ErrMissingControl)
	}
	menu := doc.ElementByID(MenuID)
	if menu == nil {
		return nil, fmt.Errorf("#%s: %w", MenuID, ErrMissingControl)
	}

	b := &Binding{doc: doc, toggle: toggle, menu: menu}

	b.on(toggle, func(*dom.Event) {
		toggle.ToggleClass(ActiveClass)
		menu.ToggleClass(ActiveClass)
	})

	for _, link := range menu.QueryAll(dom.Tag("a")) {
		b.on(link, func(*dom.Event) {
			toggle.RemoveClass(ActiveClass)
			menu.RemoveClass(ActiveClass)
		})
	}

	for _, anchor := range doc.QueryAll(dom.HrefPrefix("#")) {
		href, _ := anchor.Attr("href")
		id := strings.TrimPrefix(href, "#")
		b.anchors = append(b.anchors, Anchor{Href: href, Target: id, Found: doc.ElementByID(id) != nil})

		b.on(anchor, func(ev *dom.Event) {
			ev.PreventDefault()
			// The target is looked up at click time: sections may have been
			// re-rendered since binding.
			if target := doc.ElementByID(id); target != nil {
				target.ScrollIntoView(smoothScroll)
			}
		})
	}

	bd.bound[doc] = b
	return b, nil
}

// Release forgets the binding of doc and removes its listeners.
func (bd *Binder) Release(doc *dom.Document) {
	bd.mu.Lock()
	defer bd.mu.Unlock()

	if b, ok := bd.bound[doc]; ok {
		b.Unbind()
		delete(bd.bound, doc)
	}
}
