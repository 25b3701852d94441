package interact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/landing/internal/dom"
)

const renderedPage = `<!DOCTYPE html>
<html><body>
<nav>
  <div id="logo"><a href="#hero"><img src="l.png"></a></div>
  <ul id="navMenu" class="nav-menu">
    <li><a href="#hero">Home</a></li>
    <li><a href="#skills">Skills</a></li>
    <li><a href="#missing">Missing</a></li>
    <li><a href="https://blog.example.com">Blog</a></li>
  </ul>
  <button id="hamburger" class="hamburger"></button>
</nav>
<section id="hero"><a href="#footer" class="btn">Contact</a></section>
<section id="skills"></section>
<footer id="footer"></footer>
</body></html>`

type recordingScroller struct {
	targets []string
	opts    []dom.ScrollOptions
}

func (r *recordingScroller) ScrollIntoView(el *dom.Element, opts dom.ScrollOptions) {
	r.targets = append(r.targets, el.ID())
	r.opts = append(r.opts, opts)
}

func setup(t *testing.T) (*dom.Document, *recordingScroller) {
	t.Helper()
	doc, err := dom.ParseString(renderedPage)
	require.NoError(t, err)
	rec := &recordingScroller{}
	doc.SetScroller(rec)
	return doc, rec
}

func menuLink(t *testing.T, doc *dom.Document, href string) *dom.Element {
	t.Helper()
	for _, a := range doc.ElementByID(MenuID).QueryAll(dom.Tag("a")) {
		if h, _ := a.Attr("href"); h == href {
			return a
		}
	}
	t.Fatalf("no menu link %q", href)
	return nil
}

func TestToggleTwiceRestoresState(t *testing.T) {
	doc, _ := setup(t)
	b, err := NewBinder().Bind(doc)
	require.NoError(t, err)

	toggle := doc.ElementByID(ToggleID)
	menu := doc.ElementByID(MenuID)
	assert.Equal(t, MenuClosed, b.MenuState())

	toggle.Click()
	assert.Equal(t, MenuOpen, b.MenuState())
	assert.True(t, toggle.HasClass(ActiveClass))
	assert.True(t, menu.HasClass(ActiveClass))

	toggle.Click()
	assert.Equal(t, MenuClosed, b.MenuState())
	assert.False(t, toggle.HasClass(ActiveClass))
	assert.False(t, menu.HasClass(ActiveClass))
}

func TestNavLinkClosesMenu(t *testing.T) {
	for _, toggles := range []int{1, 3, 5} {
		doc, _ := setup(t)
		b, err := NewBinder().Bind(doc)
		require.NoError(t, err)

		toggle := doc.ElementByID(ToggleID)
		for i := 0; i < toggles; i++ {
			toggle.Click()
		}
		require.Equal(t, MenuOpen, b.MenuState())

		menuLink(t, doc, "https://blog.example.com").Click()
		assert.Equal(t, MenuClosed, b.MenuState(), "after %d toggles", toggles)
		assert.False(t, toggle.HasClass(ActiveClass))
	}
}

func TestNavLinkWhileClosedStaysClosed(t *testing.T) {
	doc, _ := setup(t)
	b, err := NewBinder().Bind(doc)
	require.NoError(t, err)

	menuLink(t, doc, "#skills").Click()
	assert.Equal(t, MenuClosed, b.MenuState())
	assert.False(t, doc.ElementByID(ToggleID).HasClass(ActiveClass))
}

func TestSmoothScrollToExistingTarget(t *testing.T) {
	doc, rec := setup(t)
	_, err := NewBinder().Bind(doc)
	require.NoError(t, err)

	ev := menuLink(t, doc, "#skills").Click()

	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, []string{"skills"}, rec.targets)
	assert.Equal(t, dom.ScrollOptions{Behavior: "smooth", Block: "start"}, rec.opts[0])
}

func TestSmoothScrollMissingTargetIsSilent(t *testing.T) {
	doc, rec := setup(t)
	_, err := NewBinder().Bind(doc)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		menuLink(t, doc, "#missing").Click()
	})
	assert.Empty(t, rec.targets)
}

func TestExternalLinkIsNotIntercepted(t *testing.T) {
	doc, rec := setup(t)
	_, err := NewBinder().Bind(doc)
	require.NoError(t, err)

	ev := menuLink(t, doc, "https://blog.example.com").Click()
	assert.False(t, ev.DefaultPrevented())
	assert.Empty(t, rec.targets)
}

func TestAnchorsOutsideMenu(t *testing.T) {
	doc, rec := setup(t)
	b, err := NewBinder().Bind(doc)
	require.NoError(t, err)

	contact := doc.ElementByID("hero").QueryAll(dom.Tag("a"))[0]
	contact.Click()
	assert.Equal(t, []string{"footer"}, rec.targets)

	assert.Equal(t, []Anchor{
		{Href: "#hero", Target: "hero", Found: true},
		{Href: "#hero", Target: "hero", Found: true},
		{Href: "#skills", Target: "skills", Found: true},
		{Href: "#missing", Target: "missing", Found: false},
		{Href: "#footer", Target: "footer", Found: true},
	}, b.Anchors())
}

func TestRebindDoesNotDuplicateListeners(t *testing.T) {
	doc, rec := setup(t)
	binder := NewBinder()

	first, err := binder.Bind(doc)
	require.NoError(t, err)
	second, err := binder.Bind(doc)
	require.NoError(t, err)

	assert.Zero(t, first.Listeners())
	assert.Equal(t, 1, doc.ElementByID(ToggleID).ListenerCount(dom.EventClick))

	// One scroll per click, and the toggle still flips exactly once.
	menuLink(t, doc, "#skills").Click()
	assert.Len(t, rec.targets, 1)

	doc.ElementByID(ToggleID).Click()
	assert.Equal(t, MenuOpen, second.MenuState())
}

func TestRelease(t *testing.T) {
	doc, _ := setup(t)
	binder := NewBinder()
	_, err := binder.Bind(doc)
	require.NoError(t, err)

	binder.Release(doc)
	assert.Zero(t, doc.ElementByID(ToggleID).ListenerCount(dom.EventClick))
	assert.Empty(t, binder.bound)
}

func TestMissingControls(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><ul id="navMenu"></ul></body></html>`)
	require.NoError(t, err)

	_, err = NewBinder().Bind(doc)
	assert.True(t, errors.Is(err, ErrMissingControl))
	assert.Contains(t, err.Error(), "#hamburger")

	doc, err = dom.ParseString(`<html><body><button id="hamburger"></button></body></html>`)
	require.NoError(t, err)

	_, err = NewBinder().Bind(doc)
	assert.True(t, errors.Is(err, ErrMissingControl))
	assert.Contains(t, err.Error(), "#navMenu")
}

func TestMenuStateString(t *testing.T) {
	assert.Equal(t, "open", MenuOpen.String())
	assert.Equal(t, "closed", MenuClosed.String())
}
