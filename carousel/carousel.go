// Package carousel holds the state of the section carousels: a fixed list of
// items and the index of the one in front.
package carousel

// Item is one card of a carousel.
type Item struct {
	Slug        string `yaml:"slug" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Accent      string `yaml:"accent"`
	Indicator   string `yaml:"indicator"`
	Href        string `yaml:"-"`
}

// Position places a slide relative to the current item.
type Position string

const (
	PositionPrev    Position = "prev"
	PositionCurrent Position = "current"
	PositionNext    Position = "next"
)

// Slide is an item together with where it is drawn.
type Slide struct {
	Position Position
	Index    int
	Item     Item
}

// Carousel is an index into a fixed list of items. Moving past either end wraps around.
type Carousel struct {
	items  []Item
	index  int
	single bool
}

// New returns a carousel over items showing the first one.
func New(items []Item) *Carousel {
	return &Carousel{items: items}
}

// NewSingle returns a carousel that only ever draws the current slide.
func NewSingle(items []Item) *Carousel {
	return &Carousel{items: items, single: true}
}

// Wrap maps any integer onto [0, n). It returns 0 when n is zero.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Len returns the number of items.
func (c *Carousel) Len() int {
	return len(c.items)
}

// Index returns the index of the current item.
func (c *Carousel) Index() int {
	return c.index
}

// GoTo makes item i current, wrapping i into range.
func (c *Carousel) GoTo(i int) {
	c.index = Wrap(i, len(c.items))
}

// Next advances to the following item.
func (c *Carousel) Next() {
	c.GoTo(c.index + 1)
}

// Prev steps back to the preceding item.
func (c *Carousel) Prev() {
	c.GoTo(c.index - 1)
}

// PrevIndex returns the index Prev would move to.
func (c *Carousel) PrevIndex() int {
	return Wrap(c.index-1, len(c.items))
}

// NextIndex returns the index Next would move to.
func (c *Carousel) NextIndex() int {
	return Wrap(c.index+1, len(c.items))
}

// Current returns the current item. It reports false for an empty carousel.
func (c *Carousel) Current() (Item, bool) {
	if len(c.items) == 0 {
		return Item{}, false
	}
	return c.items[c.index], true
}

// Items returns the items in order.
func (c *Carousel) Items() []Item {
	return c.items
}

// Single reports whether only the current slide is drawn.
func (c *Carousel) Single() bool {
	return c.single || len(c.items) == 1
}

// Slides returns the slides to draw: previous, current and next, or only the
// current one in single mode. An empty carousel has no slides.
func (c *Carousel) Slides() []Slide {
	cur, ok := c.Current()
	if !ok {
		return nil
	}
	current := Slide{Position: PositionCurrent, Index: c.index, Item: cur}
	if c.Single() {
		return []Slide{current}
	}
	p, n := c.PrevIndex(), c.NextIndex()
	return []Slide{
		{Position: PositionPrev, Index: p, Item: c.items[p]},
		current,
		{Position: PositionNext, Index: n, Item: c.items[n]},
	}
}
