// Package header implements the header preprocessor (a line-oriented
// pickup-script compiler): take/parameter expansion, comment and
// conditional filtering, and the "!!" directive table, mutating a
// shared world.World as it emits a normalized seed document.
package header

import "github.com/ori-rando/seedcore/pkgs/value"

// ItemDetails carries the overrides a header can attach to an item code
// via name/display/price/icon directives.
type ItemDetails struct {
	Name        string
	HasName     bool
	Display     string
	HasDisplay  bool
	Price       uint16
	HasPrice    bool
	Icon        value.Icon
	HasIcon     bool
}

// Context accumulates the side effects of one header invocation that
// outlive the returned text: cross-header dependencies, exclusions,
// flags, item-detail overrides, reserved sets, and whatever pool debt a
// !!remove/pickup could not satisfy.
type Context struct {
	Dependencies      []string
	Excludes          map[string]string
	Flags             []string
	CustomItems       map[string]*ItemDetails
	Sets              []string
	NegativeInventory []value.Item
}

// NewContext returns an empty Context ready for one Process call.
func NewContext() *Context {
	return &Context{
		Excludes:    make(map[string]string),
		CustomItems: make(map[string]*ItemDetails),
	}
}

func (c *Context) itemDetails(code string) *ItemDetails {
	d, ok := c.CustomItems[code]
	if !ok {
		d = &ItemDetails{}
		c.CustomItems[code] = d
	}
	return d
}

func (c *Context) recordOverflow(item value.Item, n int) {
	for i := 0; i < n; i++ {
		c.NegativeInventory = append(c.NegativeInventory, item)
	}
}
