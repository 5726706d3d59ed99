// Package cart holds the in-memory shopping cart for a single ordering session.
// Lines are keyed by (item id, customization set): adding the same configuration
// twice merges into one line instead of duplicating it.
package cart

import (
	"sort"
	"strings"
)

// Line is one distinct purchasable configuration the customer intends to order.
// Name and UnitPrice are snapshots taken at add time and are not re-synced if
// the menu changes afterwards.
type Line struct {
	ItemID         string            `json:"item_id"`
	Name           string            `json:"name"`
	UnitPrice      float64           `json:"unit_price"`
	Quantity       int               `json:"quantity"`
	RestaurantID   string            `json:"restaurant_id"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// Subtotal returns UnitPrice * Quantity. No currency rounding is applied here;
// formatting to two decimals is up to the presentation layer.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

type lineKey struct {
	itemID      string
	fingerprint string
}

// Cart is an insertion-ordered sequence of lines with no duplicate
// (item id, customization set) pairs. It is a plain data structure with no
// internal locking; a session owner must serialize access to it.
type Cart struct {
	lines []*Line
	index map[lineKey]*Line
}

func New() *Cart {
	return &Cart{
		index: make(map[lineKey]*Line),
	}
}

// fingerprintEscaper escapes the pair and list separators (and the escape
// character itself) so the encoding stays injective: distinct customization
// sets can never collide on one fingerprint, no matter what characters the
// client sends in option names or values.
var fingerprintEscaper = strings.NewReplacer(`\`, `\\`, `=`, `\=`, `;`, `\;`)

// fingerprint builds a canonical sorted-key encoding of a customization set so
// that value-equal sets always map to the same line key regardless of map
// iteration order.
func fingerprint(customizations map[string]string) string {
	if len(customizations) == 0 {
		return ""
	}

	keys := make([]string, 0, len(customizations))
	for k := range customizations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(fingerprintEscaper.Replace(k))
		b.WriteByte('=')
		b.WriteString(fingerprintEscaper.Replace(customizations[k]))
	}
	return b.String()
}

func keyOf(itemID string, customizations map[string]string) lineKey {
	return lineKey{itemID: itemID, fingerprint: fingerprint(customizations)}
}

func copyCustomizations(customizations map[string]string) map[string]string {
	if len(customizations) == 0 {
		return nil
	}
	cp := make(map[string]string, len(customizations))
	for k, v := range customizations {
		cp[k] = v
	}
	return cp
}

// AddItem merges the candidate into an existing line with the same item id and
// customization set, or appends a new line. A quantity below 1 is clamped to 1,
// so the call always succeeds.
func (c *Cart) AddItem(candidate Line) {
	qty := candidate.Quantity
	if qty < 1 {
		qty = 1
	}

	k := keyOf(candidate.ItemID, candidate.Customizations)
	if existing, ok := c.index[k]; ok {
		existing.Quantity += qty
		return
	}

	line := &Line{
		ItemID:         candidate.ItemID,
		Name:           candidate.Name,
		UnitPrice:      candidate.UnitPrice,
		Quantity:       qty,
		RestaurantID:   candidate.RestaurantID,
		Customizations: copyCustomizations(candidate.Customizations),
	}
	c.lines = append(c.lines, line)
	c.index[k] = line
}

// RemoveItem deletes the line matching the full (item id, customization set)
// key. Removing a line that does not exist is a no-op.
func (c *Cart) RemoveItem(itemID string, customizations map[string]string) {
	k := keyOf(itemID, customizations)
	if _, ok := c.index[k]; !ok {
		return
	}

	delete(c.index, k)
	for i, line := range c.lines {
		if line.ItemID == itemID && fingerprint(line.Customizations) == k.fingerprint {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// IncreaseQuantity bumps the matching line's quantity by one. No-op if no line
// matches.
func (c *Cart) IncreaseQuantity(itemID string, customizations map[string]string) {
	if line, ok := c.index[keyOf(itemID, customizations)]; ok {
		line.Quantity++
	}
}

// DecreaseQuantity lowers the matching line's quantity by one, never below 1.
// Deleting a line takes an explicit RemoveItem call. No-op if no line matches.
func (c *Cart) DecreaseQuantity(itemID string, customizations map[string]string) {
	if line, ok := c.index[keyOf(itemID, customizations)]; ok && line.Quantity > 1 {
		line.Quantity--
	}
}

// SetQuantity sets the matching line's quantity directly. A quantity of zero or
// less removes the line. No-op if no line matches.
func (c *Cart) SetQuantity(itemID string, customizations map[string]string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID, customizations)
		return
	}
	if line, ok := c.index[keyOf(itemID, customizations)]; ok {
		line.Quantity = quantity
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[lineKey]*Line)
}

// Lines returns a snapshot of the cart in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		cp := *line
		cp.Customizations = copyCustomizations(line.Customizations)
		out = append(out, cp)
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// RestaurantID returns the restaurant the cart currently belongs to, or ""
// for an empty cart. All lines are expected to share one restaurant; that is
// enforced by the layer accepting adds, not here.
func (c *Cart) RestaurantID() string {
	if len(c.lines) == 0 {
		return ""
	}
	return c.lines[0].RestaurantID
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}
