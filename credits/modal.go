package credits

// Modal is the state of the purchase dialog.
type Modal struct {
	selected *Package
}

// Select selects the package with the given credits. Unknown amounts clear
// the selection and report false.
func (m *Modal) Select(credits int) bool {
	p, ok := Find(credits)
	if !ok {
		m.selected = nil
		return false
	}
	m.selected = &p
	return true
}

// Close dismisses the dialog and clears the selection.
func (m *Modal) Close() {
	m.selected = nil
}

// Selected returns the selected package.
func (m *Modal) Selected() (Package, bool) {
	if m.selected == nil {
		return Package{}, false
	}
	return *m.selected, true
}

// IsSelected reports whether p is the selected package.
func (m *Modal) IsSelected(p Package) bool {
	return m.selected != nil && m.selected.Credits == p.Credits
}

// CanPay reports whether the pay button is enabled.
func (m *Modal) CanPay() bool {
	return m.selected != nil
}

// PayLabel returns the text of the pay button.
func (m *Modal) PayLabel() string {
	if m.selected == nil {
		return "Select a Package"
	}
	return "Pay " + m.selected.PriceLabel()
}

// SelectedCredits returns the credits of the selected package, or 0.
func (m *Modal) SelectedCredits() int {
	if m.selected == nil {
		return 0
	}
	return m.selected.Credits
}
