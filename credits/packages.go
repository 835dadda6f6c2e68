package credits

import "fmt"

// Package is a purchasable bundle of credits. Prices are in rupees.
type Package struct {
	Credits int
	Price   int
	Popular bool
}

// PerCredit returns the price of one credit with two decimals.
func (p Package) PerCredit() string {
	return fmt.Sprintf("%.2f", float64(p.Price)/float64(p.Credits))
}

// PriceLabel returns the price with the currency sign.
func (p Package) PriceLabel() string {
	return fmt.Sprintf("₹%d", p.Price)
}

var packages = [][]Package{
	{
		{Credits: 100, Price: 99},
		{Credits: 500, Price: 449, Popular: true},
		{Credits: 1000, Price: 799},
	},
	{
		{Credits: 2500, Price: 1799},
		{Credits: 5000, Price: 3299},
	},
}

// Rows returns the package table as displayed, one slice per row.
func Rows() [][]Package {
	r := make([][]Package, len(packages))
	for i, row := range packages {
		r[i] = append([]Package(nil), row...)
	}
	return r
}

// Packages returns every package in display order.
func Packages() []Package {
	var r []Package
	for _, row := range packages {
		r = append(r, row...)
	}
	return r
}

// Find returns the package with the given number of credits.
func Find(credits int) (Package, bool) {
	for _, row := range packages {
		for _, p := range row {
			if p.Credits == credits {
				return p, true
			}
		}
	}
	return Package{}, false
}
