package credits

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPackages(t *testing.T) {
	rows := Rows()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 2)

	var popular []int
	for _, p := range Packages() {
		if p.Popular {
			popular = append(popular, p.Credits)
		}
	}
	assert.Equal(t, []int{500}, popular)

	p, ok := Find(2500)
	require.True(t, ok)
	assert.Equal(t, 1799, p.Price)
	assert.Equal(t, "0.72", p.PerCredit())
	assert.Equal(t, "₹1799", p.PriceLabel())

	p, _ = Find(100)
	assert.Equal(t, "0.99", p.PerCredit())

	_, ok = Find(7)
	assert.False(t, ok)

	rows[0][0].Price = 1
	p, _ = Find(100)
	assert.Equal(t, 99, p.Price)
}

func TestModal(t *testing.T) {
	var m Modal
	assert.False(t, m.CanPay())
	assert.Equal(t, "Select a Package", m.PayLabel())

	require.True(t, m.Select(1000))
	assert.True(t, m.CanPay())
	assert.Equal(t, "Pay ₹799", m.PayLabel())
	assert.Equal(t, 1000, m.SelectedCredits())
	p, _ := Find(1000)
	assert.True(t, m.IsSelected(p))

	m.Close()
	assert.False(t, m.CanPay())
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Zero(t, m.SelectedCredits())

	m.Select(500)
	assert.False(t, m.Select(3))
	assert.Equal(t, "Select a Package", m.PayLabel())
}

func TestPurchaseLeavesBalance(t *testing.T) {
	var seen []int
	p := NewPurchaser(zap.NewNop(), func(pkg Package) { seen = append(seen, pkg.Credits) })
	s := NewMemoryStore(map[string]string{CreditsKey: "40"})

	r, err := p.Purchase(context.Background(), s, PurchaseRequest{Credits: 500})
	require.NoError(t, err)
	assert.Equal(t, 40, r.Balance)
	assert.Equal(t, 449, r.Package.Price)
	assert.NotEqual(t, [16]byte{}, [16]byte(r.ID))
	assert.Equal(t, 40, Balance(s))
	assert.Equal(t, []int{500}, seen)

	_, err = p.Purchase(context.Background(), s, PurchaseRequest{Credits: 123})
	assert.True(t, errors.Is(err, ErrUnknownPackage))
	_, err = p.Purchase(context.Background(), s, PurchaseRequest{})
	assert.True(t, errors.Is(err, ErrUnknownPackage))
	assert.Equal(t, []int{500}, seen)
}
