package credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownPackage is returned for a request naming no package in the table.
var ErrUnknownPackage = errors.New("unknown package")

// PurchaseRequest is the form posted by the pay button.
type PurchaseRequest struct {
	Credits int `form:"credits" validate:"required,oneof=100 500 1000 2500 5000"`
}

// Receipt describes a purchase intent. No payment is taken, so Balance is
// always the balance before the request.
type Receipt struct {
	ID      uuid.UUID
	Package Package
	Balance int
}

// Purchaser records purchase intents.
type Purchaser struct {
	logger   *zap.Logger
	validate *validator.Validate
	observe  func(Package)
}

// NewPurchaser returns a Purchaser logging to logger. observe, if not nil,
// is called for every accepted request.
func NewPurchaser(logger *zap.Logger, observe func(Package)) *Purchaser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Purchaser{logger: logger, validate: validator.New(), observe: observe}
}

// Purchase validates req and records the intent. The store is read but never written.
func (p *Purchaser) Purchase(ctx context.Context, s Store, req PurchaseRequest) (*Receipt, error) {
	err := p.validate.StructCtx(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("Purchase: %w: %v", ErrUnknownPackage, err)
	}
	pkg, ok := Find(req.Credits)
	if !ok {
		return nil, fmt.Errorf("Purchase: %w: %d credits", ErrUnknownPackage, req.Credits)
	}
	r := &Receipt{ID: uuid.New(), Package: pkg, Balance: Balance(s)}
	p.logger.Info("purchase intent",
		zap.String("intent", r.ID.String()),
		zap.Int("credits", pkg.Credits),
		zap.Int("price", pkg.Price),
		zap.Int("balance", r.Balance))
	if p.observe != nil {
		p.observe(pkg)
	}
	return r, nil
}
