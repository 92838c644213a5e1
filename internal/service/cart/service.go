package cart

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pos-catalog/internal/domain"
)

type Service struct {
	repo cartRepo
	now  func() time.Time
}

type cartRepo interface {
	Cart() []domain.CartEntry
	AddToCart(productID string) bool
	RemoveFromCart(productID string) bool
	SetQuantity(productID string, quantity float64) bool
	RemoveItemCompletely(productID string) bool
	Checkout() []domain.CartEntry
	Cancel()
}

func New(repo cartRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

type UpdateAction struct {
	Action    string   `json:"action"`
	ProductID string   `json:"productId,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
}

const (
	actionAdd         = "addlineitem"
	actionRemove      = "removelineitem"
	actionChangeQty   = "changelineitemquantity"
	actionRemoveWhole = "removeitem"
)

func (s *Service) Get() domain.CartSummary {
	return summarize(s.repo.Cart())
}

// Update applies the actions in order. Every action is checked before the
// first one is applied, so a malformed batch leaves the cart untouched.
// Actions on unknown products are no-ops.
func (s *Service) Update(in UpdateInput) (domain.CartSummary, error) {
	if len(in.Actions) == 0 {
		return domain.CartSummary{}, &domain.ValidationError{Field: "actions", Message: "actions required"}
	}
	for _, action := range in.Actions {
		if err := validateAction(action); err != nil {
			return domain.CartSummary{}, err
		}
	}

	for _, action := range in.Actions {
		productID := strings.TrimSpace(action.ProductID)
		switch normalize(action.Action) {
		case actionAdd:
			s.repo.AddToCart(productID)
		case actionRemove:
			s.repo.RemoveFromCart(productID)
		case actionChangeQty:
			s.repo.SetQuantity(productID, *action.Quantity)
		case actionRemoveWhole:
			s.repo.RemoveItemCompletely(productID)
		}
	}
	return s.Get(), nil
}

// Checkout sells everything in the cart and returns the receipt.
func (s *Service) Checkout() domain.Receipt {
	summary := summarize(s.repo.Checkout())
	return domain.Receipt{
		Lines:        summary.Lines,
		TotalPrice:   summary.TotalPrice,
		CheckedOutAt: s.now().UTC(),
	}
}

func (s *Service) Cancel() domain.CartSummary {
	s.repo.Cancel()
	return s.Get()
}

func validateAction(action UpdateAction) error {
	switch normalize(action.Action) {
	case actionAdd, actionRemove, actionRemoveWhole:
	case actionChangeQty:
		if action.Quantity == nil {
			return &domain.ValidationError{Field: "quantity", Message: "quantity required"}
		}
	default:
		return &domain.ValidationError{Field: "action", Message: "unsupported action"}
	}
	if strings.TrimSpace(action.ProductID) == "" {
		return &domain.ValidationError{Field: "productId", Message: "productId required"}
	}
	return nil
}

func normalize(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}

func summarize(entries []domain.CartEntry) domain.CartSummary {
	lines := make([]domain.CartLine, 0, len(entries))
	total := decimal.Zero
	quantity := decimal.Zero
	for _, e := range entries {
		unitPrice := decimal.NewFromFloat(e.Price)
		qty := decimal.NewFromFloat(e.Quantity)
		lineTotal := unitPrice.Mul(qty)
		total = total.Add(lineTotal)
		quantity = quantity.Add(qty)
		lines = append(lines, domain.CartLine{
			ProductID:  e.ProductID,
			Name:       e.Name,
			UnitType:   e.UnitType,
			Quantity:   e.Quantity,
			UnitPrice:  unitPrice.StringFixed(2),
			TotalPrice: lineTotal.StringFixed(2),
		})
	}
	return domain.CartSummary{
		Lines:         lines,
		TotalQuantity: quantity.InexactFloat64(),
		TotalPrice:    total.StringFixed(2),
	}
}
