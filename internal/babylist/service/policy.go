package service

import (
	"strconv"

	"babylist/internal/babylist/models"
	"babylist/pkg/requestcontext"
)

// buyPolicy decides who may buy from a list and which items show a cart button.
type buyPolicy struct {
	closed        bool
	isListUser    bool
	showAdminInfo bool
	inStore       bool
}

func newBuyPolicy(reg *models.Registry, viewer requestcontext.ViewerInfo, cardNumber string, store *models.Store) buyPolicy {
	isListUser := viewer.ListCode != "" && viewer.ListCode == reg.ID
	return buyPolicy{
		closed:        reg.IsClosed,
		isListUser:    isListUser,
		showAdminInfo: isListUser || (cardNumber != "" && cardNumber == reg.CardNumber),
		inStore:       store != nil && store.AllowPurchase,
	}
}

// canBuyFromList is false for closed lists, for the owner, on the owner's
// admin view, and when the list's shop does not allow online purchases.
func (p buyPolicy) canBuyFromList() bool {
	return !p.closed && !p.isListUser && !p.showAdminInfo && p.inStore
}

func (p buyPolicy) hideAddToCart(item models.Item) bool {
	switch {
	case item.Reserved:
		return true
	case !p.canBuyFromList() || item.AvailableQty == 0:
		return true
	case item.HasCatalogMatch && (!item.AvailableOnline || !item.VisibleOnline):
		return true
	case !item.UnitPrice.IsPositive():
		return true
	}
	return false
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
