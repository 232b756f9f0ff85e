// Package payguide decides when the cross-border payment guide is shown.
package payguide

import "aihub/internal/model"

// ShouldShow reports whether the payment guide should render for a service
// accepting methods. A domestic rail (mir or sbp) makes the guide redundant;
// an empty set still shows it.
func ShouldShow(methods []model.PaymentMethod) bool {
	for _, m := range methods {
		if m.Domestic() {
			return false
		}
	}
	return true
}
