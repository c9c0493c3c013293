package services

import (
	"exportpro/internal/core/domain/model/document"
	"exportpro/internal/core/domain/model/order"
)

// RequirementPredicate decides whether an order needs a given document kind.
type RequirementPredicate func(o *order.Order) bool

// RequirementResolver is a domain service that resolves the set of export
// documents an order requires. The invoice and packing list are always
// required; certificate kinds are governed by injectable predicates so that
// destination-specific rules can be plugged in without touching the resolver.
type RequirementResolver struct {
	needsOrigin RequirementPredicate
	needsPhyto  RequirementPredicate
}

// NewRequirementResolver builds a resolver with the default certificate
// rules: certificate of origin always, phytosanitary certificate never.
func NewRequirementResolver() RequirementResolver {
	return RequirementResolver{
		needsOrigin: func(*order.Order) bool { return true },
		needsPhyto:  func(*order.Order) bool { return false },
	}
}

// WithOriginRule replaces the certificate-of-origin predicate.
func (r RequirementResolver) WithOriginRule(p RequirementPredicate) RequirementResolver {
	r.needsOrigin = p
	return r
}

// WithPhytosanitaryRule replaces the phytosanitary-certificate predicate.
func (r RequirementResolver) WithPhytosanitaryRule(p RequirementPredicate) RequirementResolver {
	r.needsPhyto = p
	return r
}

// Resolve returns the required document kinds for the order in a stable
// rendering order.
func (r RequirementResolver) Resolve(o *order.Order) []document.Kind {
	kinds := []document.Kind{
		document.KindCommercialInvoice,
		document.KindPackingList,
	}
	if r.needsOrigin != nil && r.needsOrigin(o) {
		kinds = append(kinds, document.KindCertificateOfOrigin)
	}
	if r.needsPhyto != nil && r.needsPhyto(o) {
		kinds = append(kinds, document.KindPhytosanitaryCertificate)
	}
	return kinds
}
