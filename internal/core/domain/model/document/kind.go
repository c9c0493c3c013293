// Package document defines the export document kinds and the content views
// handed to renderers.
package document

import "exportpro/internal/pkg/errs"

// Kind identifies an export document type.
type Kind string

const (
	KindCommercialInvoice        Kind = "commercial_invoice"
	KindPackingList              Kind = "packing_list"
	KindCertificateOfOrigin      Kind = "certificate_of_origin"
	KindPhytosanitaryCertificate Kind = "phytosanitary_certificate"
)

// AllKinds lists every known document kind in rendering order.
func AllKinds() []Kind {
	return []Kind{
		KindCommercialInvoice,
		KindPackingList,
		KindCertificateOfOrigin,
		KindPhytosanitaryCertificate,
	}
}

// Validate checks the kind against the known set.
func (k Kind) Validate() error {
	switch k {
	case KindCommercialInvoice, KindPackingList, KindCertificateOfOrigin, KindPhytosanitaryCertificate:
		return nil
	}
	return errs.NewValueIsInvalidError("document kind")
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
