package tracking

import "fmt"

// Kind identifies which of the five trackable record types an item is.
type Kind string

const (
	KindRepairTicket      Kind = "repair_ticket"
	KindWarrantyTicket    Kind = "warranty_ticket"
	KindWorkOrder         Kind = "work_order"
	KindWarrantyWorkOrder Kind = "warranty_work_order"
	KindQuote             Kind = "quote"
)

var validKinds = map[Kind]bool{
	KindRepairTicket:      true,
	KindWarrantyTicket:    true,
	KindWorkOrder:         true,
	KindWarrantyWorkOrder: true,
	KindQuote:             true,
}

// kindPrefixes maps each kind to its tracking-number prefix.
var kindPrefixes = map[Kind]string{
	KindRepairTicket:      "TK",
	KindWarrantyTicket:    "WTK",
	KindWorkOrder:         "WO",
	KindWarrantyWorkOrder: "WWO",
	KindQuote:             "QT",
}

var prefixKinds = map[string]Kind{
	"TK":  KindRepairTicket,
	"WTK": KindWarrantyTicket,
	"WO":  KindWorkOrder,
	"WWO": KindWarrantyWorkOrder,
	"QT":  KindQuote,
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

// Prefix returns the tracking-number prefix for the kind.
func (k Kind) Prefix() string {
	return kindPrefixes[k]
}

func (k Kind) IsTicket() bool {
	return k == KindRepairTicket || k == KindWarrantyTicket
}

func (k Kind) IsWorkOrder() bool {
	return k == KindWorkOrder || k == KindWarrantyWorkOrder
}

// ConversionTargetKind returns the work-order kind a ticket of this kind
// converts into. Repair tickets convert to work orders and warranty tickets
// to warranty work orders; cross-kind conversions are never valid.
func (k Kind) ConversionTargetKind() (Kind, error) {
	switch k {
	case KindRepairTicket:
		return KindWorkOrder, nil
	case KindWarrantyTicket:
		return KindWarrantyWorkOrder, nil
	default:
		return "", fmt.Errorf("kind %s has no conversion target", k)
	}
}

// ConversionSourceKind returns the ticket kind that converts into a work
// order of this kind.
func (k Kind) ConversionSourceKind() (Kind, error) {
	switch k {
	case KindWorkOrder:
		return KindRepairTicket, nil
	case KindWarrantyWorkOrder:
		return KindWarrantyTicket, nil
	default:
		return "", fmt.Errorf("kind %s has no conversion source", k)
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid trackable kind: %s", s)
	}
	return k, nil
}
