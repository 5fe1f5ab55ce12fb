package tracking

import (
	"errors"
	"fmt"
)

// Category is the canonical three-value status taxonomy exposed to callers,
// regardless of how many raw status strings a storage kind uses internally.
type Category string

const (
	CategoryPending   Category = "pending"
	CategoryActive    Category = "active"
	CategoryCompleted Category = "completed"
)

func (c Category) String() string {
	return string(c)
}

// ErrUnmappedStatus is returned when a raw status value has no entry in the
// classification table for its kind. An unmapped value is a defect in the
// table, not a condition to default silently; silent defaulting previously
// hid statuses that never rendered correctly.
var ErrUnmappedStatus = errors.New("unmapped raw status")

// StatusInfo is the classification of one raw status value: its canonical
// category and the label shown to users.
type StatusInfo struct {
	Category Category
	Label    string
}

var statusTables = map[Kind]map[string]StatusInfo{
	KindRepairTicket: {
		"intake":            {CategoryPending, "Received"},
		"diagnosing":        {CategoryActive, "Being diagnosed"},
		"awaiting_customer": {CategoryActive, "Awaiting customer approval"},
		"converted":         {CategoryCompleted, "Converted to work order"},
		"closed":            {CategoryCompleted, "Closed"},
	},
	KindWarrantyTicket: {
		"received":     {CategoryPending, "Received"},
		"under_review": {CategoryActive, "Under review"},
		"approved":     {CategoryActive, "Approved"},
		"converted":    {CategoryCompleted, "Converted to warranty work order"},
		"rejected":     {CategoryCompleted, "Rejected"},
	},
	KindWorkOrder: {
		"open":          {CategoryPending, "Open"},
		"in_progress":   {CategoryActive, "In progress"},
		"waiting_parts": {CategoryActive, "Waiting for parts"},
		"quality_check": {CategoryActive, "Quality check"},
		"completed":     {CategoryCompleted, "Completed"},
		"delivered":     {CategoryCompleted, "Delivered"},
	},
	KindWarrantyWorkOrder: {
		"open":          {CategoryPending, "Open"},
		"in_progress":   {CategoryActive, "In progress"},
		"parts_ordered": {CategoryActive, "Parts ordered"},
		"completed":     {CategoryCompleted, "Completed"},
		"returned":      {CategoryCompleted, "Returned to customer"},
	},
	KindQuote: {
		"draft":    {CategoryPending, "Draft"},
		"sent":     {CategoryActive, "Sent"},
		"viewed":   {CategoryActive, "Viewed"},
		"accepted": {CategoryCompleted, "Accepted"},
		"rejected": {CategoryCompleted, "Rejected"},
		"expired":  {CategoryCompleted, "Expired"},
	},
}

// Classify maps a (kind, raw status) pair to its canonical category and
// display label. The mapping is total per kind: every raw value that exists
// in storage must classify, and a miss surfaces as ErrUnmappedStatus.
func Classify(kind Kind, rawStatus string) (StatusInfo, error) {
	table, ok := statusTables[kind]
	if !ok {
		return StatusInfo{}, fmt.Errorf("%w: unknown kind %s", ErrUnmappedStatus, kind)
	}
	info, ok := table[rawStatus]
	if !ok {
		return StatusInfo{}, fmt.Errorf("%w: %s/%s", ErrUnmappedStatus, kind, rawStatus)
	}
	return info, nil
}

// RawStatuses returns every raw status value the table knows for a kind.
// Used by exhaustiveness checks that walk the aggregates' status constants.
func RawStatuses(kind Kind) []string {
	table := statusTables[kind]
	out := make([]string, 0, len(table))
	for raw := range table {
		out = append(out, raw)
	}
	return out
}
