package records

// WriteStyle selects how a verification write reaches the upstream API.
// Sellers use a /{id}/verify sub-resource; the other kinds take a direct PUT
// carrying isVerified/status fields. Both occur upstream and both are kept.
type WriteStyle string

const (
	WriteVerifySubresource WriteStyle = "verify_subresource"
	WriteDirectPut         WriteStyle = "direct_put"
)

// KindSpec describes one collection: where it lives upstream, which fields
// free-text search covers, how writes are shaped, and which status buckets
// the console tabs map to.
type KindSpec struct {
	Kind          Kind
	Path          string // relative to the upstream base URL
	Searchable    []string
	WriteStyle    WriteStyle
	Inspectable   bool // carries the Scheduled->Completed/Failed sub-lifecycle
	DefaultStatus Status
	Tabs          map[string][]Status

	// BackupKey enables the disaster-recovery snapshot for this collection.
	// Companion timestamp lives under BackupKey+"_timestamp".
	BackupKey string
}

var kindSpecs = map[Kind]KindSpec{
	KindSeller: {
		Kind:          KindSeller,
		Path:          "/sellers",
		Searchable:    []string{"name", "email", "phone", "farmingType", "location"},
		WriteStyle:    WriteVerifySubresource,
		Inspectable:   true,
		DefaultStatus: StatusPending,
		Tabs: map[string][]Status{
			"pending":   {StatusPending},
			"approved":  {StatusApproved},
			"rejected":  {StatusRejected},
			"scheduled": {StatusScheduled, StatusCompleted, StatusFailed},
		},
		BackupKey: "freshconnect_sellers_backup",
	},
	KindHotel: {
		Kind:          KindHotel,
		Path:          "/hotels",
		Searchable:    []string{"name", "email", "phone", "address", "ownerName"},
		WriteStyle:    WriteDirectPut,
		Inspectable:   true,
		DefaultStatus: StatusPending,
		Tabs: map[string][]Status{
			"pending":   {StatusPending},
			"approved":  {StatusApproved},
			"rejected":  {StatusRejected},
			"scheduled": {StatusScheduled, StatusCompleted, StatusFailed},
		},
	},
	KindComplaint: {
		Kind:          KindComplaint,
		Path:          "/complaints",
		Searchable:    []string{"subject", "description", "customerName", "againstName"},
		WriteStyle:    WriteDirectPut,
		DefaultStatus: StatusOpen,
		Tabs: map[string][]Status{
			"open":        {StatusOpen},
			"in_progress": {StatusInProgress},
			"resolved":    {StatusResolved},
			"closed":      {StatusClosed},
		},
	},
	KindPayment: {
		Kind:          KindPayment,
		Path:          "/payments",
		Searchable:    []string{"orderId", "sellerName", "method", "reference"},
		WriteStyle:    WriteDirectPut,
		DefaultStatus: StatusPending,
		Tabs: map[string][]Status{
			"pending":  {StatusPending},
			"approved": {StatusApproved},
			"rejected": {StatusRejected},
		},
	},
	KindReport: {
		Kind:          KindReport,
		Path:          "/reports",
		Searchable:    []string{"title", "category", "generatedBy"},
		WriteStyle:    WriteDirectPut,
		DefaultStatus: StatusPending,
		Tabs: map[string][]Status{
			"pending":  {StatusPending},
			"approved": {StatusApproved},
		},
	},
}

func SpecFor(k Kind) (KindSpec, bool) {
	s, ok := kindSpecs[k]
	return s, ok
}

func Kinds() []Kind {
	return []Kind{KindSeller, KindHotel, KindComplaint, KindPayment, KindReport}
}

// ParseKind maps a URL collection segment to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "sellers":
		return KindSeller, true
	case "hotels":
		return KindHotel, true
	case "complaints":
		return KindComplaint, true
	case "payments":
		return KindPayment, true
	case "reports":
		return KindReport, true
	}
	return "", false
}
