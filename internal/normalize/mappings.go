package normalize

import "github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"

// fieldMapping: ordered candidate source keys for one canonical field.
// Keys are dotted paths into the raw record; first defined value wins,
// def applies when none are present.
type fieldMapping struct {
	canonical string
	sources   []string
	def       any
}

type kindMapping struct {
	idSources      []string
	createdSources []string
	notesSources   []string

	// status signals in precedence order: explicit rejected flag beats
	// explicit verified flag beats free-text status beats the kind default.
	rejectedFlags []string
	verifiedFlags []string
	statusText    []string
	statusWords   map[string]records.Status

	fields []fieldMapping
}

var verificationWords = map[string]records.Status{
	"pending":   records.StatusPending,
	"approved":  records.StatusApproved,
	"verified":  records.StatusApproved,
	"active":    records.StatusApproved,
	"rejected":  records.StatusRejected,
	"declined":  records.StatusRejected,
	"scheduled": records.StatusScheduled,
	"completed": records.StatusCompleted,
	"failed":    records.StatusFailed,
}

var complaintWords = map[string]records.Status{
	"open":         records.StatusOpen,
	"new":          records.StatusOpen,
	"in progress":  records.StatusInProgress,
	"in_progress":  records.StatusInProgress,
	"inprogress":   records.StatusInProgress,
	"under_review": records.StatusInProgress,
	"resolved":     records.StatusResolved,
	"closed":       records.StatusClosed,
}

var kindMappings = map[records.Kind]kindMapping{
	records.KindSeller: {
		idSources:      []string{"_id", "id", "sellerId"},
		createdSources: []string{"createdAt", "created_at", "date", "registeredAt"},
		notesSources:   []string{"verificationNotes", "notes"},
		rejectedFlags:  []string{"verificationRejected", "isRejected"},
		verifiedFlags:  []string{"isVerified", "verified"},
		statusText:     []string{"verificationStatus", "status"},
		statusWords:    verificationWords,
		fields: []fieldMapping{
			{canonical: "name", sources: []string{"name", "sellerName", "user.name"}, def: "Unknown Seller"},
			{canonical: "email", sources: []string{"email", "user.email", "contact.email"}, def: ""},
			{canonical: "phone", sources: []string{"phone", "phoneNumber", "contact.phone"}, def: ""},
			{canonical: "farmingType", sources: []string{"farmingType", "farming_type", "farmType"}, def: "general"},
			{canonical: "location", sources: []string{"location", "address.city", "address"}, def: ""},
			{canonical: "documents", sources: []string{"documents", "docs"}, def: map[string]any{}},
			{canonical: "rating", sources: []string{"rating", "avgRating"}, def: float64(0)},
		},
	},
	records.KindHotel: {
		idSources:      []string{"_id", "id", "hotelId"},
		createdSources: []string{"createdAt", "created_at", "date"},
		notesSources:   []string{"verificationNotes", "notes"},
		rejectedFlags:  []string{"verificationRejected", "isRejected"},
		verifiedFlags:  []string{"isVerified", "verified"},
		statusText:     []string{"verificationStatus", "status"},
		statusWords:    verificationWords,
		fields: []fieldMapping{
			{canonical: "name", sources: []string{"name", "hotelName", "businessName"}, def: "Unknown Hotel"},
			{canonical: "email", sources: []string{"email", "owner.email", "contact.email"}, def: ""},
			{canonical: "phone", sources: []string{"phone", "phoneNumber", "contact.phone"}, def: ""},
			{canonical: "address", sources: []string{"address", "location.address", "location"}, def: ""},
			{canonical: "ownerName", sources: []string{"ownerName", "owner.name"}, def: ""},
			{canonical: "licenseNumber", sources: []string{"licenseNumber", "license"}, def: ""},
		},
	},
	records.KindComplaint: {
		idSources:      []string{"_id", "id", "complaintId"},
		createdSources: []string{"createdAt", "created_at", "date", "filedAt"},
		notesSources:   []string{"resolution", "notes"},
		statusText:     []string{"status", "state"},
		statusWords:    complaintWords,
		fields: []fieldMapping{
			{canonical: "subject", sources: []string{"subject", "title", "reason"}, def: "No subject"},
			{canonical: "description", sources: []string{"description", "details", "body"}, def: ""},
			{canonical: "customerName", sources: []string{"customerName", "customer.name", "user.name"}, def: "Anonymous"},
			{canonical: "againstName", sources: []string{"againstName", "seller.name", "hotel.name", "against"}, def: ""},
			{canonical: "priority", sources: []string{"priority", "severity"}, def: "medium"},
			{canonical: "assignedTo", sources: []string{"assignedTo", "assignee", "handler.name"}, def: ""},
		},
	},
	records.KindPayment: {
		idSources:      []string{"_id", "id", "paymentId", "transactionId"},
		createdSources: []string{"createdAt", "created_at", "date", "paidAt"},
		notesSources:   []string{"notes"},
		rejectedFlags:  []string{"isRejected", "declined"},
		verifiedFlags:  []string{"isVerified", "settled"},
		statusText:     []string{"status", "paymentStatus"},
		statusWords:    verificationWords,
		fields: []fieldMapping{
			{canonical: "orderId", sources: []string{"orderId", "order._id", "order.id"}, def: ""},
			{canonical: "sellerName", sources: []string{"sellerName", "seller.name"}, def: ""},
			{canonical: "amount", sources: []string{"amount", "totalAmount", "total"}, def: float64(0)},
			{canonical: "currency", sources: []string{"currency"}, def: "INR"},
			{canonical: "method", sources: []string{"method", "paymentMethod"}, def: "unknown"},
			{canonical: "reference", sources: []string{"reference", "transactionRef", "ref"}, def: ""},
		},
	},
	records.KindReport: {
		idSources:      []string{"_id", "id", "reportId"},
		createdSources: []string{"createdAt", "created_at", "date", "generatedAt"},
		notesSources:   []string{"notes"},
		verifiedFlags:  []string{"isApproved"},
		statusText:     []string{"status"},
		statusWords:    verificationWords,
		fields: []fieldMapping{
			{canonical: "title", sources: []string{"title", "name"}, def: "Untitled report"},
			{canonical: "category", sources: []string{"category", "type"}, def: "general"},
			{canonical: "generatedBy", sources: []string{"generatedBy", "author", "user.name"}, def: "system"},
			{canonical: "totalOrders", sources: []string{"totalOrders", "stats.orders"}, def: float64(0)},
			{canonical: "totalRevenue", sources: []string{"totalRevenue", "stats.revenue"}, def: float64(0)},
		},
	},
}

var displayPrefix = map[records.Kind]string{
	records.KindSeller:    "SEL",
	records.KindHotel:     "HTL",
	records.KindComplaint: "CMP",
	records.KindPayment:   "PAY",
	records.KindReport:    "RPT",
}
