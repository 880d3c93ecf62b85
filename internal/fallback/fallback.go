// Package fallback holds the hand-authored sample datasets substituted when
// the upstream cannot produce usable data. Shapes mirror the canonical record
// exactly, so the pipeline and rendering never know the data is not live.
package fallback

import (
	"time"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"
)

// Provide returns the sample dataset for a kind. Every call returns fresh
// copies; callers may mutate the result freely.
func Provide(kind records.Kind) []records.Record {
	return records.CloneAll(datasets[kind])
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

var datasets = map[records.Kind][]records.Record{
	records.KindSeller: {
		{
			ID: "smp-seller-1", DisplayID: "SEL-2026-0a11f2", Kind: records.KindSeller,
			Status: records.StatusPending, CreatedAt: day("2026-03-12"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"name": "Ravi Kumar Farms", "email": "ravi@greensprout.example", "phone": "+91 98450 11223",
				"farmingType": "organic", "location": "Mysuru",
				"documents": map[string]any{"landRecord": true, "idProof": true, "organicCert": false},
				"rating":    float64(4.2),
			},
		},
		{
			ID: "smp-seller-2", DisplayID: "SEL-2026-1b22e3", Kind: records.KindSeller,
			Status: records.StatusApproved, CreatedAt: day("2026-02-02"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"name": "Sunrise Dairy Collective", "email": "ops@sunrisedairy.example", "phone": "+91 99880 44556",
				"farmingType": "dairy", "location": "Hassan",
				"documents": map[string]any{"landRecord": true, "idProof": true, "fssai": true},
				"rating":    float64(4.7),
			},
		},
		{
			ID: "smp-seller-3", DisplayID: "SEL-2025-2c33d4", Kind: records.KindSeller,
			Status: records.StatusScheduled, CreatedAt: day("2025-11-20"), WriteState: records.WriteCommitted,
			Notes:  "Field inspection booked for the coming week.",
			Fields: map[string]any{
				"name": "Coastal Greens", "email": "hello@coastalgreens.example", "phone": "+91 97312 77889",
				"farmingType": "hydroponic", "location": "Udupi",
				"documents": map[string]any{"landRecord": false, "idProof": true},
				"rating":    float64(3.9),
			},
		},
	},
	records.KindHotel: {
		{
			ID: "smp-hotel-1", DisplayID: "HTL-2026-3d44c5", Kind: records.KindHotel,
			Status: records.StatusPending, CreatedAt: day("2026-04-01"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"name": "Hotel Annapoorna", "email": "purchase@annapoorna.example", "phone": "+91 80 2334 5566",
				"address": "MG Road, Bengaluru", "ownerName": "S. Prakash", "licenseNumber": "KA-HTL-88321",
			},
		},
		{
			ID: "smp-hotel-2", DisplayID: "HTL-2026-4e55b6", Kind: records.KindHotel,
			Status: records.StatusApproved, CreatedAt: day("2026-01-18"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"name": "Green Leaf Restaurant", "email": "kitchen@greenleaf.example", "phone": "+91 80 4114 9900",
				"address": "Jayanagar, Bengaluru", "ownerName": "Meena Rao", "licenseNumber": "KA-RST-10294",
			},
		},
	},
	records.KindComplaint: {
		{
			ID: "smp-complaint-1", DisplayID: "CMP-2026-5f66a7", Kind: records.KindComplaint,
			Status: records.StatusOpen, CreatedAt: day("2026-05-10"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"subject": "Wilted spinach delivered", "description": "Half the crate arrived wilted.",
				"customerName": "Hotel Annapoorna", "againstName": "Coastal Greens",
				"priority": "high", "assignedTo": "",
			},
		},
		{
			ID: "smp-complaint-2", DisplayID: "CMP-2026-6a77f8", Kind: records.KindComplaint,
			Status: records.StatusInProgress, CreatedAt: day("2026-05-08"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"subject": "Late payment settlement", "description": "Payout delayed past the 7-day window.",
				"customerName": "Sunrise Dairy Collective", "againstName": "FreshConnect Payments",
				"priority": "medium", "assignedTo": "anita",
			},
		},
		{
			ID: "smp-complaint-3", DisplayID: "CMP-2026-7b8809", Kind: records.KindComplaint,
			Status: records.StatusResolved, CreatedAt: day("2026-04-27"), WriteState: records.WriteCommitted,
			Notes:  "Replacement crate shipped, credit issued.",
			Fields: map[string]any{
				"subject": "Wrong tomato grade", "description": "Ordered grade A, received grade B.",
				"customerName": "Green Leaf Restaurant", "againstName": "Ravi Kumar Farms",
				"priority": "low", "assignedTo": "vikram",
			},
		},
	},
	records.KindPayment: {
		{
			ID: "smp-payment-1", DisplayID: "PAY-2026-8c991a", Kind: records.KindPayment,
			Status: records.StatusPending, CreatedAt: day("2026-05-12"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"orderId": "ord-20113", "sellerName": "Ravi Kumar Farms",
				"amount": float64(12450), "currency": "INR", "method": "upi", "reference": "UPI-99183321",
			},
		},
		{
			ID: "smp-payment-2", DisplayID: "PAY-2026-9daa2b", Kind: records.KindPayment,
			Status: records.StatusApproved, CreatedAt: day("2026-05-05"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"orderId": "ord-19887", "sellerName": "Sunrise Dairy Collective",
				"amount": float64(38200), "currency": "INR", "method": "bank_transfer", "reference": "NEFT-55002211",
			},
		},
	},
	records.KindReport: {
		{
			ID: "smp-report-1", DisplayID: "RPT-2026-aebb3c", Kind: records.KindReport,
			Status: records.StatusApproved, CreatedAt: day("2026-05-01"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"title": "April settlement summary", "category": "finance", "generatedBy": "system",
				"totalOrders": float64(1843), "totalRevenue": float64(2219400),
			},
		},
		{
			ID: "smp-report-2", DisplayID: "RPT-2026-bfcc4d", Kind: records.KindReport,
			Status: records.StatusPending, CreatedAt: day("2026-05-15"), WriteState: records.WriteCommitted,
			Fields: map[string]any{
				"title": "Seller onboarding funnel", "category": "operations", "generatedBy": "anita",
				"totalOrders": float64(0), "totalRevenue": float64(0),
			},
		},
	},
}
