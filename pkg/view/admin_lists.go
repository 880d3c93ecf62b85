package view

import "github.com/Amanpatel30/Fresh-Connect-sub000/internal/records"

// ListPage is the envelope every admin list endpoint returns. Source tells
// the console whether it is looking at live, backup or sample data.
type ListPage struct {
	Items      any    `json:"items"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Source     string `json:"source"`
}

type SellerListItem struct {
	ID          string          `json:"id"`
	DisplayID   string          `json:"display_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	FarmingType string          `json:"farming_type"`
	Location    string          `json:"location"`
	Documents   map[string]bool `json:"documents"`
	Rating      float64         `json:"rating"`
	Status      string          `json:"status"`
	WriteState  string          `json:"write_state"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

func SellerItem(r records.Record) SellerListItem {
	return SellerListItem{
		ID:          r.ID,
		DisplayID:   r.DisplayID,
		Name:        str(r, "name"),
		Email:       str(r, "email"),
		Phone:       str(r, "phone"),
		FarmingType: str(r, "farmingType"),
		Location:    str(r, "location"),
		Documents:   boolMap(r, "documents"),
		Rating:      num(r, "rating"),
		Status:      string(r.Status),
		WriteState:  string(r.WriteState),
		Notes:       r.Notes,
		CreatedAt:   FormatDate(r.CreatedAt),
	}
}

type HotelListItem struct {
	ID            string `json:"id"`
	DisplayID     string `json:"display_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	OwnerName     string `json:"owner_name"`
	LicenseNumber string `json:"license_number"`
	Status        string `json:"status"`
	WriteState    string `json:"write_state"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func HotelItem(r records.Record) HotelListItem {
	return HotelListItem{
		ID:            r.ID,
		DisplayID:     r.DisplayID,
		Name:          str(r, "name"),
		Email:         str(r, "email"),
		Phone:         str(r, "phone"),
		Address:       str(r, "address"),
		OwnerName:     str(r, "ownerName"),
		LicenseNumber: str(r, "licenseNumber"),
		Status:        string(r.Status),
		WriteState:    string(r.WriteState),
		Notes:         r.Notes,
		CreatedAt:     FormatDate(r.CreatedAt),
	}
}

type ComplaintListItem struct {
	ID           string `json:"id"`
	DisplayID    string `json:"display_id"`
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	CustomerName string `json:"customer_name"`
	AgainstName  string `json:"against_name"`
	Priority     string `json:"priority"`
	AssignedTo   string `json:"assigned_to"`
	Status       string `json:"status"`
	WriteState   string `json:"write_state"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func ComplaintItem(r records.Record) ComplaintListItem {
	return ComplaintListItem{
		ID:           r.ID,
		DisplayID:    r.DisplayID,
		Subject:      str(r, "subject"),
		Description:  str(r, "description"),
		CustomerName: str(r, "customerName"),
		AgainstName:  str(r, "againstName"),
		Priority:     str(r, "priority"),
		AssignedTo:   str(r, "assignedTo"),
		Status:       string(r.Status),
		WriteState:   string(r.WriteState),
		Notes:        r.Notes,
		CreatedAt:    FormatDate(r.CreatedAt),
	}
}

type PaymentListItem struct {
	ID         string `json:"id"`
	DisplayID  string `json:"display_id"`
	OrderID    string `json:"order_id"`
	SellerName string `json:"seller_name"`
	Amount     string `json:"amount"`
	Method     string `json:"method"`
	Reference  string `json:"reference"`
	Status     string `json:"status"`
	WriteState string `json:"write_state"`
	CreatedAt  string `json:"created_at"`
}

func PaymentItem(r records.Record) PaymentListItem {
	return PaymentListItem{
		ID:         r.ID,
		DisplayID:  r.DisplayID,
		OrderID:    str(r, "orderId"),
		SellerName: str(r, "sellerName"),
		Amount:     Money(num(r, "amount"), str(r, "currency")),
		Method:     str(r, "method"),
		Reference:  str(r, "reference"),
		Status:     string(r.Status),
		WriteState: string(r.WriteState),
		CreatedAt:  FormatDate(r.CreatedAt),
	}
}

type ReportListItem struct {
	ID           string `json:"id"`
	DisplayID    string `json:"display_id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	GeneratedBy  string `json:"generated_by"`
	TotalOrders  int    `json:"total_orders"`
	TotalRevenue string `json:"total_revenue"`
	Status       string `json:"status"`
	WriteState   string `json:"write_state"`
	CreatedAt    string `json:"created_at"`
}

func ReportItem(r records.Record) ReportListItem {
	return ReportListItem{
		ID:           r.ID,
		DisplayID:    r.DisplayID,
		Title:        str(r, "title"),
		Category:     str(r, "category"),
		GeneratedBy:  str(r, "generatedBy"),
		TotalOrders:  int(num(r, "totalOrders")),
		TotalRevenue: Money(num(r, "totalRevenue"), "INR"),
		Status:       string(r.Status),
		WriteState:   string(r.WriteState),
		CreatedAt:    FormatDate(r.CreatedAt),
	}
}
