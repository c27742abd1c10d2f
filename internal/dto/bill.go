package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillItemRequest is one line on a new bill.
type CreateBillItemRequest struct {
	ProductName string          `json:"productName" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// CreateBillRequest defines the data needed to create a bill. Line amounts
// and the subtotal/total are computed by the service, not trusted from the
// client.
type CreateBillRequest struct {
	CustomerID     string                  `json:"customerID"`
	CustomerName   string                  `json:"customerName" binding:"required"`
	Date           time.Time               `json:"date" binding:"required"`
	Items          []CreateBillItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountAmount decimal.Decimal         `json:"discountAmount"`
	TaxAmount      decimal.Decimal         `json:"taxAmount"`
	PaidAmount     decimal.Decimal         `json:"paidAmount"`
	PaymentMethod  string                  `json:"paymentMethod"`
}

// CreateBillCustomerRequest defines the data needed to create a bill customer.
type CreateBillCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"omitempty,mobilenumber"`
	Address string `json:"address"`
}

// UpdateBillSettingsRequest carries the letterhead fields. All optional;
// omitted fields keep their stored value.
type UpdateBillSettingsRequest struct {
	CompanyName    *string `json:"companyName"`
	CompanyAddress *string `json:"companyAddress"`
	CompanyMobile  *string `json:"companyMobile"`
	CompanyEmail   *string `json:"companyEmail" binding:"omitempty,email"`
	CompanyGST     *string `json:"companyGST"`
	FooterMessage  *string `json:"footerMessage"`
}

// BillItemResponse is the API representation of a bill line.
type BillItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillResponse is the API representation of a bill.
type BillResponse struct {
	BillID         string             `json:"billID"`
	BillNumber     int64              `json:"billNumber"`
	CustomerID     string             `json:"customerID,omitempty"`
	CustomerName   string             `json:"customerName"`
	Date           time.Time          `json:"date"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	TaxAmount      decimal.Decimal    `json:"taxAmount"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	PaidAmount     decimal.Decimal    `json:"paidAmount"`
	PaymentMethod  string             `json:"paymentMethod"`
	Items          []BillItemResponse `json:"items"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// ToBillResponse converts a domain Bill to its response DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	items := make([]BillItemResponse, len(b.Items))
	for i, it := range b.Items {
		items[i] = BillItemResponse{
			ItemID:      it.ItemID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		}
	}
	return BillResponse{
		BillID:         b.BillID,
		BillNumber:     b.BillNumber,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		Date:           b.Date,
		Subtotal:       b.Subtotal,
		DiscountAmount: b.DiscountAmount,
		TaxAmount:      b.TaxAmount,
		TotalAmount:    b.TotalAmount,
		PaidAmount:     b.PaidAmount,
		PaymentMethod:  b.PaymentMethod,
		Items:          items,
		CreatedAt:      b.CreatedAt,
	}
}

// ListBillsResponse wraps the list of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToListBillsResponse converts a slice of domain Bills.
func ToListBillsResponse(bills []domain.Bill) ListBillsResponse {
	resp := make([]BillResponse, len(bills))
	for i := range bills {
		resp[i] = ToBillResponse(&bills[i])
	}
	return ListBillsResponse{Bills: resp}
}

// BillCustomerResponse is the API representation of a bill customer.
type BillCustomerResponse struct {
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToBillCustomerResponse converts a domain BillCustomer to its response DTO.
func ToBillCustomerResponse(c *domain.BillCustomer) BillCustomerResponse {
	return BillCustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Mobile:     c.Mobile,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}

// BillSettingsResponse is the API representation of the letterhead settings.
type BillSettingsResponse struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress,omitempty"`
	CompanyMobile  string `json:"companyMobile,omitempty"`
	CompanyEmail   string `json:"companyEmail,omitempty"`
	CompanyGST     string `json:"companyGST,omitempty"`
	FooterMessage  string `json:"footerMessage,omitempty"`
}

// ToBillSettingsResponse converts domain BillSettings to its response DTO.
func ToBillSettingsResponse(s *domain.BillSettings) BillSettingsResponse {
	return BillSettingsResponse{
		CompanyName:    s.CompanyName,
		CompanyAddress: s.CompanyAddress,
		CompanyMobile:  s.CompanyMobile,
		CompanyEmail:   s.CompanyEmail,
		CompanyGST:     s.CompanyGST,
		FooterMessage:  s.FooterMessage,
	}
}
