package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillCustomer is an invoicing customer. Separate from Shopkeeper: the bill
// book is its own CRUD domain with soft delete on bills only.
type BillCustomer struct {
	CustomerID string     `json:"customerID"`
	Name       string     `json:"name"`
	Mobile     string     `json:"mobile,omitempty"`
	Address    string     `json:"address,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
}

// Bill is an invoice header. BillNumber is assigned by the database from a
// sequence at insert time.
type Bill struct {
	BillID         string          `json:"billID"`
	BillNumber     int64           `json:"billNumber"`
	CustomerID     string          `json:"customerID,omitempty"` // Nullable for walk-in customers
	CustomerName   string          `json:"customerName"`
	Date           time.Time       `json:"date"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	Items          []BillItem      `json:"items"`
	CreatedAt      time.Time       `json:"createdAt"`
	DeletedAt      *time.Time      `json:"deletedAt,omitempty"`
}

// BillItem is a single line on a bill. Rows are owned by the bill and are
// removed with it (FK ON DELETE CASCADE).
type BillItem struct {
	ItemID      string          `json:"itemID"`
	BillID      string          `json:"billID"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// BillSettings is the singleton row holding the letterhead printed on
// generated invoices.
type BillSettings struct {
	SettingsID     string `json:"settingsID"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress,omitempty"`
	CompanyMobile  string `json:"companyMobile,omitempty"`
	CompanyEmail   string `json:"companyEmail,omitempty"`
	CompanyGST     string `json:"companyGST,omitempty"`
	FooterMessage  string `json:"footerMessage,omitempty"`
}
