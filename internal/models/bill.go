package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillCustomer mirrors the bill_customers table.
type BillCustomer struct {
	CustomerID string     `db:"customer_id"`
	Name       string     `db:"name"`
	Mobile     string     `db:"mobile"`
	Address    string     `db:"address"`
	CreatedAt  time.Time  `db:"created_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

// Bill mirrors the bills table. BillNumber comes from a sequence default.
type Bill struct {
	BillID         string          `db:"bill_id"`
	BillNumber     int64           `db:"bill_number"`
	CustomerID     string          `db:"customer_id"`
	CustomerName   string          `db:"customer_name"`
	Date           time.Time       `db:"bill_date"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	PaymentMethod  string          `db:"payment_method"`
	CreatedAt      time.Time       `db:"created_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

// BillItem mirrors the bill_items table.
type BillItem struct {
	ItemID      string          `db:"item_id"`
	BillID      string          `db:"bill_id"`
	ProductName string          `db:"product_name"`
	Quantity    decimal.Decimal `db:"quantity"`
	Rate        decimal.Decimal `db:"rate"`
	Amount      decimal.Decimal `db:"amount"`
}

// BillSettings mirrors the bill_settings singleton table.
type BillSettings struct {
	SettingsID     string `db:"settings_id"`
	CompanyName    string `db:"company_name"`
	CompanyAddress string `db:"company_address"`
	CompanyMobile  string `db:"company_mobile"`
	CompanyEmail   string `db:"company_email"`
	CompanyGST     string `db:"company_gst"`
	FooterMessage  string `db:"footer_message"`
}
