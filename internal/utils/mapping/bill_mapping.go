package mapping

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/models"
)

// ToModelBill converts a domain Bill header to a model Bill.
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:         d.BillID,
		BillNumber:     d.BillNumber,
		CustomerID:     d.CustomerID,
		CustomerName:   d.CustomerName,
		Date:           d.Date,
		Subtotal:       d.Subtotal,
		DiscountAmount: d.DiscountAmount,
		TaxAmount:      d.TaxAmount,
		TotalAmount:    d.TotalAmount,
		PaidAmount:     d.PaidAmount,
		PaymentMethod:  d.PaymentMethod,
		CreatedAt:      d.CreatedAt,
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainBill converts a model Bill header to a domain Bill without items.
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:         m.BillID,
		BillNumber:     m.BillNumber,
		CustomerID:     m.CustomerID,
		CustomerName:   m.CustomerName,
		Date:           m.Date,
		Subtotal:       m.Subtotal,
		DiscountAmount: m.DiscountAmount,
		TaxAmount:      m.TaxAmount,
		TotalAmount:    m.TotalAmount,
		PaidAmount:     m.PaidAmount,
		PaymentMethod:  m.PaymentMethod,
		CreatedAt:      m.CreatedAt,
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainBillItem converts a model BillItem to a domain BillItem.
func ToDomainBillItem(m models.BillItem) domain.BillItem {
	return domain.BillItem{
		ItemID:      m.ItemID,
		BillID:      m.BillID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Rate:        m.Rate,
		Amount:      m.Amount,
	}
}

// ToDomainBillCustomer converts a model BillCustomer to a domain BillCustomer.
func ToDomainBillCustomer(m models.BillCustomer) domain.BillCustomer {
	return domain.BillCustomer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Mobile:     m.Mobile,
		Address:    m.Address,
		CreatedAt:  m.CreatedAt,
		DeletedAt:  m.DeletedAt,
	}
}

// ToDomainBillSettings converts a model BillSettings to a domain BillSettings.
func ToDomainBillSettings(m models.BillSettings) domain.BillSettings {
	return domain.BillSettings{
		SettingsID:     m.SettingsID,
		CompanyName:    m.CompanyName,
		CompanyAddress: m.CompanyAddress,
		CompanyMobile:  m.CompanyMobile,
		CompanyEmail:   m.CompanyEmail,
		CompanyGST:     m.CompanyGST,
		FooterMessage:  m.FooterMessage,
	}
}
