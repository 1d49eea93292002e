package dto

// CreateInvoiceRequest represents the request payload for creating an invoice
type CreateInvoiceRequest struct {
	ProjectID     string  `json:"projectId" binding:"required"`
	InvoiceNumber string  `json:"invoiceNumber" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	IssuedDate    string  `json:"issuedDate" binding:"required"` // "2006-01-02"
	DueDate       string  `json:"dueDate" binding:"required"`
	Notes         string  `json:"notes"`
}

// UpdateInvoiceRequest represents the request payload for editing an invoice
type UpdateInvoiceRequest struct {
	InvoiceNumber string  `json:"invoiceNumber" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Status        string  `json:"status" binding:"required,oneof=draft sent paid overdue"`
	IssuedDate    string  `json:"issuedDate" binding:"required"`
	DueDate       string  `json:"dueDate" binding:"required"`
	PaidDate      string  `json:"paidDate"`
	Notes         string  `json:"notes"`
}

// CreatePayableRequest represents the request payload for creating a payable
type CreatePayableRequest struct {
	VendorName string  `json:"vendorName" binding:"required"`
	ProjectID  *string `json:"projectId"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Category   string  `json:"category"`
	DueDate    string  `json:"dueDate" binding:"required"`
	Notes      string  `json:"notes"`
}

// UpdatePayableRequest represents the request payload for editing a payable
type UpdatePayableRequest struct {
	VendorName string  `json:"vendorName" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Status     string  `json:"status" binding:"required,oneof=pending paid"`
	Category   string  `json:"category"`
	DueDate    string  `json:"dueDate" binding:"required"`
	PaidDate   string  `json:"paidDate"`
	Notes      string  `json:"notes"`
}
