package dto

import "time"

// CreateInboundRequest entrada para crear un documento de entrada.
type CreateInboundRequest struct {
	ProductID   string    `json:"product_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,min=1,max=999999"`
	Supplier    string    `json:"supplier" validate:"required,min=1,max=100"`
	InboundDate time.Time `json:"inbound_date"`
	Remark      string    `json:"remark" validate:"max=500"`
}

// CreateOutboundRequest entrada para crear un documento de salida.
type CreateOutboundRequest struct {
	ProductID     string    `json:"product_id" validate:"required"`
	Quantity      int       `json:"quantity" validate:"required,min=1,max=999999"`
	Receiver      string    `json:"receiver" validate:"required,min=1,max=100"`
	ReceiverPhone string    `json:"receiver_phone" validate:"max=20"`
	OutboundDate  time.Time `json:"outbound_date"`
	Remark        string    `json:"remark" validate:"max=500"`
}

// UpdateOrderRequest entrada para modificar un documento pendiente.
type UpdateOrderRequest struct {
	ProductID         string    `json:"product_id" validate:"required"`
	Quantity          int       `json:"quantity" validate:"required,min=1,max=999999"`
	Counterparty      string    `json:"counterparty" validate:"required,min=1,max=100"`
	CounterpartyPhone string    `json:"counterparty_phone" validate:"max=20"`
	MovementDate      time.Time `json:"movement_date"`
	Remark            string    `json:"remark" validate:"max=500"`
}

// OrderResponse salida de un documento con datos del producto.
type OrderResponse struct {
	ID                string     `json:"id"`
	DocumentNumber    string     `json:"document_number"`
	Type              string     `json:"type"`
	ProductID         string     `json:"product_id"`
	ProductName       string     `json:"product_name,omitempty"`
	ProductSKU        string     `json:"product_sku,omitempty"`
	Quantity          int        `json:"quantity"`
	Counterparty      string     `json:"counterparty"`
	CounterpartyPhone string     `json:"counterparty_phone,omitempty"`
	MovementDate      time.Time  `json:"movement_date"`
	Status            int        `json:"status"`
	StatusDesc        string     `json:"status_desc"`
	Remark            string     `json:"remark"`
	CreatedBy         string     `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
}

// OrderListResponse lista paginada de documentos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
