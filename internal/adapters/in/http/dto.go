package http

import (
	"time"

	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/model/quote"

	"github.com/shopspring/decimal"
)

// Request bodies.

type createQuoteRequest struct {
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	DropoffAddress string `json:"dropoff_address"`
	DumpsterSize   string `json:"dumpster_size"`
	Message        string `json:"message"`
}

type updateQuoteStatusRequest struct {
	Status string `json:"status"`
}

type promoteQuoteRequest struct {
	Services []serviceSelectionRequest `json:"services"`
	Priority string                    `json:"priority"`

	QuotedPrice           *decimal.Decimal `json:"quoted_price"`
	ScheduledDeliveryDate *time.Time       `json:"scheduled_delivery_date"`
	ScheduledPickupDate   *time.Time       `json:"scheduled_pickup_date"`
}

type serviceSelectionRequest struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type moveOrderRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type updateOrderDetailsRequest struct {
	AssignedTo            *string          `json:"assigned_to"`
	ScheduledDeliveryDate *time.Time       `json:"scheduled_delivery_date"`
	ScheduledPickupDate   *time.Time       `json:"scheduled_pickup_date"`
	FinalPrice            *decimal.Decimal `json:"final_price"`
}

type adjustLineDescriptionRequest struct {
	Description string `json:"description"`
}

type assignDumpsterRequest struct {
	OrderID string `json:"order_id"`
}

type notifyOrderRequest struct {
	Status     string             `json:"status"`
	Attachment *attachmentRequest `json:"attachment"`
}

type attachmentRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

type invoiceWebhookRequest struct {
	EventType     string `json:"eventType"`
	EventID       string `json:"eventId"`
	OrderNumber   string `json:"orderNumber"`
	InvoiceStatus string `json:"invoiceStatus"`
}

// Response bodies.

type quoteResponse struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	CustomerPhone  string    `json:"customer_phone"`
	DropoffAddress string    `json:"dropoff_address"`
	DumpsterSize   string    `json:"dumpster_size"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newQuoteResponse(q *quote.Quote) quoteResponse {
	return quoteResponse{
		ID:             q.ID().String(),
		CustomerName:   q.CustomerName(),
		CustomerEmail:  q.CustomerEmail(),
		CustomerPhone:  q.CustomerPhone(),
		DropoffAddress: q.DropoffAddress(),
		DumpsterSize:   q.DumpsterSize(),
		Message:        q.Message(),
		Status:         string(q.Status()),
		CreatedAt:      q.CreatedAt(),
		UpdatedAt:      q.UpdatedAt(),
	}
}

type orderResponse struct {
	ID                        string           `json:"id"`
	QuoteID                   *string          `json:"quote_id"`
	OrderNumber               string           `json:"order_number"`
	CustomerName              string           `json:"customer_name"`
	CustomerEmail             string           `json:"customer_email"`
	CustomerPhone             string           `json:"customer_phone"`
	Address                   string           `json:"address"`
	Status                    string           `json:"status"`
	Priority                  string           `json:"priority"`
	QuotedPrice               decimal.Decimal  `json:"quoted_price"`
	FinalPrice                *decimal.Decimal `json:"final_price"`
	AssignedTo                *string          `json:"assigned_to"`
	ScheduledDeliveryDate     *time.Time       `json:"scheduled_delivery_date"`
	ScheduledPickupDate       *time.Time       `json:"scheduled_pickup_date"`
	ActualDeliveryDate        *time.Time       `json:"actual_delivery_date"`
	ActualPickupDate          *time.Time       `json:"actual_pickup_date"`
	CompletedAt               *time.Time       `json:"completed_at"`
	CompletedWithDumpsterID   *string          `json:"completed_with_dumpster_id"`
	CompletedWithDumpsterName *string          `json:"completed_with_dumpster_name"`
	InvoiceStatus             string           `json:"invoice_status"`
	Lines                     []lineResponse   `json:"lines"`
	CreatedAt                 time.Time        `json:"created_at"`
}

type lineResponse struct {
	ID                 string          `json:"id"`
	ServiceID          string          `json:"service_id"`
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	InvoiceDescription *string         `json:"invoice_description"`
}

func newOrderResponse(o *order.Order) orderResponse {
	resp := orderResponse{
		ID:                        o.ID().String(),
		OrderNumber:               o.OrderNumber(),
		CustomerName:              o.CustomerName(),
		CustomerEmail:             o.CustomerEmail(),
		CustomerPhone:             o.CustomerPhone(),
		Address:                   o.Address(),
		Status:                    string(o.Status()),
		Priority:                  string(o.Priority()),
		QuotedPrice:               o.QuotedPrice(),
		FinalPrice:                o.FinalPrice(),
		AssignedTo:                o.AssignedTo(),
		ScheduledDeliveryDate:     o.ScheduledDeliveryDate(),
		ScheduledPickupDate:       o.ScheduledPickupDate(),
		ActualDeliveryDate:        o.ActualDeliveryDate(),
		ActualPickupDate:          o.ActualPickupDate(),
		CompletedAt:               o.CompletedAt(),
		CompletedWithDumpsterName: o.CompletedWithDumpsterName(),
		InvoiceStatus:             o.InvoiceStatus(),
		CreatedAt:                 o.CreatedAt(),
	}

	if quoteID := o.QuoteID(); quoteID != nil {
		s := quoteID.String()
		resp.QuoteID = &s
	}
	if dumpsterID := o.CompletedWithDumpsterID(); dumpsterID != nil {
		s := dumpsterID.String()
		resp.CompletedWithDumpsterID = &s
	}

	for _, l := range o.Lines() {
		resp.Lines = append(resp.Lines, lineResponse{
			ID:                 l.ID().String(),
			ServiceID:          l.ServiceID().String(),
			Name:               l.Name(),
			Quantity:           l.Quantity(),
			UnitPrice:          l.UnitPrice(),
			TotalPrice:         l.TotalPrice(),
			InvoiceDescription: l.InvoiceDescription(),
		})
	}

	return resp
}

// statusChangeResponse wraps an order mutation outcome, including the
// asset-bookkeeping side of a completion. release_pending is true when the
// order write stands but the dumpster free is still queued for retry.
type statusChangeResponse struct {
	Order           orderResponse `json:"order"`
	FreedDumpsterID *string       `json:"freed_dumpster_id,omitempty"`
	ReleasePending  bool          `json:"release_pending,omitempty"`
	ReleaseError    string        `json:"release_error,omitempty"`
}

type notifyResponse struct {
	Sent     bool   `json:"sent"`
	Template string `json:"template,omitempty"`
}

type webhookResponse struct {
	Handled bool `json:"handled"`
}
