package service

import (
	"fmt"
	"log"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/pkg/printer"
)

// PackingSlipService formats warehouse packing slips and sends them to the
// fulfillment printer. With no printer configured it degrades to a no-op.
type PackingSlipService struct {
	printer     printer.Printer
	printerType string
}

// NewPackingSlipService creates a new packing slip service
func NewPackingSlipService(p printer.Printer, printerType string) *PackingSlipService {
	return &PackingSlipService{
		printer:     p,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status
func (s *PackingSlipService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintPackingSlip formats and prints the pick list for an order
func (s *PackingSlipService) PrintPackingSlip(order *entity.Order) error {
	data := FormatPackingSlip(order)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", order.OrderNumber, err)
		return fmt.Errorf("failed to print packing slip: %w", err)
	}
	return nil
}

// FormatPackingSlip converts an order into ESC/POS bytes for the warehouse
func FormatPackingSlip(order *entity.Order) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("PACKING SLIP").
		SetFontSize(printer.FontNormal).
		SetBold(false)

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Order:", order.OrderNumber).
		KeyValue("Date:", order.CreatedAt.Format("2006-01-02 15:04"))

	doc.Separator('-')

	for _, item := range order.Items {
		doc.ItemLine(item.Quantity, item.ProductName, item.SKU)
	}

	doc.Separator('-')

	// Ship-to block
	addr := order.ShippingAddress
	doc.SetBold(true).Text("SHIP TO").SetBold(false).
		Text(addr.FullName).
		Text(addr.Line1)
	if addr.Line2 != "" {
		doc.Text(addr.Line2)
	}
	doc.TextF("%s, %s %s", addr.City, addr.State, addr.PostalCode).
		Text(addr.Country)
	if addr.Phone != "" {
		doc.Text(addr.Phone)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
