package infra

// Packing-slip generation with go-pdf/fpdf: A5 slip with reference header,
// customer block, item table and totals row.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MichaelOwusu007/vdlpro/internal/model"

	"github.com/go-pdf/fpdf"
)

// GeneratePackingSlip writes an A5 packing slip for the shipment into
// storagePath (created if needed) and returns the file path.
func GeneratePackingSlip(s *model.Shipment, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("slip_%s.pdf", s.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// Header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Packing Slip", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Reference: "+s.Reference, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Customer block
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, s.CustomerName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if s.CustomerAddress != "" {
		pdf.CellFormat(contentW, 4, s.CustomerAddress, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 4, s.CreatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// Item table
	col1 := contentW * 0.46 // product
	col2 := contentW * 0.18 // sku
	col3 := contentW * 0.12 // qty
	col4 := contentW * 0.24 // weight

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "SKU", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 5, "Weight", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range s.Items {
		name := item.Name
		if len(name) > 28 {
			name = name[:27] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, item.SKU, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, fmt.Sprintf("x%d", item.Qty), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 5, fmt.Sprintf("%.2f kg", item.WeightKg), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// Totals
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "Total weight:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3+col4, 6, fmt.Sprintf("%.2f kg", s.WeightKg), "", 1, "R", false, 0, "")
	if s.Carrier != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(col1+col2, 5, "Carrier:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3+col4, 5, s.Carrier, "", 1, "R", false, 0, "")
	}
	if s.TrackingID != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(col1+col2, 5, "Tracking:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3+col4, 5, s.TrackingID, "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
