package infra

// pdf.go: sale receipt rendering with go-pdf/fpdf.
// Layout mirrors the on-screen invoice:
//   - Shop name and address header
//   - Sale id, date and customer (or the walk-in placeholder)
//   - Item table (product, qty, unit price, line total)
//   - Subtotal, discount %, VAT %, bold total
//   - Thank-you footer

import (
	"bytes"
	_ "embed"
	"fmt"

	"sobanhang/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ShopInfo is printed in the receipt header.
type ShopInfo struct {
	Name    string
	Address string
}

// Core PDF fonts are cp1252 and cannot carry Vietnamese, so receipts embed a
// UTF-8 TrueType face.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

const receiptFont = "DejaVu"

// GenerateReceiptPDF renders sale as an A5 receipt and returns the PDF bytes.
func GenerateReceiptPDF(sale *model.Sale, shop ShopInfo) ([]byte, error) {
	return renderReceipt(sale, shop, true)
}

func renderReceipt(sale *model.Sale, shop ShopInfo, compress bool) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetCompression(compress)
	pdf.AddUTF8FontFromBytes(receiptFont, "", fontRegular)
	pdf.AddUTF8FontFromBytes(receiptFont, "B", fontBold)
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont(receiptFont, "B", 14)
	pdf.CellFormat(contentW, 8, "Hoá Đơn Bán Hàng", "", 1, "C", false, 0, "")
	pdf.SetFont(receiptFont, "B", 10)
	pdf.CellFormat(contentW, 5, shop.Name, "", 1, "L", false, 0, "")
	pdf.SetFont(receiptFont, "", 8)
	pdf.CellFormat(contentW, 4, shop.Address, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Sale info ─────────────────────────────────────────────────────────────
	customer := sale.CustomerName
	if customer == "" {
		customer = model.WalkInCustomerName
	}
	pdf.SetFont(receiptFont, "", 9)
	pdf.CellFormat(contentW, 5, "Mã HĐ: "+sale.ID, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Ngày: "+sale.Date.Local().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Khách hàng: "+customer, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Items ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.44
	col2 := contentW * 0.12
	col3 := contentW * 0.22
	col4 := contentW * 0.22

	pdf.SetFont(receiptFont, "B", 8)
	pdf.CellFormat(col1, 6, "Sản phẩm", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "SL", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Đơn giá", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Thành tiền", "B", 1, "R", false, 0, "")

	pdf.SetFont(receiptFont, "", 8)
	for _, item := range sale.Items {
		name := []rune(item.ProductName)
		if len(name) > 28 {
			name = append(name[:27], '.')
		}
		pdf.CellFormat(col1, 5, string(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, money(item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, money(item.LineTotal()), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	labelW := col1 + col2 + col3
	pdf.SetFont(receiptFont, "", 9)
	pdf.CellFormat(labelW, 5, "Tạm tính:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, money(sale.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 5, "Chiết khấu:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, sale.Discount.String()+"%", "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 5, "VAT:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, sale.VAT.String()+"%", "", 1, "R", false, 0, "")

	pdf.SetFont(receiptFont, "B", 11)
	pdf.CellFormat(labelW, 7, "Tổng cộng:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, money(sale.Total), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont(receiptFont, "", 9)
	pdf.CellFormat(contentW, 5, "Cảm ơn quý khách!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt %s: %w", sale.ID, err)
	}
	return buf.Bytes(), nil
}

// money formats an amount in whole đồng.
func money(d decimal.Decimal) string {
	return d.Round(0).String() + " d"
}
