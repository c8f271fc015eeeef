package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

func newTestReceiptExtractor() *ReceiptExtractor {
	return NewReceiptExtractor(NewLineClassifier(ClassifierConfig{}), false)
}

func TestReceiptExtract_Basic(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("BANANAS 1.29\nTAX 0.08\nGRAND TOTAL 15.43\n")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(result.Items))
	}
	item := result.Items[0]
	if item.Name != "BANANAS" {
		t.Errorf("name = %q, want BANANAS", item.Name)
	}
	if !item.UnitPrice.Equal(decimal.RequireFromString("1.29")) {
		t.Errorf("price = %s, want 1.29", item.UnitPrice)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}

	if got := result.Totals[domain.TotalTax]; !got.Equal(decimal.RequireFromString("0.08")) {
		t.Errorf("tax = %s, want 0.08", got)
	}
	if got := result.Totals[domain.TotalGrandTotal]; !got.Equal(decimal.RequireFromString("15.43")) {
		t.Errorf("grand total = %s, want 15.43", got)
	}
}

func TestReceiptExtract_EmptyInput(t *testing.T) {
	e := newTestReceiptExtractor()

	for _, text := range []string{"", "   ", "\n\n"} {
		_, err := e.Extract(text)
		if !errors.Is(err, domain.ErrEmptyInput) {
			t.Errorf("Extract(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestReceiptExtract_ZeroItemsIsNotAnError(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("THANK YOU FOR SHOPPING\nHAVE A NICE DAY")
	if err != nil {
		t.Fatalf("Extract() error = %v, want nil", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("items = %d, want 0", len(result.Items))
	}
}

func TestReceiptExtract_PromotionAndNegativeLinesExcluded(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("BANANAS 1.29\nPROMOTION BOGO 1.29\nMEMBER SAVINGS -0.50\n-1.00")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1 (promo/negative lines must not become items)", len(result.Items))
	}
	if len(result.Totals) != 0 {
		t.Errorf("totals = %v, want empty", result.Totals)
	}
}

func TestReceiptExtract_ShortNamesRejected(t *testing.T) {
	e := newTestReceiptExtractor()

	// "OJ" and "EGG" are at or below the minimum length; only the full name
	// survives.
	result, err := e.Extract("OJ 3.49\nEGG 2.19\nORANGE JUICE 3.49")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(result.Items))
	}
	if result.Items[0].Name != "ORANGE JUICE" {
		t.Errorf("name = %q, want ORANGE JUICE", result.Items[0].Name)
	}
}

func TestReceiptExtract_DuplicatesKept(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("MILK 3.89\nMILK 3.89")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(result.Items) != 2 {
		t.Errorf("items = %d, want 2 (no deduplication)", len(result.Items))
	}
}

func TestReceiptExtract_FirstTotalsMatchWins(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("TAX 0.08\nTAX 0.99\nGRAND TOTAL 15.43\nGRAND TOTAL 99.99")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if got := result.Totals[domain.TotalTax]; !got.Equal(decimal.RequireFromString("0.08")) {
		t.Errorf("tax = %s, want first match 0.08", got)
	}
	if got := result.Totals[domain.TotalGrandTotal]; !got.Equal(decimal.RequireFromString("15.43")) {
		t.Errorf("grand total = %s, want first match 15.43", got)
	}
}

func TestReceiptExtract_GrandTotalPrecedence(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("GRAND TOTAL 15.43\nORDER TOTAL 15.00")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	authoritative, ok := result.Totals.Authoritative()
	if !ok {
		t.Fatal("Authoritative() found nothing")
	}
	if !authoritative.Equal(decimal.RequireFromString("15.43")) {
		t.Errorf("authoritative total = %s, want grand total 15.43", authoritative)
	}
	// order_total stays separately available
	if got := result.Totals[domain.TotalOrderTotal]; !got.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("order total = %s, want 15.00", got)
	}
}

func TestReceiptExtract_WhitespaceDecimalArtifact(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("GROUND TURKEY 6 49")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(result.Items))
	}
	if !result.Items[0].UnitPrice.Equal(decimal.RequireFromString("6.49")) {
		t.Errorf("price = %s, want 6.49", result.Items[0].UnitPrice)
	}
	if result.Items[0].Name != "GROUND TURKEY" {
		t.Errorf("name = %q, want GROUND TURKEY", result.Items[0].Name)
	}
}

func TestReceiptExtract_SubtotalCaptured(t *testing.T) {
	e := newTestReceiptExtractor()

	result, err := e.Extract("SUBTOTAL 14.31\nTAX 1.12\nGRAND TOTAL 15.43")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if got := result.Totals[domain.TotalSubtotal]; !got.Equal(decimal.RequireFromString("14.31")) {
		t.Errorf("subtotal = %s, want 14.31", got)
	}
}
