package curriculum_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ashrofu/kssm-hub/internal/curriculum"
)

func TestWriteWorkbook(t *testing.T) {
	s := loadStore(t)

	var buf bytes.Buffer
	if err := curriculum.WriteWorkbook(&buf, s); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	wb, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer wb.Close()

	want := []string{"Form 1", "Form 2", "Form 3", "Form 4", "Form 5", "Reference"}
	got := wb.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("sheet[%d] = %q, want %q", i, got[i], name)
		}
	}

	title, err := wb.GetCellValue("Form 1", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if title != "Form 1 English (A2 Mid)" {
		t.Errorf("Form 1 title = %q", title)
	}
}
