package curriculum

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook renders the whole curriculum as an xlsx workbook: one sheet
// per form plus a reference sheet.
func WriteWorkbook(w io.Writer, s *Store) error {
	wb := excelize.NewFile()
	defer wb.Close()

	for i, f := range s.Forms() {
		name := fmt.Sprintf("Form %d", f.Number)
		if i == 0 {
			// The workbook always starts with a default sheet; reuse it.
			if err := wb.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("renaming first sheet: %w", err)
			}
		} else if _, err := wb.NewSheet(name); err != nil {
			return fmt.Errorf("adding sheet %s: %w", name, err)
		}
		if err := writeFormSheet(wb, name, f); err != nil {
			return fmt.Errorf("writing sheet %s: %w", name, err)
		}
	}

	if _, err := wb.NewSheet("Reference"); err != nil {
		return fmt.Errorf("adding reference sheet: %w", err)
	}
	if err := writeReferenceSheet(wb, s.Reference()); err != nil {
		return fmt.Errorf("writing reference sheet: %w", err)
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeFormSheet(wb *excelize.File, sheet string, f Form) error {
	row := 1
	set := func(col string, v any) error {
		return wb.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
	}

	if err := set("A", fmt.Sprintf("Form %d English (%s)", f.Number, f.CEFRLevel)); err != nil {
		return err
	}
	row += 2

	if err := set("A", "Themes"); err != nil {
		return err
	}
	row++
	for _, t := range f.Themes {
		if err := set("A", t); err != nil {
			return err
		}
		row++
	}
	row++

	if err := set("A", "Grammar"); err != nil {
		return err
	}
	row++
	for i, g := range f.Grammar {
		if err := set("A", i+1); err != nil {
			return err
		}
		if err := set("B", g); err != nil {
			return err
		}
		row++
	}
	row++

	if err := set("A", "Vocabulary"); err != nil {
		return err
	}
	row++
	for _, v := range f.Vocabulary {
		if err := set("A", v.Category); err != nil {
			return err
		}
		if err := set("B", strings.Join(v.Words, ", ")); err != nil {
			return err
		}
		row++
	}
	row++

	if err := set("A", "Text Types"); err != nil {
		return err
	}
	row++
	if err := set("A", strings.Join(f.TextTypes, ", ")); err != nil {
		return err
	}
	row += 2

	if err := set("A", "Standards"); err != nil {
		return err
	}
	row++
	for _, blk := range f.Skills {
		if err := set("A", string(blk.Skill)); err != nil {
			return err
		}
		row++
		for _, std := range blk.Standards {
			if err := set("A", std.Code); err != nil {
				return err
			}
			if err := set("B", std.Description); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeReferenceSheet(wb *excelize.File, r Reference) error {
	const sheet = "Reference"
	row := 1
	set := func(col string, v any) error {
		return wb.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
	}

	if err := set("A", "Pupils' Profile"); err != nil {
		return err
	}
	row++
	for _, p := range r.PupilsProfile {
		if err := set("A", p.Name); err != nil {
			return err
		}
		if err := set("B", p.Description); err != nil {
			return err
		}
		row++
	}
	row++

	if err := set("A", "HOTS Levels"); err != nil {
		return err
	}
	row++
	for _, h := range r.HOTSLevels {
		if err := set("A", h.Level); err != nil {
			return err
		}
		if err := set("B", h.Description); err != nil {
			return err
		}
		row++
	}
	row++

	if err := set("A", "Cross-Curricular Elements"); err != nil {
		return err
	}
	row++
	for _, e := range r.CrossCurricular {
		if err := set("A", e); err != nil {
			return err
		}
		row++
	}
	row++

	if err := set("A", "Themes"); err != nil {
		return err
	}
	row++
	for _, t := range r.Themes {
		if err := set("A", t); err != nil {
			return err
		}
		row++
	}
	return nil
}
