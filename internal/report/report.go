// Package report renders normalized mod records into an Excel workbook.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/model"
)

const (
	defaultSheetName = "Mods"
	// Column where the unique categories side panel is placed (K by default).
	defaultCategoriesColumn = 11
	// Fixed height for data rows so large Detail cells don't auto-expand.
	defaultRowHeight = 15.0

	tableName  = "ModsTable"
	tableStyle = "TableStyleMedium9"
)

// headers is the fixed column set, left to right.
var headers = []string{
	"Mod Name",
	"Description",
	"Detail",
	"Category",
	"Links",
	"File Name",
	"Updated At",
}

// columnWidths holds the fixed width per header column, in order.
var columnWidths = []float64{30, 50, 60, 30, 15, 40, 20}

const categoriesColumnWidth = 25.0

// Option configures a Builder.
type Option func(*Builder)

// WithSheetName overrides the worksheet name. Default: "Mods".
func WithSheetName(name string) Option {
	return func(b *Builder) { b.sheet = name }
}

// WithCategoriesColumn sets the 1-based column of the categories side panel.
// Default: 11 (column K).
func WithCategoriesColumn(col int) Option {
	return func(b *Builder) { b.categoriesCol = col }
}

// WithRowHeight sets the fixed data row height. Default: 15.
func WithRowHeight(height float64) Option {
	return func(b *Builder) { b.rowHeight = height }
}

// Builder assembles the report workbook. Construct with New; zero value is
// not usable.
type Builder struct {
	sheet         string
	categoriesCol int
	rowHeight     float64
}

// New creates a Builder with the given options applied over the defaults.
func New(opts ...Option) *Builder {
	b := &Builder{
		sheet:         defaultSheetName,
		categoriesCol: defaultCategoriesColumn,
		rowHeight:     defaultRowHeight,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Filename returns the report file name for a modpack version, following the
// fixed "Mods {version}.xlsx" convention. An empty version becomes "Unknown".
func Filename(version string) string {
	if version == "" {
		version = "Unknown"
	}
	return fmt.Sprintf("Mods %s.xlsx", version)
}

// Build renders the records and the category index into a workbook. Records
// are written in input order, one row each; categories fill the side panel in
// the order given. The caller owns closing the returned file.
func (b *Builder) Build(records []model.Record, categories []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", b.sheet); err != nil {
		return nil, fmt.Errorf("report: rename sheet: %w", err)
	}
	if err := f.SetPanes(b.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("report: freeze panes: %w", err)
	}

	for col, header := range headers {
		if err := f.SetCellValue(b.sheet, cell(col+1, 1), header); err != nil {
			return nil, fmt.Errorf("report: write header: %w", err)
		}
	}

	linkStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "1265BE", Underline: "single"},
	})
	if err != nil {
		return nil, fmt.Errorf("report: link style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("report: wrap style: %w", err)
	}

	for i, rec := range records {
		row := i + 2
		if err := b.writeRow(f, row, rec, linkStyle); err != nil {
			return nil, err
		}
		if err := f.SetRowHeight(b.sheet, row, b.rowHeight); err != nil {
			return nil, fmt.Errorf("report: row height: %w", err)
		}
	}

	if len(records) > 0 {
		lastRow := 1 + len(records)
		// Wrapped columns: Description, Detail, Category. Combined with the
		// fixed row height this clips long text instead of growing the row.
		if err := f.SetCellStyle(b.sheet, cell(2, 2), cell(4, lastRow), wrapStyle); err != nil {
			return nil, fmt.Errorf("report: wrap columns: %w", err)
		}
		stripes := true
		if err := f.AddTable(b.sheet, &excelize.Table{
			Range:          "A1:" + cell(len(headers), lastRow),
			Name:           tableName,
			StyleName:      tableStyle,
			ShowRowStripes: &stripes,
		}); err != nil {
			return nil, fmt.Errorf("report: add table: %w", err)
		}
	}

	for i, width := range columnWidths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(b.sheet, name, name, width); err != nil {
			return nil, fmt.Errorf("report: column width: %w", err)
		}
	}

	if err := b.writeCategories(f, categories); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteFile builds the workbook and saves it to path.
func (b *Builder) WriteFile(path string, records []model.Record, categories []string) error {
	f, err := b.Build(records, categories)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// writeRow writes one record at the given worksheet row.
func (b *Builder) writeRow(f *excelize.File, row int, rec model.Record, linkStyle int) error {
	values := []string{
		rec.ModName,
		rec.Description,
		rec.Detail,
		strings.Join(rec.Categories, ";"),
		rec.LinkText,
		rec.FileName,
		rec.UpdatedAt,
	}
	for col, value := range values {
		if err := f.SetCellValue(b.sheet, cell(col+1, row), value); err != nil {
			return fmt.Errorf("report: write row %d: %w", row, err)
		}
	}

	if rec.LinkURL != "" {
		linkCell := cell(5, row)
		if err := f.SetCellHyperLink(b.sheet, linkCell, rec.LinkURL, "External"); err != nil {
			return fmt.Errorf("report: hyperlink row %d: %w", row, err)
		}
		if err := f.SetCellStyle(b.sheet, linkCell, linkCell, linkStyle); err != nil {
			return fmt.Errorf("report: hyperlink style row %d: %w", row, err)
		}
	}
	return nil
}

// writeCategories fills the side panel to the right of the table: a header
// cell, then one unique category per row in first-appearance order.
func (b *Builder) writeCategories(f *excelize.File, categories []string) error {
	if err := f.SetCellValue(b.sheet, cell(b.categoriesCol, 1), "Categories"); err != nil {
		return fmt.Errorf("report: categories header: %w", err)
	}
	for i, category := range categories {
		if err := f.SetCellValue(b.sheet, cell(b.categoriesCol, i+2), category); err != nil {
			return fmt.Errorf("report: categories panel: %w", err)
		}
	}
	name, _ := excelize.ColumnNumberToName(b.categoriesCol)
	if err := f.SetColWidth(b.sheet, name, name, categoriesColumnWidth); err != nil {
		return fmt.Errorf("report: categories width: %w", err)
	}
	return nil
}

// cell returns the A1-style reference for 1-based coordinates. Coordinates
// here are always positive, so the conversion cannot fail.
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
