package xlsexport

import (
	"github.com/xuri/excelize/v2"
	"recruit-backend/models"
)

const (
	fontFamily  = "Meiryo"
	columnWidth = 22
)

var rankFill = map[models.AIRank]string{
	models.AIRankS: "C6EFCE",
	models.AIRankA: "DDEBF7",
	models.AIRankB: "FFF2CC",
	models.AIRankC: "F8CBAD",
}

// sheetStyles стили листа, создаются один раз на файл
type sheetStyles struct {
	header int
	data   int
	rank   map[models.AIRank]int
}

func newSheetStyles(f *excelize.File) (*sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return nil, err
	}
	data, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Family: fontFamily, Size: 10},
	})
	if err != nil {
		return nil, err
	}
	styles := &sheetStyles{header: header, data: data, rank: make(map[models.AIRank]int, len(rankFill))}
	for rank, color := range rankFill {
		id, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 10},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return nil, err
		}
		styles.rank[rank] = id
	}
	return styles, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func setRangeStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo, style int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

// writeHeader заголовок в первой строке, закреплён и с автофильтром
func writeHeader(f *excelize.File, sheet string, styles *sheetStyles, headers []string) error {
	values := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		values = append(values, h)
	}
	if err := writeRow(f, sheet, 1, values); err != nil {
		return err
	}
	if err := setRangeStyle(f, sheet, 1, 1, len(headers), 1, styles.header); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return err
	}
	if err = f.AutoFilter(sheet, "A1:"+lastCol+"1", nil); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
