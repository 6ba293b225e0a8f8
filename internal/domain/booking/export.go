package booking

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

// WriteExportXLSX renders report rows as an Excel workbook and streams it to w.
func WriteExportXLSX(w io.Writer, rows []ExportRow, from, to time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("export sheet: %w", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(exportSheet, "A1", fmt.Sprintf("Bookings %s to %s",
		from.Format("2006-01-02"), to.Format("2006-01-02")))
	_ = f.MergeCell(exportSheet, "A1", "G1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(exportSheet, "A1", "A1", titleStyle)

	headers := []string{"Booking ID", "Room", "Customer", "Check-In", "Check-Out", "Amount", "Status"}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(exportSheet, cell, header)
		_ = f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	for i, row := range rows {
		n := i + 3
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("A%d", n), row.ID.String())
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("B%d", n), row.RoomNumber)
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("C%d", n), row.CustomerEmail)
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("D%d", n), row.CheckInDate.Format("2006-01-02"))
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("E%d", n), row.CheckOutDate.Format("2006-01-02"))
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("F%d", n), row.TotalAmount)
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("G%d", n), string(row.Status))
	}

	_ = f.SetColWidth(exportSheet, "A", "A", 38)
	_ = f.SetColWidth(exportSheet, "B", "B", 10)
	_ = f.SetColWidth(exportSheet, "C", "C", 28)
	_ = f.SetColWidth(exportSheet, "D", "E", 14)
	_ = f.SetColWidth(exportSheet, "F", "G", 12)

	_ = f.DeleteSheet("Sheet1")

	return f.Write(w)
}
