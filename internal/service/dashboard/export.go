package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/pkg/ptr"
)

// SheetName лист XLSX выгрузки
const SheetName = "預約"

// ExportHeader заголовок выгрузки
var ExportHeader = []string{"ID", "地點", "姓名", "電話", "車型", "車牌", "日期", "狀態", "多台車", "動態影片", "備註", "建立時間"}

// exportRow значения одной строки выгрузки в порядке ExportHeader
func exportRow(b *domain.Booking) []string {
	return []string{
		strconv.FormatInt(b.ID, 10),
		b.Route,
		b.Name,
		b.Phone,
		b.CarModel,
		ptr.Deref(b.CarPlate),
		b.BookingDate,
		string(b.Status),
		domain.YesNo(b.MultipleVehicles),
		domain.YesNo(b.VideoUpgrade),
		ptr.Deref(b.Notes),
		domain.FormatLocalDateTime(b.CreatedAt),
	}
}

// ExportCSV сериализует бронирования в CSV
// Каждая ячейка в кавычках, строки разделены \n, в конце перевода строки нет
func ExportCSV(bookings []*domain.Booking) []byte {
	lines := make([]string, 0, len(bookings)+1)
	lines = append(lines, csvLine(ExportHeader))
	for _, b := range bookings {
		lines = append(lines, csvLine(exportRow(b)))
	}
	return []byte(strings.Join(lines, "\n"))
}

func csvLine(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ExportXLSX сериализует бронирования в книгу Excel с одним листом
func ExportXLSX(bookings []*domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: ExportXLSX - create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	header := make([]interface{}, len(ExportHeader))
	for i, h := range ExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: ExportXLSX - write header: %v", ErrInternal, err)
	}

	for i, b := range bookings {
		cells := exportRow(b)
		row := make([]interface{}, len(cells))
		row[0] = b.ID
		for j := 1; j < len(cells); j++ {
			row[j] = cells[j]
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: ExportXLSX - cell name: %v", ErrInternal, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("%w: ExportXLSX - write row %d: %v", ErrInternal, i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: ExportXLSX - write workbook: %v", ErrInternal, err)
	}

	return buf.Bytes(), nil
}

// ExportFilename имя файла выгрузки для месяца
func ExportFilename(month, format string) string {
	return fmt.Sprintf("bookings-%s.%s", month, format)
}
