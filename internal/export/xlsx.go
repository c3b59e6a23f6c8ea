// Package export renders discovery results as an Excel workbook with a
// compact summary sheet and a full detail sheet.
package export

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/wood-couture/market-scout/internal/model"
)

// Sheet names as they appear in the generated workbook.
const (
	SummarySheetName = "Company Summary"
	DetailSheetName  = "Detailed Information"
)

var summaryHeader = []string{
	"Company Name",
	"Website",
	"LinkedIn",
	"Primary Email",
	"Primary Phone",
	"Location",
}

var detailHeader = []string{
	"Company Name",
	"Website",
	"LinkedIn",
	"Primary Email",
	"Primary Phone",
	"Location",
	"All Emails",
	"All Phones",
	"Summary",
}

// Workbook builds the two-sheet workbook in memory. Both sheets carry a
// header row even when records is empty, so a consumer always sees the
// column layout.
func Workbook(records []model.CompanyRecord) (*xlsx.File, error) {
	f := xlsx.NewFile()

	summarySheet, err := f.AddSheet(SummarySheetName)
	if err != nil {
		return nil, eris.Wrap(err, "export: add summary sheet")
	}
	detailSheet, err := f.AddSheet(DetailSheetName)
	if err != nil {
		return nil, eris.Wrap(err, "export: add detail sheet")
	}

	writeRow(summarySheet, summaryHeader)
	writeRow(detailSheet, detailHeader)

	for _, rec := range records {
		base := []string{
			rec.Name,
			rec.Website,
			rec.LinkedInURL,
			rec.PrimaryEmail,
			rec.PrimaryPhone,
			rec.Location,
		}
		writeRow(summarySheet, base)
		writeRow(detailSheet, append(base,
			strings.Join(rec.AllEmails, ", "),
			strings.Join(rec.AllPhones, ", "),
			rec.Summary,
		))
	}

	return f, nil
}

// Write streams the workbook to w.
func Write(w io.Writer, records []model.CompanyRecord) error {
	f, err := Workbook(records)
	if err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write workbook")
	}
	return nil
}

// WriteFile saves the workbook to path.
func WriteFile(path string, records []model.CompanyRecord) error {
	f, err := Workbook(records)
	if err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save workbook to %s", path)
	}
	return nil
}

func writeRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
