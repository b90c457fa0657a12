// Package export writes all data of an owner as JSON, XLSX or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fincontrol/backend/internal/store"
	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format is a file format for exports.
type Format string

const (
	JSON Format = "json"
	XLSX Format = "xlsx"
	CSV  Format = "csv"
)

var ErrUnknownFormat = errors.New("the export format must be one of json, xlsx, csv")

// ParseFormat parses s. An empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return JSON, nil
	case JSON, XLSX, CSV:
		return f, nil
	}
	return "", ErrUnknownFormat
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case CSV:
		return "text/csv; charset=utf-8"
	}
	return "application/json; charset=utf-8"
}

// Filename returns the name of an export created at t.
func (f Format) Filename(t time.Time) string {
	return fmt.Sprintf("fincontrol_%s.%s", t.Format("20060102"), f)
}

// Exporter writes snapshots.
type Exporter struct {
	location *time.Location
	printer  *message.Printer
}

// New returns an Exporter that writes dates in loc and formats
// CSV amounts for locale.
func New(loc *time.Location, locale language.Tag) *Exporter {
	return &Exporter{
		location: loc,
		printer:  message.NewPrinter(locale),
	}
}

// Write writes s to w in format f.
func (e *Exporter) Write(w io.Writer, f Format, s store.Snapshot) error {
	switch f {
	case JSON:
		return json.NewEncoder(w).Encode(s)
	case XLSX:
		return e.xlsx(w, s)
	case CSV:
		return e.csv(w, s)
	}
	return ErrUnknownFormat
}

func (e *Exporter) xlsx(w io.Writer, s store.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables(s) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), t.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(t.name); err != nil {
			return err
		}

		header := make([]any, 0, len(t.header))
		for _, h := range t.header {
			header = append(header, h)
		}
		if err := f.SetSheetRow(t.name, "A1", &header); err != nil {
			return err
		}

		for r, row := range t.rows {
			values := make([]any, 0, len(row))
			for _, v := range row {
				values = append(values, e.sheetValue(v))
			}

			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.name, cell, &values); err != nil {
				return err
			}
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func (e *Exporter) sheetValue(v any) any {
	switch v := v.(type) {
	case types.Cents:
		return v.Decimal().InexactFloat64()
	case int, bool, string:
		return v
	}
	return e.text(v)
}

// csv writes all tables into one file. Each table starts with a row
// holding its name, followed by the header. Tables are separated by an
// empty line.
func (e *Exporter) csv(w io.Writer, s store.Snapshot) error {
	writer := csv.NewWriter(w)

	for i, t := range tables(s) {
		if i > 0 {
			if err := writer.Write([]string{}); err != nil {
				return err
			}
		}

		if err := writer.Write([]string{t.name}); err != nil {
			return err
		}
		if err := writer.Write(t.header); err != nil {
			return err
		}

		for _, row := range t.rows {
			record := make([]string, 0, len(row))
			for _, v := range row {
				record = append(record, e.text(v))
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func (e *Exporter) text(v any) string {
	switch v := v.(type) {
	case types.Cents:
		return e.printer.Sprint(number.Decimal(v.Decimal().InexactFloat64(), number.Scale(2)))
	case time.Time:
		return v.In(e.location).Format(time.DateOnly)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.In(e.location).Format(time.DateOnly)
	case uuid.UUID:
		return v.String()
	case *uuid.UUID:
		if v == nil {
			return ""
		}
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	}
	return fmt.Sprint(v)
}
