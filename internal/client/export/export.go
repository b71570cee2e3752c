// Package export writes the cached expense list to CSV or XLSX, either to a
// local file or to an S3 object.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/filex"
	"github.com/dmitrijs2005/expensetracker/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const sheetName = "Expenses"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidTarget     = errors.New("invalid export target")
)

var header = []string{"ID", "Date", "Description", "Category", "Location", "Amount"}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Write encodes expenses followed by a total row.
func Write(w io.Writer, format Format, expenses []models.Expense) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, expenses)
	case FormatXLSX:
		return writeXLSX(w, expenses)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range expenses {
		if err := cw.Write([]string{
			strconv.FormatInt(e.ID, 10),
			e.Date.String(),
			e.Description,
			e.Category.Name,
			e.Location,
			e.Amount.String(),
		}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"Total", "", "", "", "", models.Total(expenses).String()}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "F1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "C", "C", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "D", "E", 18); err != nil {
		return err
	}

	row := 2
	for _, e := range expenses {
		values := []any{e.ID, e.Date.String(), e.Description, e.Category.Name, e.Location}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		if err := setAmount(f, row, e.Amount); err != nil {
			return err
		}
		row++
	}

	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Total"); err != nil {
		return err
	}
	if err := setAmount(f, row, models.Total(expenses)); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "F2", fmt.Sprintf("F%d", row), amountStyle); err != nil {
		return err
	}

	return f.Write(w)
}

// setAmount stores the decimal's own digits as a numeric cell, so no amount
// passes through float64.
func setAmount(f *excelize.File, row int, d decimal.Decimal) error {
	return f.SetCellDefault(sheetName, fmt.Sprintf("F%d", row), d.String())
}

type Exporter struct {
	s3  S3Config
	log logging.Logger
}

func New(s3cfg S3Config, log logging.Logger) *Exporter {
	if log == nil {
		log = logging.Discard()
	}
	return &Exporter{s3: s3cfg, log: log}
}

// Export writes expenses to target, a local path or s3://bucket/key. The
// format follows the target's extension.
func (e *Exporter) Export(ctx context.Context, target string, expenses []models.Expense) error {
	format, err := FormatFromPath(target)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Write(&buf, format, expenses); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if strings.HasPrefix(target, "s3://") {
		bucket, key, err := parseS3Target(target)
		if err != nil {
			return err
		}
		if err := e.putS3(ctx, bucket, key, format, buf.Bytes()); err != nil {
			return fmt.Errorf("upload %s: %w", target, err)
		}
	} else if err := filex.WriteFile(target, buf.Bytes()); err != nil {
		return err
	}

	e.log.Info(ctx, "expenses exported", "target", target, "rows", len(expenses))
	return nil
}

func parseS3Target(target string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(target, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	return bucket, key, nil
}
