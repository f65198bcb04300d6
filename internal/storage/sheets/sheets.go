// Package sheets implements the remote RowService against the Google
// Sheets API. It is wired in by cmd when credentials are configured;
// the storage core only sees the RowService interface.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Service is a RowService over one worksheet of one spreadsheet.
type Service struct {
	api           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	sheetID       int64
}

// New connects to the Sheets API with a service-account credentials
// file and resolves the named worksheet.
func New(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Service, error) {
	api, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	meta, err := api.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties").Do()
	if err != nil {
		return nil, fmt.Errorf("fetching spreadsheet %s: %w", spreadsheetID, err)
	}

	for _, sh := range meta.Sheets {
		if sh.Properties.Title == sheetName {
			return &Service{
				api:           api,
				spreadsheetID: spreadsheetID,
				sheetName:     sheetName,
				sheetID:       sh.Properties.SheetId,
			}, nil
		}
	}
	return nil, fmt.Errorf("worksheet %q not found in spreadsheet %s", sheetName, spreadsheetID)
}

// Rows returns all rows of the worksheet, header included.
func (s *Service) Rows() ([][]string, error) {
	resp, err := s.api.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).Do()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// Append adds one row after the last non-empty row.
func (s *Service) Append(row []string) error {
	_, err := s.api.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, valueRange(row)).
		ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("appending row: %w", err)
	}
	return nil
}

// Update rewrites the data row at the given zero-based index.
// Data row 0 lives on sheet row 2, below the header.
func (s *Service) Update(index int, row []string) error {
	rng := fmt.Sprintf("%s!A%d", s.sheetName, index+2)
	_, err := s.api.Spreadsheets.Values.Update(s.spreadsheetID, rng, valueRange(row)).
		ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("updating row %d: %w", index, err)
	}
	return nil
}

// Delete removes the data row at the given zero-based index.
func (s *Service) Delete(index int) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    s.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index) + 1, // skip header
					EndIndex:   int64(index) + 2,
				},
			},
		}},
	}
	if _, err := s.api.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Do(); err != nil {
		return fmt.Errorf("deleting row %d: %w", index, err)
	}
	return nil
}

// Clear wipes the whole worksheet, header included.
func (s *Service) Clear() error {
	_, err := s.api.Spreadsheets.Values.Clear(s.spreadsheetID, s.sheetName, &sheetsapi.ClearValuesRequest{}).Do()
	if err != nil {
		return fmt.Errorf("clearing worksheet: %w", err)
	}
	return nil
}

func valueRange(row []string) *sheetsapi.ValueRange {
	cells := make([]interface{}, len(row))
	for i, c := range row {
		cells[i] = c
	}
	return &sheetsapi.ValueRange{Values: [][]interface{}{cells}}
}
