package export

import (
	"fmt"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/xuri/excelize/v2"
)

// Workbook builders for the admin xlsx dumps. Each sheet mirrors the matching
// HTML listing; the verification sheet leaves the stored file path out.

const sheetName = "Sheet1"

func UsersWorkbook(users []model.User) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []interface{}{"User ID", "Name", "Email", "Mobile", "Role", "Created At"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, u := range users {
		row := []interface{}{u.ID, u.FullName, u.Email, u.MobileNumber, string(u.Role), u.CreatedAt}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

func VerificationsWorkbook(records []model.VerificationRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []interface{}{"ID", "User ID", "Udyam Number", "Status", "Verified At", "Created At"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range records {
		var verifiedAt interface{}
		if r.VerifiedAt != nil {
			verifiedAt = *r.VerifiedAt
		}
		row := []interface{}{r.ID, r.UserID, r.UdyamNumber, r.Status, verifiedAt, r.CreatedAt}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

func BusinessesWorkbook(profiles []model.BusinessProfile) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []interface{}{"ID", "User ID", "Company", "Type", "Years", "Turnover", "State", "City"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, p := range profiles {
		row := []interface{}{p.ID, p.UserID, p.CompanyName, p.BusinessType, p.YearsOfOperation, p.AnnualTurnover, p.State, p.City}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
