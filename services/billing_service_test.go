package services

import (
	"errors"
	"testing"
	"time"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
)

func tmProject(rate float64) models.Project {
	return models.Project{
		ID:          "p1",
		Name:        "Warehouse Sprinkler Upgrade",
		BillingType: models.BillingTypeTM,
		TMBillRate:  &rate,
	}
}

func TestComputeLaborLineProjectRate(t *testing.T) {
	project := tmProject(95)
	installer := models.Installer{ID: "i1", CostRate: 65}
	timeLog := models.TimeLog{ID: "t1", Hours: 8, InstallerID: "i1", ProjectID: "p1"}

	line, err := ComputeLaborLine(timeLog, project, installer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(line.CostAmount, 520) {
		t.Errorf("cost = %v, want 520", line.CostAmount)
	}
	if !almostEqual(line.BillAmount, 760) {
		t.Errorf("bill = %v, want 760", line.BillAmount)
	}
}

func TestComputeLaborLineOverrideWins(t *testing.T) {
	project := tmProject(95)
	installer := models.Installer{ID: "i1", CostRate: 65}
	timeLog := models.TimeLog{ID: "t1", Hours: 8, BillRateOverride: floatPtr(110)}

	line, err := ComputeLaborLine(timeLog, project, installer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(line.BillAmount, 880) {
		t.Errorf("bill = %v, want 880 (override must supersede project rate)", line.BillAmount)
	}
	if !almostEqual(line.CostAmount, 520) {
		t.Errorf("cost = %v, want 520 (override must not affect cost)", line.CostAmount)
	}
}

func TestComputeLaborLineNonTMBillsZero(t *testing.T) {
	project := models.Project{ID: "p1", BillingType: models.BillingTypeFixed, ContractAmount: 50000}
	installer := models.Installer{ID: "i1", CostRate: 65}
	// Even an explicit override must not produce a per-entry bill on a
	// fixed-price project.
	timeLog := models.TimeLog{ID: "t1", Hours: 8, BillRateOverride: floatPtr(110)}

	line, err := ComputeLaborLine(timeLog, project, installer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.BillAmount != 0 {
		t.Errorf("bill = %v, want 0 for non-TM project", line.BillAmount)
	}
	if !almostEqual(line.CostAmount, 520) {
		t.Errorf("cost = %v, want 520", line.CostAmount)
	}
}

func TestComputeLaborLineMissingRate(t *testing.T) {
	project := models.Project{ID: "p1", BillingType: models.BillingTypeTM} // no rate: invalid state
	installer := models.Installer{ID: "i1", CostRate: 65}
	timeLog := models.TimeLog{ID: "t1", Hours: 8}

	_, err := ComputeLaborLine(timeLog, project, installer)
	if !errors.Is(err, models.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestComputeMaterialLineMarkup(t *testing.T) {
	material := models.Material{ID: "m1", Total: 1500, MarkupPercent: 20}

	line := ComputeMaterialLine(material)
	if !almostEqual(line.CostAmount, 1500) {
		t.Errorf("cost = %v, want 1500", line.CostAmount)
	}
	if !almostEqual(line.MarkupProfit, 300) {
		t.Errorf("markup profit = %v, want 300", line.MarkupProfit)
	}
	if !almostEqual(line.BillAmount, 1800) {
		t.Errorf("bill = %v, want 1800", line.BillAmount)
	}
}

func TestAggregateTMProject(t *testing.T) {
	project := tmProject(95)

	laborLines := []LaborLine{{TimeLogID: "t1", Hours: 8, CostAmount: 520, BillAmount: 760}}
	materialLines := []MaterialLine{{MaterialID: "m1", CostAmount: 1500, MarkupProfit: 300, BillAmount: 1800}}
	expenses := []models.Expense{{ID: "e1", Amount: 100}}

	analytics := AggregateProjectAnalytics(project, laborLines, materialLines, expenses, DefaultLowMarginThreshold)

	if !almostEqual(analytics.LaborMarkupProfit, 240) {
		t.Errorf("labor markup = %v, want 240", analytics.LaborMarkupProfit)
	}
	if !almostEqual(analytics.Profit, 440) {
		t.Errorf("profit = %v, want 440 (240 labor + 300 material - 100 expense)", analytics.Profit)
	}
	if !almostEqual(analytics.TotalCost, 2120) {
		t.Errorf("total cost = %v, want 2120", analytics.TotalCost)
	}
	// margin over total billed: 440 / 2560
	if !almostEqual(analytics.ProfitMargin, 440.0/2560.0*100) {
		t.Errorf("margin = %v, want %v", analytics.ProfitMargin, 440.0/2560.0*100)
	}
	if len(analytics.Alerts) != 0 {
		t.Errorf("alerts = %v, want none", analytics.Alerts)
	}
	if analytics.ContractAmount != 0 {
		t.Errorf("contract amount leaked into TM analytics: %v", analytics.ContractAmount)
	}
}

func TestAggregateFixedProjectOverBudget(t *testing.T) {
	project := models.Project{
		ID:             "p1",
		BillingType:    models.BillingTypeFixed,
		ContractAmount: 1000,
	}

	laborLines := []LaborLine{{TimeLogID: "t1", Hours: 10, CostAmount: 650, BillAmount: 0}}
	materialLines := []MaterialLine{{MaterialID: "m1", CostAmount: 500, MarkupProfit: 100, BillAmount: 600}}

	analytics := AggregateProjectAnalytics(project, laborLines, materialLines, nil, DefaultLowMarginThreshold)

	if !almostEqual(analytics.TotalCost, 1150) {
		t.Errorf("total cost = %v, want 1150", analytics.TotalCost)
	}
	if !almostEqual(analytics.Profit, -150) {
		t.Errorf("profit = %v, want -150", analytics.Profit)
	}
	if !hasAlert(analytics, dto.AlertOverBudget) {
		t.Errorf("alerts = %v, want OVER_BUDGET", analytics.Alerts)
	}
	if !hasAlert(analytics, dto.AlertLowMargin) {
		t.Errorf("alerts = %v, want LOW_MARGIN for negative margin", analytics.Alerts)
	}
}

func TestAggregateEmptyProjectNoDivideByZero(t *testing.T) {
	project := tmProject(95)

	analytics := AggregateProjectAnalytics(project, nil, nil, nil, DefaultLowMarginThreshold)

	if analytics.ProfitMargin != 0 {
		t.Errorf("margin = %v, want 0 when nothing is billed", analytics.ProfitMargin)
	}
	if analytics.ProfitMargin != analytics.ProfitMargin {
		t.Error("margin is NaN")
	}
}

func hasAlert(analytics dto.ProjectAnalytics, code string) bool {
	for _, alert := range analytics.Alerts {
		if alert == code {
			return true
		}
	}
	return false
}

func TestProjectAnalyticsEndToEnd(t *testing.T) {
	setupTestDB(t)

	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	installer := createTestInstaller(t, 65)

	timeLog := models.TimeLog{
		Date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		InstallerID: installer.ID,
		ProjectID:   project.ID,
		Hours:       8,
	}
	if err := database.DB.Create(&timeLog).Error; err != nil {
		t.Fatalf("create time log: %v", err)
	}

	material := models.Material{
		ProjectID:     project.ID,
		Description:   "4in pipe and fittings",
		Quantity:      1,
		Total:         1500,
		MarkupPercent: 20,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		t.Fatalf("create material: %v", err)
	}

	expense := models.Expense{ProjectID: project.ID, Description: "lift rental", Amount: 100}
	if err := database.DB.Create(&expense).Error; err != nil {
		t.Fatalf("create expense: %v", err)
	}

	service := NewBillingService()
	analytics, err := service.ProjectAnalytics(project.ID)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}

	if !almostEqual(analytics.TotalLaborCost, 520) {
		t.Errorf("labor cost = %v, want 520", analytics.TotalLaborCost)
	}
	if !almostEqual(analytics.TotalLaborBill, 760) {
		t.Errorf("labor bill = %v, want 760", analytics.TotalLaborBill)
	}
	if !almostEqual(analytics.MaterialMarkupProfit, 300) {
		t.Errorf("material markup = %v, want 300", analytics.MaterialMarkupProfit)
	}
	if !almostEqual(analytics.Profit, 440) {
		t.Errorf("profit = %v, want 440", analytics.Profit)
	}
}

func TestProjectAnalyticsThresholdFromSettings(t *testing.T) {
	setupTestDB(t)

	project := createTestProject(t, models.BillingTypeTM, floatPtr(95), 0)
	installer := createTestInstaller(t, 65)

	timeLog := models.TimeLog{
		Date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		InstallerID: installer.ID,
		ProjectID:   project.ID,
		Hours:       8,
	}
	if err := database.DB.Create(&timeLog).Error; err != nil {
		t.Fatalf("create time log: %v", err)
	}

	// Margin here is 240/760 ~ 31.6%; raising the threshold above it must
	// trip the alert.
	setting := models.Setting{Key: models.SettingLowMarginThreshold, Value: "40"}
	if err := database.DB.Create(&setting).Error; err != nil {
		t.Fatalf("create setting: %v", err)
	}

	service := NewBillingService()
	analytics, err := service.ProjectAnalytics(project.ID)
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if !hasAlert(analytics, dto.AlertLowMargin) {
		t.Errorf("alerts = %v, want LOW_MARGIN under raised threshold", analytics.Alerts)
	}
}
