package services

import (
	"strconv"

	"github.com/firetm-simple/dto"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/repositories"
)

// DefaultLowMarginThreshold is the profit margin percentage below which the
// LOW_MARGIN alert fires, unless overridden by the low_margin_threshold
// setting.
const DefaultLowMarginThreshold = 10.0

// LaborLine is the costed/billed view of one time log entry.
type LaborLine struct {
	TimeLogID  string
	Hours      float64
	CostAmount float64
	BillAmount float64
}

// MaterialLine is the costed/marked-up view of one material purchase.
type MaterialLine struct {
	MaterialID   string
	CostAmount   float64
	MarkupProfit float64
	BillAmount   float64
}

// ComputeLaborLine prices one time log against a project and the installer
// who worked it.
//
// Cost is always hours x the installer's internal cost rate. Billing splits
// on the project's billing type: a TM project bills hours x the effective
// rate (the entry's override when present, the project's TM rate otherwise);
// every other billing type bills 0 per entry, because non-TM projects are
// billed against the contract amount or schedule of values, never per time
// log. Mixing the two models in one aggregation is a bug.
func ComputeLaborLine(timeLog models.TimeLog, project models.Project, installer models.Installer) (LaborLine, error) {
	line := LaborLine{
		TimeLogID:  timeLog.ID,
		Hours:      timeLog.Hours,
		CostAmount: timeLog.Hours * installer.CostRate,
	}

	if !project.IsTM() {
		return line, nil
	}

	effectiveRate := timeLog.BillRateOverride
	if effectiveRate == nil {
		effectiveRate = project.TMBillRate
	}
	if effectiveRate == nil {
		// A TM project without a rate violates the project invariant.
		// Data-integrity bug upstream, not a user error.
		return LaborLine{}, models.ErrConfiguration
	}

	line.BillAmount = timeLog.Hours * *effectiveRate
	return line, nil
}

// ComputeMaterialLine prices one material purchase. MarkupPercent is a
// whole-number percentage: 20 means 20%, so a $1500 line yields $300 markup
// profit.
func ComputeMaterialLine(material models.Material) MaterialLine {
	markupProfit := material.Total * material.MarkupPercent / 100
	return MaterialLine{
		MaterialID:   material.ID,
		CostAmount:   material.Total,
		MarkupProfit: markupProfit,
		BillAmount:   material.Total + markupProfit,
	}
}

// AggregateProjectAnalytics folds priced labor and material lines plus raw
// expenses into the project's profitability picture.
//
// TM projects earn the labor and material markup minus expenses; fixed/SOV
// (and bid) projects earn the contract amount minus everything spent. The
// margin denominator follows the same split and is guarded against zero.
func AggregateProjectAnalytics(
	project models.Project,
	laborLines []LaborLine,
	materialLines []MaterialLine,
	expenses []models.Expense,
	lowMarginThreshold float64) dto.ProjectAnalytics {

	analytics := dto.ProjectAnalytics{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		BillingType: string(project.BillingType),
		Alerts:      []string{},
	}

	for _, line := range laborLines {
		analytics.TotalLaborCost += line.CostAmount
		analytics.TotalLaborBill += line.BillAmount
	}
	analytics.LaborMarkupProfit = analytics.TotalLaborBill - analytics.TotalLaborCost

	var totalMaterialBill float64
	for _, line := range materialLines {
		analytics.TotalMaterialCost += line.CostAmount
		analytics.MaterialMarkupProfit += line.MarkupProfit
		totalMaterialBill += line.BillAmount
	}

	for _, expense := range expenses {
		analytics.TotalExpense += expense.Amount
	}

	analytics.TotalCost = analytics.TotalLaborCost + analytics.TotalMaterialCost + analytics.TotalExpense

	var denominator float64
	switch project.BillingType {
	case models.BillingTypeTM:
		analytics.Profit = analytics.LaborMarkupProfit + analytics.MaterialMarkupProfit - analytics.TotalExpense
		denominator = analytics.TotalLaborBill + totalMaterialBill
	default:
		// fixed, sov and bid all bill against the contract amount
		analytics.ContractAmount = project.ContractAmount
		analytics.Profit = project.ContractAmount - analytics.TotalCost
		denominator = project.ContractAmount

		if analytics.TotalCost > project.ContractAmount {
			analytics.Alerts = append(analytics.Alerts, dto.AlertOverBudget)
		}
	}

	if denominator != 0 {
		analytics.ProfitMargin = analytics.Profit / denominator * 100
	}

	if analytics.ProfitMargin < lowMarginThreshold {
		analytics.Alerts = append(analytics.Alerts, dto.AlertLowMargin)
	}

	return analytics
}

// BillingService handles profitability analytics for projects
type BillingService struct {
	projectRepo   *repositories.ProjectRepository
	installerRepo *repositories.InstallerRepository
	timeLogRepo   *repositories.TimeLogRepository
	materialRepo  *repositories.MaterialRepository
	expenseRepo   *repositories.ExpenseRepository
	settingRepo   *repositories.SettingRepository
}

// NewBillingService creates a new billing service instance
func NewBillingService() *BillingService {
	return &BillingService{
		projectRepo:   repositories.NewProjectRepository(),
		installerRepo: repositories.NewInstallerRepository(),
		timeLogRepo:   repositories.NewTimeLogRepository(),
		materialRepo:  repositories.NewMaterialRepository(),
		expenseRepo:   repositories.NewExpenseRepository(),
		settingRepo:   repositories.NewSettingRepository(),
	}
}

// ProjectAnalytics loads a project's labor, material and expense records and
// aggregates them into the profitability view.
func (s *BillingService) ProjectAnalytics(projectID string) (dto.ProjectAnalytics, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return dto.ProjectAnalytics{}, err
	}

	timeLogs, err := s.timeLogRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ProjectAnalytics{}, err
	}

	materials, err := s.materialRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ProjectAnalytics{}, err
	}

	expenses, err := s.expenseRepo.FindByProjectID(projectID)
	if err != nil {
		return dto.ProjectAnalytics{}, err
	}

	laborLines, err := s.priceLaborLines(project, timeLogs)
	if err != nil {
		return dto.ProjectAnalytics{}, err
	}

	materialLines := make([]MaterialLine, 0, len(materials))
	for _, material := range materials {
		materialLines = append(materialLines, ComputeMaterialLine(material))
	}

	return AggregateProjectAnalytics(project, laborLines, materialLines, expenses, s.lowMarginThreshold()), nil
}

// priceLaborLines resolves each time log's installer and prices the entry.
func (s *BillingService) priceLaborLines(project models.Project, timeLogs []models.TimeLog) ([]LaborLine, error) {
	if len(timeLogs) == 0 {
		return []LaborLine{}, nil
	}

	installerIDs := make([]string, 0, len(timeLogs))
	seen := make(map[string]bool)
	for _, timeLog := range timeLogs {
		if !seen[timeLog.InstallerID] {
			seen[timeLog.InstallerID] = true
			installerIDs = append(installerIDs, timeLog.InstallerID)
		}
	}

	installers, err := s.installerRepo.FindByIDs(installerIDs)
	if err != nil {
		return nil, err
	}

	lines := make([]LaborLine, 0, len(timeLogs))
	for _, timeLog := range timeLogs {
		installer, ok := installers[timeLog.InstallerID]
		if !ok {
			return nil, models.ErrNotFound
		}
		line, err := ComputeLaborLine(timeLog, project, installer)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *BillingService) lowMarginThreshold() float64 {
	value, err := s.settingRepo.Get(models.SettingLowMarginThreshold)
	if err != nil {
		return DefaultLowMarginThreshold
	}
	threshold, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return DefaultLowMarginThreshold
	}
	return threshold
}
