package dto

// Alert codes emitted by the profitability aggregation.
const (
	AlertLowMargin  = "LOW_MARGIN"
	AlertOverBudget = "OVER_BUDGET"
)

// ProjectAnalytics represents the profitability breakdown of one project.
// All monetary values are dollars; ProfitMargin is a percentage.
type ProjectAnalytics struct {
	ProjectID            string   `json:"projectId"`
	ProjectName          string   `json:"projectName"`
	BillingType          string   `json:"billingType"`
	TotalLaborCost       float64  `json:"totalLaborCost"`
	TotalLaborBill       float64  `json:"totalLaborBill"`
	LaborMarkupProfit    float64  `json:"laborMarkupProfit"`
	TotalMaterialCost    float64  `json:"totalMaterialCost"`
	MaterialMarkupProfit float64  `json:"materialMarkupProfit"`
	TotalExpense         float64  `json:"totalExpense"`
	TotalCost            float64  `json:"totalCost"`
	ContractAmount       float64  `json:"contractAmount,omitempty"`
	Profit               float64  `json:"profit"`
	ProfitMargin         float64  `json:"profitMargin"`
	Alerts               []string `json:"alerts"`
}
