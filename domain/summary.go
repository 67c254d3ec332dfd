package domain

// TaxSummary is a read-only aggregate over a financial-year-filtered
// transaction set.
type TaxSummary struct {
	TotalSales        float64 `json:"totalSales"`
	TotalPurchases    float64 `json:"totalPurchases"`
	TotalTaxCollected float64 `json:"totalTaxCollected"`
	TotalTaxPaid      float64 `json:"totalTaxPaid"`
	NetTaxLiability   float64 `json:"netTaxLiability"`
	TotalDiscounts    float64 `json:"totalDiscounts"`
}

type InventoryStats struct {
	TotalMedicines    int     `json:"totalMedicines"`
	LowStockCount     int     `json:"lowStockCount"`
	ExpiringSoonCount int     `json:"expiringSoonCount"`
	TotalValue        float64 `json:"totalValue"`
}

type ExpiryStats struct {
	Expiring15Days int     `json:"expiring15Days"`
	Expiring30Days int     `json:"expiring30Days"`
	Expired        int     `json:"expired"`
	TotalValue     float64 `json:"totalValue"`
}

type DashboardStats struct {
	TodayTransactions int     `json:"todayTransactions"`
	LowStockAlerts    int     `json:"lowStockAlerts"`
	ExpiringMedicines int     `json:"expiringMedicines"`
	TotalInventory    int     `json:"totalInventory"`
	TotalStockValue   float64 `json:"totalStockValue"`
}
