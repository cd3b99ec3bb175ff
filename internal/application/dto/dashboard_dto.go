package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPIResponse indicadores principales del dashboard.
// Invariante: InStockItems + LowStockItems + OutOfStockItems == TotalProducts.
type KPIResponse struct {
	TotalProducts     int             `json:"total_products"`
	InStockItems      int             `json:"in_stock_items"`
	LowStockItems     int             `json:"low_stock_items"`
	OutOfStockItems   int             `json:"out_of_stock_items"`
	PendingOperations int             `json:"pending_operations"` // movimientos pending de los 4 tipos
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`  // Σ stock_actual × precio
}

// ActivityResponse entrada del feed de actividad reciente (una por movimiento).
type ActivityResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Number      string    `json:"number"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Time        time.Time `json:"time"`
}

// LowStockProductResponse producto en estado de atención para el widget de stock bajo.
type LowStockProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Status       string          `json:"status"`
}

// DashboardResponse respuesta completa de GET /api/dashboard.
type DashboardResponse struct {
	KPIs             KPIResponse               `json:"kpis"`
	RecentActivities []ActivityResponse        `json:"recent_activities"`
	LowStockProducts []LowStockProductResponse `json:"low_stock_products"`
}
