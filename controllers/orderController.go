package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thesuplementos/loja-api/board"
	"github.com/thesuplementos/loja-api/catalog"
	"github.com/thesuplementos/loja-api/initializers"
	"github.com/thesuplementos/loja-api/models"
)

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse "+name)
		return 0, false
	}
	return uint(value), true
}

func orderItemLines(rawItems []byte) ([]string, int) {
	var items []models.OrderItem
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return nil, 0
	}
	lines := make([]string, 0, len(items))
	count := 0
	for _, item := range items {
		line := fmt.Sprintf("%dx %s", item.Quantity, item.Name)
		if item.Brand != "" {
			line += " (" + item.Brand + ")"
		}
		line += " - R$ " + catalog.FormatPrice(item.Price*float64(item.Quantity))
		lines = append(lines, line)
		count += item.Quantity
	}
	return lines, count
}

// GetOrders returns the admin board view: orders run through the search,
// date-window and sort filters, grouped into status columns, plus the header
// stats (cancelled orders never count toward revenue).
func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	if result := initializers.DB.Order("created_at desc").Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	var revenue float64
	for _, order := range orders {
		if order.Status != models.StatusCancelled {
			revenue += order.Total
		}
	}

	filtered := board.Filter(
		orders,
		ctx.Query("search"),
		board.ParseDateFilter(ctx.DefaultQuery("date", "all")),
		board.ParseSortOrder(ctx.DefaultQuery("sort", "newest")),
		time.Now(),
	)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders":  filtered,
		"columns": board.GroupByStatus(filtered),
		"stats": gin.H{
			"total":   len(orders),
			"revenue": revenue,
		},
	})
}

func GetOrderByCustomerId(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "userId")
	if !ok {
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	query := initializers.DB.Where("user_id = ?", userID).Order("created_at " + sortOrder)
	if result := query.Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, msgFailedToFetchOrders)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatus sets an order's status directly. Drag-and-drop on the
// board and the per-column buttons both land here.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.IsValidStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	orderID, ok := parseUintParam(ctx, "orderId")
	if !ok {
		return
	}

	if result := initializers.DB.Model(&models.Order{}).Where("id = ?", orderID).Update("status", orderStatusData.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

// AdvanceOrderStatus moves an order one step along
// pending -> confirmed -> delivered. Delivered and cancelled don't advance.
func AdvanceOrderStatus(ctx *gin.Context) {
	orderID, ok := parseUintParam(ctx, "orderId")
	if !ok {
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderID).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	next, ok := board.NextStatus(order.Status)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order status cannot be advanced")
		return
	}

	if result := initializers.DB.Model(&order).Update("status", next); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": next})
}

func DeleteOrder(ctx *gin.Context) {
	orderID, ok := parseUintParam(ctx, "orderId")
	if !ok {
		return
	}

	if result := initializers.DB.Delete(&models.Order{}, orderID); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.StatusDelivered, models.StatusCancelled}).
		Count(&count)

	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count undelivered orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"undeliveredOrderCount": count})
}

type salesBucket struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type topProduct struct {
	ProductName  string  `json:"product_name"`
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// GetSalesStats aggregates the dashboard series: monthly revenue for the last
// six months, daily revenue for the last fourteen days and the top products
// by units sold. Cancelled orders are excluded throughout.
func GetSalesStats(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.
		Where("status <> ?", models.StatusCancelled).
		Order("created_at asc").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	now := time.Now()
	monthly := make([]salesBucket, 6)
	for i := range monthly {
		month := now.AddDate(0, i-5, 0)
		monthly[i].Label = month.Format("2006-01")
	}
	daily := make([]salesBucket, 14)
	for i := range daily {
		day := now.AddDate(0, 0, i-13)
		daily[i].Label = day.Format("2006-01-02")
	}

	products := make(map[string]*topProduct)
	for i := range orders {
		order := &orders[i]

		monthKey := order.CreatedAt.Format("2006-01")
		for j := range monthly {
			if monthly[j].Label == monthKey {
				monthly[j].Revenue += order.Total
				monthly[j].Orders++
			}
		}
		dayKey := order.CreatedAt.Format("2006-01-02")
		for j := range daily {
			if daily[j].Label == dayKey {
				daily[j].Revenue += order.Total
				daily[j].Orders++
			}
		}

		items, err := order.ItemList()
		if err != nil {
			log.Println("Skipping order with unreadable items:", order.ID, err)
			continue
		}
		for _, item := range items {
			entry, exists := products[item.Name]
			if !exists {
				entry = &topProduct{ProductName: item.Name}
				products[item.Name] = entry
			}
			entry.TotalSold += item.Quantity
			entry.TotalRevenue += item.Price * float64(item.Quantity)
		}
	}

	top := make([]topProduct, 0, len(products))
	for _, entry := range products {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].TotalSold > top[j].TotalSold })
	if len(top) > 5 {
		top = top[:5]
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"monthlySales": monthly,
		"dailySales":   daily,
		"topProducts":  top,
	})
}
