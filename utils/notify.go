package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyNewOrder posts an order summary to the webhook configured in
// ORDER_WEBHOOK_URL, if any. Used to ping the store team when a checkout is
// persisted; failures are the caller's to log, never to surface.
func NotifyNewOrder(orderID uint, total float64, city string, itemCount int) error {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	payload := map[string]any{
		"event":      "order.created",
		"order_id":   orderID,
		"total":      total,
		"city":       city,
		"item_count": itemCount,
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		return err
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("order webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
