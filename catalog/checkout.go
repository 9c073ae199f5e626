package catalog

import (
	"fmt"
	"strings"

	"github.com/thesuplementos/loja-api/models"
)

// CheckoutMessage renders the numbered WhatsApp order message sent at
// checkout. The wording is what customers already receive, so it stays as-is.
func CheckoutMessage(items []models.OrderItem, total float64) string {
	var message strings.Builder
	message.WriteString("Ola! Gostaria de fazer o seguinte pedido:\n\n")

	for i, item := range items {
		fmt.Fprintf(&message, "%d. *%s*", i+1, item.Name)
		if item.Brand != "" {
			fmt.Fprintf(&message, " (%s)", item.Brand)
		}
		fmt.Fprintf(&message, "\n   Qtd: %d x R$ %s", item.Quantity, FormatPrice(item.Price))
		if item.Quantity > 1 {
			fmt.Fprintf(&message, " = R$ %s", FormatPrice(item.Price*float64(item.Quantity)))
		}
		message.WriteString("\n\n")
	}

	fmt.Fprintf(&message, "---\n*Total: R$ %s*\n\nVi os produtos no site e gostaria de fechar o pedido!", FormatPrice(total))
	return message.String()
}
