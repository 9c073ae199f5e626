package catalog

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

const (
	StoreName        = "THE's Suplementos"
	InstagramURL     = "https://www.instagram.com/thesuplementostore/"
	WhatsAppGreeting = "Ola! Vim pelo site e gostaria de mais informacoes!"

	defaultWhatsAppNumber = "5586999658244"
)

// WhatsAppNumber returns the checkout destination number, overridable via env.
func WhatsAppNumber() string {
	if number := os.Getenv("WHATSAPP_NUMBER"); number != "" {
		return number
	}
	return defaultWhatsAppNumber
}

// FormatPrice renders a price the way the store displays it: two decimals,
// comma as the decimal separator.
func FormatPrice(price float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", price), ".", ",", 1)
}

// WhatsAppLink wraps a message into a wa.me deep link.
func WhatsAppLink(message string) string {
	return "https://wa.me/" + WhatsAppNumber() + "?text=" + url.QueryEscape(message)
}

func ProductMessage(product Product) string {
	return fmt.Sprintf("Ola! Vi o produto %s (%s) no site por R$ %s e gostaria de fechar o pedido!",
		product.Name, product.Brand, FormatPrice(product.Price))
}

func ComboMessage(combo Combo) string {
	return fmt.Sprintf("Ola! Vi o %s no site por R$ %s e gostaria de fechar o pedido!",
		combo.Name, FormatPrice(combo.ComboPrice))
}
