package catalog

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesuplementos/loja-api/models"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "119,90", FormatPrice(119.90))
	assert.Equal(t, "0,00", FormatPrice(0))
	assert.Equal(t, "1234,50", FormatPrice(1234.5))
	assert.Equal(t, "239,80", FormatPrice(119.90*2))
}

func TestWhatsAppLinkEscapesMessage(t *testing.T) {
	link := WhatsAppLink("Ola! Tudo bem?")

	require.True(t, strings.HasPrefix(link, "https://wa.me/"+WhatsAppNumber()+"?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Ola! Tudo bem?", parsed.Query().Get("text"))
}

func TestWhatsAppNumberEnvOverride(t *testing.T) {
	t.Setenv("WHATSAPP_NUMBER", "5511999990000")
	assert.Equal(t, "5511999990000", WhatsAppNumber())
	assert.Contains(t, WhatsAppLink("oi"), "wa.me/5511999990000")
}

func TestCheckoutMessageSingleItem(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Creatina Monohidratada 300g", Price: 89.90, Quantity: 1, Type: models.ItemTypeProduct},
	}

	message := CheckoutMessage(items, 89.90)

	assert.True(t, strings.HasPrefix(message, "Ola! Gostaria de fazer o seguinte pedido:\n\n"))
	assert.Contains(t, message, "1. *Creatina Monohidratada 300g*\n   Qtd: 1 x R$ 89,90\n\n")
	assert.NotContains(t, message, "= R$", "single units show no line subtotal")
	assert.Contains(t, message, "---\n*Total: R$ 89,90*")
	assert.True(t, strings.HasSuffix(message, "Vi os produtos no site e gostaria de fechar o pedido!"))
}

func TestCheckoutMessageBrandAndSubtotal(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Whey Protein Concentrado 900g", Brand: "Growth", Price: 119.90, Quantity: 2, Type: models.ItemTypeProduct},
		{Name: "Combo Iniciante", Price: 199.90, Quantity: 1, Type: models.ItemTypeCombo},
	}

	message := CheckoutMessage(items, 439.70)

	assert.Contains(t, message, "1. *Whey Protein Concentrado 900g* (Growth)\n   Qtd: 2 x R$ 119,90 = R$ 239,80\n\n")
	assert.Contains(t, message, "2. *Combo Iniciante*\n   Qtd: 1 x R$ 199,90\n\n")
	assert.Contains(t, message, "*Total: R$ 439,70*")
}

func TestProductAndComboMessages(t *testing.T) {
	product, ok := FindProduct("1")
	require.True(t, ok)
	msg := ProductMessage(product)
	assert.Contains(t, msg, product.Name)
	assert.Contains(t, msg, product.Brand)
	assert.Contains(t, msg, FormatPrice(product.Price))

	combo, ok := FindCombo(Combos[0].ID)
	require.True(t, ok)
	cmsg := ComboMessage(combo)
	assert.Contains(t, cmsg, combo.Name)
	assert.Contains(t, cmsg, FormatPrice(combo.ComboPrice))
}

func TestFindProductUnknownID(t *testing.T) {
	_, ok := FindProduct("does-not-exist")
	assert.False(t, ok)
}

func TestCatalogDataConsistency(t *testing.T) {
	categories := make(map[Category]bool)
	for _, c := range Categories {
		categories[c.ID] = true
	}

	seen := make(map[string]bool)
	for _, p := range Products {
		assert.Falsef(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.Truef(t, categories[p.Category], "product %s has unknown category %s", p.ID, p.Category)
		assert.Greaterf(t, p.Price, 0.0, "product %s", p.ID)
	}

	for _, combo := range Combos {
		assert.Greater(t, combo.OriginalPrice, combo.ComboPrice, combo.ID)
		assert.NotEmpty(t, combo.Products, combo.ID)
	}
}
