package catalog

type Category string

const (
	CategoryMassa     Category = "massa"
	CategoryEmagrecer Category = "emagrecer"
	CategoryEnergia   Category = "energia"
	CategorySaude     Category = "saude"
)

type CategoryInfo struct {
	ID          Category `json:"id"`
	Label       string   `json:"label"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Category      Category `json:"category"`
	Badge         string   `json:"badge,omitempty"`
	Image         string   `json:"image,omitempty"`
}

type Combo struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Products      []string `json:"products"`
	OriginalPrice float64  `json:"originalPrice"`
	ComboPrice    float64  `json:"comboPrice"`
	Badge         string   `json:"badge"`
}

type Testimonial struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Rating int    `json:"rating"`
	Quote  string `json:"quote"`
}

// FallbackBanner is the static banner set shown before any banner rows exist;
// it also seeds the banners table on first boot.
type FallbackBanner struct {
	Title     string
	Subtitle  string
	CTA       string
	CTALink   string
	BgColor   string
	TextColor string
	Highlight string
	Tags      []string
}

var Categories = []CategoryInfo{
	{ID: CategoryMassa, Label: "Ganhar Massa", Icon: "dumbbell", Description: "Whey, Creatina, Hipercaloricos"},
	{ID: CategoryEmagrecer, Label: "Emagrecer", Icon: "flame", Description: "Termogenicos, Whey Isolado, L-Carnitina"},
	{ID: CategoryEnergia, Label: "Energia & Foco", Icon: "zap", Description: "Pre-treinos, Cafeina, BCAA"},
	{ID: CategorySaude, Label: "Saude & Bem-estar", Icon: "heart", Description: "Vitaminas, Omega 3, Colageno"},
}

var Products = []Product{
	{ID: "1", Name: "Whey Protein Concentrado 900g", Brand: "Growth", Description: "Proteina de alta qualidade para ganho de massa muscular", Price: 119.9, OriginalPrice: 149.9, Category: CategoryMassa, Badge: "Mais Vendido"},
	{ID: "2", Name: "Creatina Monohidratada 300g", Brand: "Growth", Description: "Aumento de forca e performance nos treinos", Price: 89.9, OriginalPrice: 109.9, Category: CategoryMassa, Badge: "-18%"},
	{ID: "3", Name: "Hipercalorico Mass 3kg", Brand: "Max Titanium", Description: "Ganho de peso com carboidratos e proteinas", Price: 99.9, OriginalPrice: 129.9, Category: CategoryMassa},
	{ID: "4", Name: "Whey Protein Isolado 900g", Brand: "Growth", Description: "Proteina isolada com baixo teor de gordura", Price: 179.9, OriginalPrice: 219.9, Category: CategoryEmagrecer, Badge: "-22%"},
	{ID: "5", Name: "Termogenico Flame 60caps", Brand: "Black Skull", Description: "Acelerador metabolico para queima de gordura", Price: 69.9, OriginalPrice: 89.9, Category: CategoryEmagrecer},
	{ID: "6", Name: "L-Carnitina 2000 480ml", Brand: "Atlhetica", Description: "Auxilia na queima de gordura durante o exercicio", Price: 49.9, OriginalPrice: 64.9, Category: CategoryEmagrecer, Badge: "Oferta"},
	{ID: "7", Name: "Pre-Treino Insane 300g", Brand: "Darkness", Description: "Energia e foco extremo para seus treinos", Price: 129.9, OriginalPrice: 159.9, Category: CategoryEnergia, Badge: "Mais Vendido"},
	{ID: "8", Name: "Cafeina 200mg 60caps", Brand: "Growth", Description: "Energia e disposicao para o dia a dia", Price: 29.9, OriginalPrice: 39.9, Category: CategoryEnergia},
	{ID: "9", Name: "BCAA 2:1:1 120caps", Brand: "Max Titanium", Description: "Recuperacao muscular pos-treino", Price: 49.9, OriginalPrice: 59.9, Category: CategoryEnergia},
	{ID: "10", Name: "Multivitaminico A-Z 90caps", Brand: "Growth", Description: "Vitaminas e minerais essenciais para o corpo", Price: 39.9, OriginalPrice: 49.9, Category: CategorySaude},
	{ID: "11", Name: "Omega 3 120caps", Brand: "Growth", Description: "Acidos graxos para saude cardiovascular", Price: 44.9, OriginalPrice: 54.9, Category: CategorySaude, Badge: "Oferta"},
	{ID: "12", Name: "Colageno Hidrolisado 300g", Brand: "Atlhetica", Description: "Saude da pele, cabelos, unhas e articulacoes", Price: 59.9, OriginalPrice: 74.9, Category: CategorySaude},
}

var Combos = []Combo{
	{ID: "c1", Name: "Kit Massa Muscular", Products: []string{"Whey Protein Concentrado 900g", "Creatina 300g", "BCAA 120caps"}, OriginalPrice: 259.7, ComboPrice: 229.9, Badge: "Economize R$ 29,80"},
	{ID: "c2", Name: "Kit Definicao Total", Products: []string{"Whey Isolado 900g", "Termogenico 60caps", "L-Carnitina 480ml"}, OriginalPrice: 299.7, ComboPrice: 264.9, Badge: "Economize R$ 34,80"},
	{ID: "c3", Name: "Kit Saude Completa", Products: []string{"Multivitaminico 90caps", "Omega 3 120caps", "Glutamina 300g"}, OriginalPrice: 144.7, ComboPrice: 124.9, Badge: "Economize R$ 19,80"},
}

var Testimonials = []Testimonial{
	{Name: "Carlos Silva", City: "Teresina, PI", Rating: 5, Quote: "Entrega super rapida aqui em Teresina! Produtos originais e atendimento nota 10. Recomendo demais!"},
	{Name: "Ana Beatriz", City: "Timon, MA", Rating: 5, Quote: "Melhor loja de suplementos da regiao! Precos imbativeis e o WhatsApp deles responde muito rapido."},
	{Name: "Rafael Costa", City: "Parnaiba, PI", Rating: 5, Quote: "Mesmo morando no interior, recebi tudo certinho e rapido. Whey Growth com o melhor preco!"},
	{Name: "Juliana Mendes", City: "Teresina, PI", Rating: 5, Quote: "Compro todo mes com eles. Combo de Massa Muscular vale cada centavo! Servico excelente."},
}

var FallbackBanners = []FallbackBanner{
	{
		Title:     "WHEY PROTEIN",
		Subtitle:  "Os melhores precos em Whey Concentrado, Isolado e Hidrolisado",
		CTA:       "APROVEITE",
		CTALink:   "#produtos",
		BgColor:   "from-[#8B2500] via-[#A0380A] to-[#6E370D]",
		TextColor: "text-white",
		Highlight: "ATE 30% OFF",
		Tags:      []string{"Pos-treino", "Ganho de massa", "Recuperacao"},
	},
	{
		Title:     "CREATINA PURA",
		Subtitle:  "Monohidratada de alta pureza para maximo desempenho",
		CTA:       "VER OFERTAS",
		CTALink:   "#produtos",
		BgColor:   "from-[#1a1a2e] via-[#16213e] to-[#0f3460]",
		TextColor: "text-white",
		Highlight: "MAIS VENDIDO",
		Tags:      []string{"Forca", "Performance", "Resistencia"},
	},
	{
		Title:     "COMBOS ESPECIAIS",
		Subtitle:  "Monte seu kit com desconto exclusivo e economize",
		CTA:       "VER COMBOS",
		CTALink:   "#combos",
		BgColor:   "from-[#2d1b00] via-[#4a2c00] to-[#6E370D]",
		TextColor: "text-white",
		Highlight: "ECONOMIZE",
		Tags:      []string{"Kits prontos", "Desconto", "Frete gratis"},
	},
	{
		Title:     "PRE-TREINOS",
		Subtitle:  "Energia e foco extremo para treinos intensos",
		CTA:       "CONFIRA",
		CTALink:   "#produtos",
		BgColor:   "from-[#1a0a2e] via-[#2d1052] to-[#4a1a7a]",
		TextColor: "text-white",
		Highlight: "NOVIDADE",
		Tags:      []string{"Energia", "Foco", "Pump"},
	},
}

// FindProduct looks a product up by its catalog id.
func FindProduct(id string) (Product, bool) {
	for _, product := range Products {
		if product.ID == id {
			return product, true
		}
	}
	return Product{}, false
}

// FindCombo looks a combo up by its catalog id.
func FindCombo(id string) (Combo, bool) {
	for _, combo := range Combos {
		if combo.ID == id {
			return combo, true
		}
	}
	return Combo{}, false
}
