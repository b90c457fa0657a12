package models

// Category groups expenses, e.g. housing or groceries.
type Category struct {
	OwnedModel
	Name string `json:"name" gorm:"size:100;not null"`
	Icon string `json:"icon" gorm:"size:10"`
}

// PaymentType is a way of paying for a variable expense, e.g. credit card.
type PaymentType struct {
	OwnedModel
	Name string `json:"name" gorm:"size:50;not null"`
}

// DefaultCategories returns the categories that new users start with.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Moradia", Icon: "🏠"},
		{Name: "Investimentos", Icon: "🏡"},
		{Name: "Roupa", Icon: "👚"},
		{Name: "Empréstimos", Icon: "💰"},
		{Name: "Estudos", Icon: "📚"},
		{Name: "Cartões de Crédito", Icon: "💳"},
		{Name: "Lazer", Icon: "🕹️"},
		{Name: "Streaming", Icon: "🎞️"},
		{Name: "Disk/Adega", Icon: "🍻"},
		{Name: "Saúde", Icon: "🚑"},
		{Name: "Veículos", Icon: "🚗"},
		{Name: "Supermercado", Icon: "🛒"},
		{Name: "Alimentação", Icon: "🍴"},
		{Name: "Petshop", Icon: "🐈"},
		{Name: "Delivery", Icon: "🛵"},
		{Name: "Dívidas com juros altos", Icon: "🚨"},
		{Name: "Outras despesas", Icon: "📌"},
	}
}
