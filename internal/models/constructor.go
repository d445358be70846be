package models

// ConstructorGift — конкретный подарок коллекции с полным набором атрибутов.
type ConstructorGift struct {
	GiftNumber int64  `json:"gift_number"`
	Model      string `json:"model"`
	Backdrop   string `json:"backdrop"`
	Symbol     string `json:"symbol"`
	URL        string `json:"url"`
}

// GiftCollection — все подарки коллекции, из них строится дерево атрибутов.
type GiftCollection struct {
	Collection string            `json:"collection"`
	Gifts      []ConstructorGift `json:"gifts"`
}
