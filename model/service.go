package model

const (
	ServiceTitleField = "title"
	ServicePriceField = "price"
)

// Service is a catalog item as stored. The catalog is maintained outside
// this server, so every stored field is passed through untouched.
type Service map[string]interface{}

func (s Service) Title() string {
	title, _ := s[ServiceTitleField].(string)
	return title
}

// Price reports numeric prices of any width; anything else is 0.
func (s Service) Price() float64 {
	switch price := s[ServicePriceField].(type) {
	case float64:
		return price
	case float32:
		return float64(price)
	case int32:
		return float64(price)
	case int64:
		return float64(price)
	case int:
		return float64(price)
	}
	return 0
}
