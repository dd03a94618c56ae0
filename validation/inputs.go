package validation

import (
	"menuapi-backend/models"
)

// RestaurantInput holds the restaurant fields a write will set; nil means untouched.
type RestaurantInput struct {
	Name        *string
	KitchenType *string
	City        *string
	UF          *string
	Contact     *string
	IsActive    *bool

	// HasOpening is true when the payload carried an opening array (possibly empty).
	HasOpening bool
	Opening    []OpeningInput
}

// Apply copies the set fields onto r. Opening hours and isActive are handled by the caller.
func (in RestaurantInput) Apply(r *models.Restaurant) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.KitchenType != nil {
		r.KitchenType = *in.KitchenType
	}
	if in.City != nil {
		r.City = *in.City
	}
	if in.UF != nil {
		r.UF = *in.UF
	}
	if in.Contact != nil {
		r.Contact = *in.Contact
	}
}

// SectionInput holds the section fields a write will set.
type SectionInput struct {
	Name        *string
	Description *string
}

func (in SectionInput) Apply(s *models.Section) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
}

// ItemInput holds the item fields a write will set. Price is already truncated to cents.
type ItemInput struct {
	Name        *string
	Description *string
	Price       *float64
}

func (in ItemInput) Apply(i *models.Item) {
	if in.Name != nil {
		i.Name = *in.Name
	}
	if in.Description != nil {
		i.Description = *in.Description
	}
	if in.Price != nil {
		i.Price = *in.Price
	}
}

// Restaurant checks a restaurant payload.
func Restaurant(mode Mode, payload map[string]any) (RestaurantInput, error) {
	fields, err := Check(KindRestaurant, mode, payload)
	if err != nil {
		return RestaurantInput{}, err
	}

	in := RestaurantInput{
		Name:        fields.text("name"),
		KitchenType: fields.text("kitchenType"),
		City:        fields.text("city"),
		UF:          fields.text("uf"),
		Contact:     fields.text("contact"),
		IsActive:    fields.flag("isActive"),
	}
	if opening, ok := fields["opening"].([]OpeningInput); ok {
		in.HasOpening = true
		in.Opening = opening
	}
	return in, nil
}

// Section checks a section payload.
func Section(mode Mode, payload map[string]any) (SectionInput, error) {
	fields, err := Check(KindSection, mode, payload)
	if err != nil {
		return SectionInput{}, err
	}
	return SectionInput{
		Name:        fields.text("name"),
		Description: fields.text("description"),
	}, nil
}

// Item checks an item payload.
func Item(mode Mode, payload map[string]any) (ItemInput, error) {
	fields, err := Check(KindItem, mode, payload)
	if err != nil {
		return ItemInput{}, err
	}
	return ItemInput{
		Name:        fields.text("name"),
		Description: fields.text("description"),
		Price:       fields.number("price"),
	}, nil
}

func (f Fields) text(key string) *string {
	if v, ok := f[key].(string); ok {
		return &v
	}
	return nil
}

func (f Fields) number(key string) *float64 {
	if v, ok := f[key].(float64); ok {
		return &v
	}
	return nil
}

func (f Fields) flag(key string) *bool {
	if v, ok := f[key].(bool); ok {
		return &v
	}
	return nil
}
