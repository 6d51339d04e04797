package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"foodcart/foodcart-svc/internal/domain"

	"github.com/nyaruka/phonenumbers"
)

const (
	msgRequired     = "This field is required."
	msgNull         = "This field may not be null."
	msgNotString    = "Not a valid string."
	msgBlank        = "This field may not be blank."
	msgInvalidPhone = "Enter a valid phone number."
	msgEmptyList    = "This list may not be empty."
)

// OrderValidator checks a decoded order payload and normalizes it into an
// OrderIntent. Numbers must be decoded as json.Number.
type OrderValidator struct {
	products ProductRepository
	region   string
}

func NewOrderValidator(products ProductRepository, region string) *OrderValidator {
	if region == "" {
		region = "RU"
	}
	return &OrderValidator{products: products, region: region}
}

// Validate returns a ValidationError carrying every problem it found, or an
// error wrapping ErrPersistence when the product lookup fails.
func (v *OrderValidator) Validate(ctx context.Context, payload any) (domain.OrderIntent, error) {
	data, ok := payload.(map[string]any)
	if !ok {
		return domain.OrderIntent{}, ValidationError{
			"non_field_errors": {fmt.Sprintf("Invalid data. Expected an object but got type %q.", jsonType(payload))},
		}
	}

	errs := ValidationError{}
	intent := domain.OrderIntent{
		FirstName: textField(data, "firstname", errs),
		LastName:  textField(data, "lastname", errs),
		Address:   textField(data, "address", errs),
	}

	if phone := textField(data, "phonenumber", errs); phone != "" {
		normalized, ok := v.normalizePhone(phone)
		if ok {
			intent.PhoneNumber = normalized
		} else {
			errs.add("phonenumber", msgInvalidPhone)
		}
	}

	items, itemsOK := productItems(data, errs)
	if itemsOK {
		if err := v.checkExistence(ctx, items, errs); err != nil {
			return domain.OrderIntent{}, err
		}
		intent.Items = items
	}

	if len(errs) > 0 {
		return domain.OrderIntent{}, errs
	}
	return intent, nil
}

func (v *OrderValidator) normalizePhone(raw string) (string, bool) {
	num, err := phonenumbers.Parse(raw, v.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

func (v *OrderValidator) checkExistence(ctx context.Context, items []domain.IntentItem, errs ValidationError) error {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	existing, err := v.products.ExistingProductIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("%w: check products: %w", ErrPersistence, err)
	}
	for i, item := range items {
		if !existing[item.ProductID] {
			errs.add("products", fmt.Sprintf(`Item #%d: invalid pk "%d" - object does not exist.`, i, item.ProductID))
		}
	}
	return nil
}

// textField returns the trimmed value, or "" after recording an error.
func textField(data map[string]any, field string, errs ValidationError) string {
	raw, ok := data[field]
	if !ok {
		errs.add(field, msgRequired)
		return ""
	}
	if raw == nil {
		errs.add(field, msgNull)
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		errs.add(field, msgNotString)
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		errs.add(field, msgBlank)
	}
	return s
}

// productItems reports false when the list is missing or any element is
// malformed, in which case product existence is not checked.
func productItems(data map[string]any, errs ValidationError) ([]domain.IntentItem, bool) {
	raw, ok := data["products"]
	if !ok {
		errs.add("products", msgRequired)
		return nil, false
	}
	if raw == nil {
		errs.add("products", msgNull)
		return nil, false
	}
	list, ok := raw.([]any)
	if !ok {
		errs.add("products", fmt.Sprintf("Expected a list of items but got type %q.", jsonType(raw)))
		return nil, false
	}
	if len(list) == 0 {
		errs.add("products", msgEmptyList)
		return nil, false
	}

	items := make([]domain.IntentItem, 0, len(list))
	valid := true
	for i, element := range list {
		obj, ok := element.(map[string]any)
		if !ok {
			errs.add("products", fmt.Sprintf("Item #%d: expected an object but got type %q.", i, jsonType(element)))
			valid = false
			continue
		}

		rawID, ok := obj["product"]
		if !ok {
			errs.add("products", fmt.Sprintf(`Item #%d: "product" is required.`, i))
			valid = false
			continue
		}

		item := domain.IntentItem{Quantity: 1}
		if item.ProductID, ok = positiveInt(rawID); !ok {
			errs.add("products", fmt.Sprintf(`Item #%d: "product" must be an integer >= 1, got %s.`, i, rawJSON(rawID)))
			valid = false
		}
		if rawQty, present := obj["quantity"]; present {
			if item.Quantity, ok = positiveInt(rawQty); !ok {
				errs.add("products", fmt.Sprintf(`Item #%d: "quantity" must be an integer >= 1, got %s.`, i, rawJSON(rawQty)))
				valid = false
			}
		}
		items = append(items, item)
	}
	return items, valid
}

// positiveInt accepts only integral JSON numbers >= 1. Booleans and
// fractions such as 1.0 are rejected.
func positiveInt(raw any) (int, bool) {
	var n int64
	switch val := raw.(type) {
	case json.Number:
		parsed, err := val.Int64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case int:
		n = int64(val)
	case int64:
		n = val
	default:
		return 0, false
	}
	if n < 1 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func jsonType(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

func rawJSON(raw any) string {
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprintf("%v", raw)
	}
	return string(b)
}
