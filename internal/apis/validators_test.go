package apis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldKeyFormat(t *testing.T) {
	valid := []string{"platform", "coverArt", "rating_10", "a", "A1_b2"}
	for _, key := range valid {
		err := V().Var(key, "fieldKeyFormatValidator")
		assert.NoError(t, err, key)
	}

	invalid := []string{"1platform", "_platform", "plat-form", "plat form", "plat.form", "ключ"}
	for _, key := range invalid {
		err := V().Var(key, "fieldKeyFormatValidator")
		assert.Error(t, err, key)
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	assert.NoError(t, V().Struct(&RegisterRequest{Email: "a@b.c", Password: "secret1"}))
	assert.Error(t, V().Struct(&RegisterRequest{Email: "ab", Password: "secret1"}), "email too short")
	assert.Error(t, V().Struct(&RegisterRequest{Email: "a@b.c", Password: "short"}), "password too short")
	assert.Error(t, V().Struct(&RegisterRequest{Email: "", Password: "secret1"}), "email required")
}

func TestCollectionCreateRequestValidation(t *testing.T) {
	assert.NoError(t, V().Struct(&CollectionCreateRequest{Name: "My Games"}))
	assert.Error(t, V().Struct(&CollectionCreateRequest{Name: ""}), "name required")

	long := make([]byte, 121)
	for i := range long {
		long[i] = 'x'
	}
	assert.Error(t, V().Struct(&CollectionCreateRequest{Name: string(long)}), "name too long")

	desc := string(make([]byte, 501))
	assert.Error(t, V().Struct(&CollectionCreateRequest{Name: "ok", Description: &desc}), "description too long")
}

func TestFieldCreateRequestValidation(t *testing.T) {
	assert.NoError(t, V().Struct(&FieldCreateRequest{FieldKey: "platform", Label: "Platform", DataType: "text"}))
	assert.Error(t, V().Struct(&FieldCreateRequest{FieldKey: "platform", Label: "Platform", DataType: "blob"}), "unsupported data type")
	assert.Error(t, V().Struct(&FieldCreateRequest{FieldKey: "1platform", Label: "Platform", DataType: "text"}), "bad field key")
	assert.Error(t, V().Struct(&FieldCreateRequest{FieldKey: "", Label: "Platform", DataType: "text"}), "field key required")
}

func TestItemCreateRequestValidation(t *testing.T) {
	assert.NoError(t, V().Struct(&ItemCreateRequest{Title: "Doom"}))
	assert.Error(t, V().Struct(&ItemCreateRequest{Title: ""}), "title required")

	notes := string(make([]byte, 2001))
	assert.Error(t, V().Struct(&ItemCreateRequest{Title: "Doom", Notes: &notes}), "notes too long")
}

func TestValidateOptionsJson(t *testing.T) {
	assert.NoError(t, validateOptionsJson("single_select", []byte(`{"options": ["PC", "PS5"]}`)))
	assert.NoError(t, validateOptionsJson("multi_select", []byte(`{"options": []}`)))
	assert.NoError(t, validateOptionsJson("single_select", nil), "absent options allowed")
	assert.NoError(t, validateOptionsJson("text", []byte(`{"whatever": true}`)), "non-select types unchecked")

	assert.Error(t, validateOptionsJson("single_select", []byte(`{"choices": ["PC"]}`)), "missing options key")
	assert.Error(t, validateOptionsJson("single_select", []byte(`{"options": "PC"}`)), "options not a list")
	assert.Error(t, validateOptionsJson("multi_select", []byte(`{"options": [{"v": 1}]}`)), "non-scalar option")
}
