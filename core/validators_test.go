package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorsTestForm struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"omitempty,oneof=A1 A2"`
}

func TestInitValidators(t *testing.T) {
	translator := NewTranslator()
	validate := validator.New()
	InitValidators(validate, translator)

	err := validate.Struct(validatorsTestForm{Level: "C2"})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)

	fldErrs := TranslateErrors(vErrs, translator)
	assert.Equal(t, "ce champ est obligatoire", fldErrs["name"], "json names and french texts")
	assert.Contains(t, fldErrs, "level")
	assert.NotContains(t, fldErrs, "Level")
	assert.Len(t, fldErrs, 2)

	assert.NoError(t, validate.Struct(validatorsTestForm{Name: "x", Level: "A2"}))
}
