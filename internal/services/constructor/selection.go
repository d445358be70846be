// Package constructor реализует каскадный выбор атрибутов подарка
// (коллекция → модель → фон → символ) и построение вариантов для выбора.
package constructor

import (
	"errors"
	"fmt"
)

// Field — редактируемое поле подарка.
type Field string

// Поля подарка в порядке каскада.
const (
	FieldGifts      Field = "gifts"
	FieldModel      Field = "model"
	FieldBackground Field = "background"
	FieldPattern    Field = "pattern"
)

// Mode — режим редактирования подарка.
type Mode string

const (
	// ModeConstructor допускает только существующие сочетания атрибутов.
	ModeConstructor Mode = "constructor"
	// ModeFreeform допускает любые сочетания.
	ModeFreeform Mode = "freeform"
)

// ErrUnknownField возвращается для неизвестного поля.
var ErrUnknownField = errors.New("unknown field")

// ParseMode разбирает режим, пустая строка означает constructor.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeConstructor:
		return ModeConstructor, nil
	case ModeFreeform:
		return ModeFreeform, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Selection — текущий выбор атрибутов.
type Selection struct {
	Collection string `json:"collection"`
	Model      string `json:"model,omitempty"`
	Backdrop   string `json:"backdrop,omitempty"`
	Symbol     string `json:"symbol,omitempty"`
	GiftNumber int64  `json:"gift_number,omitempty"`
}

// SelectCollection выбирает коллекцию и сбрасывает зависимые атрибуты.
func (s Selection) SelectCollection(name string) Selection {
	if s.Collection == name {
		return s
	}
	return Selection{Collection: name}
}

// SelectModel выбирает модель и сбрасывает фон и символ.
func (s Selection) SelectModel(model string) Selection {
	if s.Model == model {
		return s
	}
	return Selection{Collection: s.Collection, Model: model}
}

// SelectBackdrop выбирает фон и сбрасывает символ.
func (s Selection) SelectBackdrop(backdrop string) Selection {
	if s.Backdrop == backdrop {
		return s
	}
	return Selection{Collection: s.Collection, Model: s.Model, Backdrop: backdrop}
}

// SelectSymbol выбирает символ вместе с номером подарка.
func (s Selection) SelectSymbol(symbol string, giftNumber int64) Selection {
	s.Symbol = symbol
	s.GiftNumber = giftNumber
	return s
}

// Select применяет выбор значения для поля.
func (s Selection) Select(field Field, value string, giftNumber int64) (Selection, error) {
	switch field {
	case FieldGifts:
		return s.SelectCollection(value), nil
	case FieldModel:
		return s.SelectModel(value), nil
	case FieldBackground:
		return s.SelectBackdrop(value), nil
	case FieldPattern:
		return s.SelectSymbol(value, giftNumber), nil
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
}
