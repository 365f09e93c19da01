package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idHolder struct {
	ID string `json:"id" validate:"account_id"`
}

type sortHolder struct {
	SortBy  string `json:"sortBy" validate:"sort_key"`
	SortDir string `json:"sortDir" validate:"sort_direction"`
}

type strategyHolder struct {
	Strategy string `json:"strategy" validate:"payoff_strategy"`
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}

func TestAccountID(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		id    string
		valid bool
	}{
		{id: "", valid: true},
		{id: "card-1", valid: true},
		{id: "c3f1d2e4-0b1a-4c5d-9e8f-123456789abc", valid: true},
		{id: "visa.gold:2024_01", valid: true},
		{id: "has space", valid: false},
		{id: "semi;colon", valid: false},
		{id: "x123456789x123456789x123456789x123456789x123456789x123456789xxxxx", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := v.Struct(idHolder{ID: tt.id})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSortKeyAndDirection(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(sortHolder{}))
	assert.NoError(t, v.Struct(sortHolder{SortBy: "interestPer100", SortDir: "DESC"}))
	assert.NoError(t, v.Struct(sortHolder{SortBy: "utilization", SortDir: "asc"}))

	err := v.Struct(sortHolder{SortBy: "color", SortDir: "up"})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := []string{}
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"sortBy", "sortDir"}, fields)
}

func TestPayoffStrategy(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(strategyHolder{Strategy: "avalanche"}))
	assert.NoError(t, v.Struct(strategyHolder{Strategy: "Snowball"}))
	assert.Error(t, v.Struct(strategyHolder{Strategy: ""}))
	assert.Error(t, v.Struct(strategyHolder{Strategy: "hybrid"}))
}

type nestedCard struct {
	Name string `json:"name" validate:"required,max=5"`
}

type EmbeddedCards struct {
	Cards []nestedCard `json:"cards" validate:"dive"`
}

type cardsRequest struct {
	EmbeddedCards
	SortBy string `json:"sortBy" validate:"sort_key"`
}

func TestFieldMessages(t *testing.T) {
	v := NewValidator()

	err := v.Struct(cardsRequest{
		EmbeddedCards: EmbeddedCards{Cards: []nestedCard{{Name: "ok"}, {Name: ""}, {Name: "toolong"}}},
		SortBy:        "color",
	})
	require.Error(t, err)

	messages, ok := FieldMessages(err)
	require.True(t, ok)

	assert.Equal(t, "is required", messages["cards[1].name"])
	assert.Equal(t, "must be at most 5 characters long", messages["cards[2].name"])
	assert.Contains(t, messages["sortBy"], "must be one of")
	assert.Len(t, messages, 3)
}

func TestFieldMessages_NotValidationError(t *testing.T) {
	messages, ok := FieldMessages(assert.AnError)

	assert.False(t, ok)
	assert.Nil(t, messages)
}
