package utils

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingInput struct {
	Title string `json:"title" binding:"required,max=10"`
	Price int64  `json:"price" binding:"gt=0"`
	Kind  string `json:"kind" binding:"omitempty,oneof=sale rent"`
}

func TestDescribeBindingError(t *testing.T) {
	tests := []struct {
		name  string
		input listingInput
		want  []string
	}{
		{
			name:  "missing title",
			input: listingInput{Price: 1},
			want:  []string{"title is required"},
		},
		{
			name:  "several failures use json names",
			input: listingInput{Title: "a very long title", Price: 0, Kind: "swap"},
			want: []string{
				"title allows at most 10 characters",
				"price must be greater than 0",
				"kind must be one of: sale, rent",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.input)
			require.Error(t, err)

			got := DescribeBindingError(err)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestDescribeBindingError_PassesThroughDecodeErrors(t *testing.T) {
	assert.Equal(t, "unexpected EOF", DescribeBindingError(errors.New("unexpected EOF")))
}
