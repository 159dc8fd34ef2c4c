package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "199.000 ₫", FormatVND(199000))
	assert.Equal(t, "0 ₫", FormatVND(0))
	assert.Equal(t, "1.500.000.000 ₫", FormatVND(1500000000))
}
