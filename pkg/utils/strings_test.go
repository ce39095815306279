package utils_test

import (
	"testing"

	"github.com/lugorito/pedidos-http/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11144477735", utils.OnlyDigits("111.444.777-35"))
	assert.Equal(t, "60000000", utils.OnlyDigits("60000-000"))
	assert.Equal(t, "", utils.OnlyDigits("abc"))
	assert.Equal(t, "", utils.OnlyDigits(""))
}

func TestTrimString(t *testing.T) {
	assert.Equal(t, "abc", utils.TrimString("  abc\t\n"))
	assert.Equal(t, "", utils.TrimString("   "))
}
