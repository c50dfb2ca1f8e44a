package usage

import (
	"strings"
	"testing"

	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTabular(t *testing.T) {
	input := strings.Join([]string{
		"admin_username,full_name,phone",
		"shop_tehran,Ali Rezaei,+98912000000",
		"shop_shiraz,,",
	}, "\n")

	rows, err := ReadTabular(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"shop_tehran", "Ali Rezaei", "+98912000000"}, rows[1])
	assert.Equal(t, "shop_shiraz", rows[2][0])
}

func TestReadTabularAllowsRaggedRows(t *testing.T) {
	rows, err := ReadTabular(strings.NewReader("a,b,c\nshop_tehran\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], 1)
}

func TestReadTabularRejectsMalformedCSV(t *testing.T) {
	_, err := ReadTabular(strings.NewReader("a,\"unclosed\nb,c"))
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestReadTabularEmptyInput(t *testing.T) {
	rows, err := ReadTabular(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
