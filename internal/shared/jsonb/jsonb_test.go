package jsonb_test

import (
	"testing"

	"cadebeck-hr/internal/shared/jsonb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_ScanFromDriverTypes(t *testing.T) {
	var col jsonb.Column[map[string]string]

	require.NoError(t, col.Scan([]byte(`{"house":"5000.00"}`)))
	assert.Equal(t, "5000.00", col.Data["house"])

	require.NoError(t, col.Scan(`{"transport":"1200.00"}`))
	assert.Equal(t, "1200.00", col.Data["transport"])

	require.NoError(t, col.Scan(nil))
	assert.Nil(t, col.Data)

	assert.Error(t, col.Scan(42))
}

func TestColumn_Value(t *testing.T) {
	v, err := jsonb.Of([]int{1, 2}).Value()
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", v)
}
