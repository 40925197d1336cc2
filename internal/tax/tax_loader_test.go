package tax_test

import (
	"testing"

	"cadebeck-hr/internal/tax"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTables_EmptyPathUsesDefaults(t *testing.T) {
	tables, err := tax.LoadTables("")
	require.NoError(t, err)
	assert.Equal(t, tax.DefaultTables().Version, tables.Version)
	assert.Len(t, tables.PAYEBrackets, 7)
	assert.Len(t, tables.NHIFBands, 17)
}

func TestLoadTables_FromYAML(t *testing.T) {
	tables, err := tax.LoadTables("testdata/tables_2026.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2026-monthly", tables.Version)
	assert.Len(t, tables.PAYEBrackets, 5)
	assert.Nil(t, tables.PAYEBrackets[4].Max)
	assert.True(t, dec("0.325").Equal(tables.PAYEBrackets[3].Rate))

	calc := tax.NewCalculator(tables)
	assert.True(t, dec("400").Equal(calc.CalculateNHIF(dec("9000"))))

	nssf := calc.CalculateNSSF(dec("80000"))
	assert.True(t, dec("480").Equal(nssf.Tier1))
	assert.True(t, dec("3840").Equal(nssf.Tier2))
}

func TestLoadTables_RejectsGappedBands(t *testing.T) {
	_, err := tax.LoadTables("testdata/tables_gap.yaml")
	assert.Error(t, err)
}

func TestLoadTables_MissingFile(t *testing.T) {
	_, err := tax.LoadTables("testdata/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestDefaultTables_Validate(t *testing.T) {
	assert.NoError(t, tax.DefaultTables().Validate())

	broken := tax.DefaultTables()
	broken.PAYEBrackets = nil
	assert.ErrorIs(t, broken.Validate(), tax.ErrNoBrackets)
}
