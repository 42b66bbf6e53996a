package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAssetsCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAssetImport_SumsValueColumn(t *testing.T) {
	path := writeAssetsCSV(t,
		"Asset,Value\n"+
			"Brokerage,\"€50,000.00\"\n"+
			"Savings,25000\n"+
			"Crypto,\"1,234.56\"\n")

	importer := &AssetImport{ValueColumn: "Value"}
	total, err := importer.LoadTotal(path)
	require.NoError(t, err)

	assert.True(t, total.Equal(decimal.NewFromFloat(76234.56)), "got %s", total)
}

func TestAssetImport_EuropeanSeparators(t *testing.T) {
	path := writeAssetsCSV(t,
		"Name,Valor\n"+
			"Fondo,\"1.234,50 EUR\"\n"+
			"Piso,\"200.000,00\"\n")

	importer := &AssetImport{ValueColumn: "Valor"}
	total, err := importer.LoadTotal(path)
	require.NoError(t, err)

	assert.True(t, total.Equal(decimal.NewFromFloat(201234.50)), "got %s", total)
}

func TestAssetImport_UnknownColumnListsHeaders(t *testing.T) {
	path := writeAssetsCSV(t, "Asset,Balance\nCash,100\n")

	importer := &AssetImport{ValueColumn: "Value"}
	_, err := importer.LoadTotal(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Value" not found`)
	assert.Contains(t, err.Error(), "Asset, Balance")
}

func TestAssetImport_SkipsBlankCells(t *testing.T) {
	path := writeAssetsCSV(t,
		"Asset,Value\n"+
			"Cash,100\n"+
			"Pending,\n"+
			"Stocks,200\n")

	importer := &AssetImport{ValueColumn: "Value"}
	total, err := importer.LoadTotal(path)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(300)), "got %s", total)
}

func TestAssetImport_RejectsGarbageCells(t *testing.T) {
	path := writeAssetsCSV(t,
		"Asset,Value\n"+
			"Cash,100\n"+
			"Art,priceless\n")

	importer := &AssetImport{ValueColumn: "Value"}
	_, err := importer.LoadTotal(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestAssetImport_NoDataRows(t *testing.T) {
	path := writeAssetsCSV(t, "Asset,Value\n")

	importer := &AssetImport{ValueColumn: "Value"}
	_, err := importer.LoadTotal(path)
	assert.Error(t, err)
}
