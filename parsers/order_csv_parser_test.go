package parsers

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderCSV(t *testing.T) {
	csvData := "order_number,customer,product,due_date,quantity\n" +
		"ORD-001,Acme Corp,Tops,2026-09-15,100\n" +
		"ORD-002,Beta Textiles,Trousers,2026-10-01,50\n"

	records, err := ParseOrderCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ORD-001", records[0].OrderNumber)
	assert.Equal(t, "Trousers", records[1].Product)
	assert.Equal(t, 50, records[1].Quantity)
}

func TestParseOrderCSVWithBOM(t *testing.T) {
	csvData := "\xEF\xBB\xBForder_number,customer,product,due_date,quantity\n" +
		"ORD-001,Acme Corp,Tops,2026-09-15,100\n"

	records, err := ParseOrderCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-001", records[0].OrderNumber)
}

func TestParseOrderCSVSkipsInvalidRows(t *testing.T) {
	csvData := "order_number,customer,product,due_date,quantity\n" +
		",Acme Corp,Tops,2026-09-15,100\n" + // 受注番号なし
		"ORD-002,Beta,Trousers,2026-10-01,zero\n" + // 数量が数値でない
		"ORD-003,Gamma,Suits,someday,10\n" + // 納期が不正
		"ORD-004,Delta,Tops,2026-11-01,0\n" + // 数量1未満
		"ORD-005,Epsilon,Tops,2026-11-01,10\n"

	records, err := ParseOrderCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORD-005", records[0].OrderNumber)
}

func TestParseOrderCSVMissingHeader(t *testing.T) {
	_, err := ParseOrderCSV(strings.NewReader("number,client\nORD-1,Acme\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required header")
}

func TestParseOrderCSVEmpty(t *testing.T) {
	_, err := ParseOrderCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDecodeLegacyPassesThroughUTF8(t *testing.T) {
	data, err := io.ReadAll(DecodeLegacy([]byte("Café")))
	require.NoError(t, err)
	assert.Equal(t, "Café", string(data))
}

func TestDecodeLegacyConvertsWindows1252(t *testing.T) {
	data, err := io.ReadAll(DecodeLegacy([]byte("Caf\xe9")))
	require.NoError(t, err)
	assert.Equal(t, "Café", string(data))
}
