package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/totegamma/logistics-backend/internal/domain"
)

func readRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheet}, f.GetSheetList())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWritePorts(t *testing.T) {
	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	port := domain.Port{ID: "P1", Name: "Jakarta", Country: "ID"}
	port.Stamp("alice", created)

	data, err := Write(Ports([]domain.Port{port}))
	require.NoError(t, err)

	rows := readRows(t, data, "Ports")
	require.Len(t, rows, 2)
	assert.Equal(t, "Port Name", rows[0][1])
	assert.Equal(t, []string{"P1", "Jakarta", "ID", "TRUE", "alice", "2025-01-10T08:00:00Z"}, rows[1])
}

func TestWriteVendorsUsesTreeLabels(t *testing.T) {
	npwp := "01.234"
	parties := []domain.Party{
		{ID: "V1", Name: "Meratus", Code: "MRT", NPWP: &npwp},
		{ID: "V2", Name: "Samudera", Code: "SMD"},
	}

	data, err := Write(Parties(domain.VendorTree, parties))
	require.NoError(t, err)

	rows := readRows(t, data, "Vendors")
	require.Len(t, rows, 3)
	assert.Equal(t, "Vendor Name", rows[0][1])
	assert.Equal(t, "01.234", rows[1][3])
	assert.Equal(t, "", rows[2][3])
}

func TestWriteVesselDates(t *testing.T) {
	etd := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	data, err := Write(Vessels([]domain.Vessel{{ID: "S1", Name: "KM Bahari", VoyageNumber: "024N", ETD: &etd}}))
	require.NoError(t, err)

	rows := readRows(t, data, "Vessels")
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-04-02", rows[1][3])
}

func TestWriteEmpty(t *testing.T) {
	data, err := Write(Ports(nil))
	require.NoError(t, err)

	rows := readRows(t, data, "Ports")
	assert.Len(t, rows, 1)
}
