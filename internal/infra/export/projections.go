package export

import (
	"time"

	"github.com/totegamma/logistics-backend/internal/domain"
)

func Ports(ports []domain.Port) Sheet {
	sheet := Sheet{
		Name:    "Ports",
		Headers: []string{"ID", "Port Name", "Port Country", "Active", "Created By", "Created At"},
		Widths:  []float64{38, 24, 16, 8, 16, 22},
	}
	for _, p := range ports {
		sheet.Rows = append(sheet.Rows, []any{
			p.ID, p.Name, p.Country, p.IsActive, p.CreatedBy, stamp(p.CreatedAt),
		})
	}
	return sheet
}

func Vessels(vessels []domain.Vessel) Sheet {
	sheet := Sheet{
		Name:    "Vessels",
		Headers: []string{"ID", "Vessel Name", "Voyage Number", "ETD", "Closing Reefer", "Active", "Created By", "Created At"},
		Widths:  []float64{38, 24, 16, 12, 14, 8, 16, 22},
	}
	for _, v := range vessels {
		sheet.Rows = append(sheet.Rows, []any{
			v.ID, v.Name, v.VoyageNumber, date(v.ETD), date(v.ClosingReefer), v.IsActive, v.CreatedBy, stamp(v.CreatedAt),
		})
	}
	return sheet
}

// Parties writes one row per party of tree; the label comes from the tree
// so customers and vendors export under their own names.
func Parties(tree domain.PartyTree, parties []domain.Party) Sheet {
	label := tree.Root.Label
	sheet := Sheet{
		Name:    label + "s",
		Headers: []string{"ID", label + " Name", label + " Code", "NPWP", "Active", "Created By", "Created At"},
		Widths:  []float64{38, 28, 14, 24, 8, 16, 22},
	}
	for _, p := range parties {
		sheet.Rows = append(sheet.Rows, []any{
			p.ID, p.Name, p.Code, text(p.NPWP), p.IsActive, p.CreatedBy, stamp(p.CreatedAt),
		})
	}
	return sheet
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
