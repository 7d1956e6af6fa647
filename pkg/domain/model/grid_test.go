package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func gridEntry(day time.Time, first, last string, hours float64) model.TimeEntry {
	return model.TimeEntry{
		StartTime:     day,
		UserFirstName: first,
		UserLastName:  last,
		UserID:        types.UserID(first),
		HoursRounded:  hours,
	}
}

func TestBuildHoursGrid(t *testing.T) {
	start := date(2024, time.June, 16)
	end := date(2024, time.June, 18)

	all := []model.TimeEntry{
		gridEntry(date(2024, time.June, 17), "Ada", "Okafor", 2.5),
		gridEntry(date(2024, time.June, 17), "Ada", "Okafor", 1.0),
		gridEntry(date(2024, time.June, 18), "Ben", "Silva", 4.0),
		gridEntry(date(2024, time.May, 1), "Cam", "Dole", 8.0), // outside window
		gridEntry(date(2024, time.June, 17), "", "", 3.0),      // no technician
	}
	windowed := model.FilterEntriesByRange(all, start, end)

	t.Run("All cells exist even without data", func(t *testing.T) {
		grid := model.BuildHoursGrid(all, windowed, start, end, nil)

		gt.Equal(t, grid.Technicians, []string{"Ada Okafor", "Ben Silva", "Cam Dole"})
		gt.Equal(t, grid.Dates, []string{"2024-06-16", "2024-06-17", "2024-06-18"})

		for _, name := range grid.Technicians {
			row := grid.Hours[name]
			gt.Equal(t, len(row.Days), 3)
		}
	})

	t.Run("Hours accumulate per cell", func(t *testing.T) {
		grid := model.BuildHoursGrid(all, windowed, start, end, nil)

		ada := grid.Hours["Ada Okafor"]
		gt.Equal(t, ada.Days["2024-06-17"], 3.5)
		gt.Equal(t, ada.Days["2024-06-16"], 0.0)
		gt.Equal(t, ada.Total, 3.5)
		gt.Equal(t, ada.Entries, 2)

		ben := grid.Hours["Ben Silva"]
		gt.Equal(t, ben.Days["2024-06-18"], 4.0)
		gt.Equal(t, ben.Entries, 1)
	})

	t.Run("Technician outside the window still gets a zero row", func(t *testing.T) {
		grid := model.BuildHoursGrid(all, windowed, start, end, nil)

		cam := grid.Hours["Cam Dole"]
		gt.Equal(t, cam.Total, 0.0)
		gt.Equal(t, cam.Entries, 0)
		for _, day := range grid.Dates {
			gt.Equal(t, cam.Days[day], 0.0)
		}
	})

	t.Run("Denylisted technicians never render", func(t *testing.T) {
		deny := []types.TechnicianName{"Ben Silva"}
		grid := model.BuildHoursGrid(all, windowed, start, end, deny)

		gt.Equal(t, grid.Technicians, []string{"Ada Okafor", "Cam Dole"})
		_, ok := grid.Hours["Ben Silva"]
		gt.False(t, ok)
	})

	t.Run("Empty dataset yields an empty grid", func(t *testing.T) {
		grid := model.BuildHoursGrid(nil, nil, start, end, nil)
		gt.A(t, grid.Technicians).Length(0)
		gt.A(t, grid.Dates).Length(0)
		gt.Equal(t, len(grid.Hours), 0)
	})
}

func TestTechnicianDayHoursMarshalJSON(t *testing.T) {
	row := model.TechnicianDayHours{
		Total:   3.5,
		Entries: 2,
		Days:    map[string]float64{"2024-06-17": 3.5, "2024-06-18": 0},
	}

	data, err := json.Marshal(row)
	gt.NoError(t, err)

	var flat map[string]any
	gt.NoError(t, json.Unmarshal(data, &flat))
	gt.Equal(t, flat["total"], 3.5)
	gt.Equal(t, flat["entries"], 2.0)
	gt.Equal(t, flat["2024-06-17"], 3.5)
	gt.Equal(t, flat["2024-06-18"], 0.0)
}
