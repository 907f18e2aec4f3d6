package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"p9e.in/crewcall/config"
	"p9e.in/crewcall/middleware"
	"p9e.in/crewcall/models"
	"p9e.in/crewcall/utils"
)

var attestationHeaders = []string{
	"Worker", "Date", "Clock In", "Clock Out", "Worked", "Meal", "Attested At", "Signature",
}

// attestationRow is one exported line: a worker's reconstructed day plus
// their signature reference.
type attestationRow struct {
	Worker     string
	Date       string
	ClockIn    string
	ClockOut   string
	Worked     string
	Meal       string
	AttestedAt string
	Signature  string
}

// ExportEventAttestations returns the event's attestation sheet as an xlsx
// attachment, filename derived from the event name and date.
func ExportEventAttestations(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := config.DB.First(&event, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	// The partner surface reaches this handler without JWT claims; inside
	// the API it still honors event visibility.
	if claims := middleware.GetClaims(r); claims != nil {
		user := middleware.GetUser(r)
		if !canViewEvent(user, &event) {
			respondError(w, http.StatusForbidden, "not allowed to export this event")
			return
		}
	}

	var sigs []models.AttestationSignature
	if err := config.DB.Preload("User").
		Where("event_id = ?", event.ID).
		Order("created_at").
		Find(&sigs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	rows := make([]attestationRow, 0, len(sigs))
	for _, sig := range sigs {
		rows = append(rows, buildAttestationRow(&event, &sig))
	}

	f, err := createAttestationWorkbook(&event, rows)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate export")
		return
	}
	buffer, err := f.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to write export")
		return
	}

	filename := fmt.Sprintf("%s_%s_attestations.xlsx", sanitizeFilename(event.Name), event.Date)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportAttestation returns a single worker's attestation document as an
// xlsx attachment, filename derived from the worker's name and the event
// date.
func ExportAttestation(w http.ResponseWriter, r *http.Request) {
	var sig models.AttestationSignature
	if err := config.DB.Preload("User").First(&sig, "id = ?", pathID(r)).Error; err != nil {
		respondError(w, http.StatusNotFound, "attestation not found")
		return
	}
	var event models.Event
	if err := config.DB.First(&event, "id = ?", sig.EventID).Error; err != nil {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	if claims := middleware.GetClaims(r); claims != nil {
		user := middleware.GetUser(r)
		if sig.UserID != user.ID && !canViewEvent(user, &event) {
			respondError(w, http.StatusForbidden, "not allowed to export this attestation")
			return
		}
	}

	row := buildAttestationRow(&event, &sig)
	f, err := createAttestationWorkbook(&event, []attestationRow{row})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate export")
		return
	}
	buffer, err := f.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to write export")
		return
	}

	filename := fmt.Sprintf("%s_%s_attestation.xlsx", sanitizeFilename(row.Worker), event.Date)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// buildAttestationRow reconstructs the signed day's times. Display
// formatting degrades: missing punches show "--:--", never an error.
func buildAttestationRow(event *models.Event, sig *models.AttestationSignature) attestationRow {
	var entries []models.TimeEntry
	config.DB.
		Where("event_id = ? AND user_id = ?", event.ID, sig.UserID).
		Order("punched_at").
		Find(&entries)

	sheet := utils.BuildTimesheet(punchesOf(entries))

	var firstIn, lastOut time.Time
	for _, e := range entries {
		switch e.Kind {
		case utils.PunchClockIn:
			if firstIn.IsZero() {
				firstIn = e.PunchedAt.Time()
			}
		case utils.PunchClockOut:
			lastOut = e.PunchedAt.Time()
		}
	}

	worker := "N/A"
	if sig.User != nil {
		worker = sig.User.Name
	}

	return attestationRow{
		Worker:     worker,
		Date:       event.Date.String(),
		ClockIn:    utils.FormatClock(firstIn),
		ClockOut:   utils.FormatClock(lastOut),
		Worked:     utils.FormatDuration(sheet.Worked),
		Meal:       utils.FormatDuration(sheet.Meal),
		AttestedAt: sig.CapturedAt.Time().Format("2006-01-02 15:04"),
		Signature:  sig.SignatureURL,
	}
}

func createAttestationWorkbook(event *models.Event, rows []attestationRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Attestations"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s - %s", event.Name, event.Date))
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Hours %s to %s, generated %s",
		models.FormatTimeOfDay(event.StartTime),
		models.FormatTimeOfDay(event.EndTime),
		time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for colIdx, header := range attestationHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, columnIndexToLetter(colIdx+1), columnIndexToLetter(colIdx+1), 20)
	}

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})
	for rowIdx, row := range rows {
		values := []string{
			row.Worker, row.Date, row.ClockIn, row.ClockOut,
			row.Worked, row.Meal, row.AttestedAt, row.Signature,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func sanitizeFilename(filename string) string {
	replacements := map[rune]rune{
		'/':  '_',
		'\\': '_',
		':':  '_',
		'*':  '_',
		'?':  '_',
		'"':  '_',
		'<':  '_',
		'>':  '_',
		'|':  '_',
		' ':  '_',
	}

	result := []rune{}
	for _, char := range filename {
		if replacement, exists := replacements[char]; exists {
			result = append(result, replacement)
		} else {
			result = append(result, char)
		}
	}

	return string(result)
}

func columnIndexToLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+(col%26))) + result
		col /= 26
	}
	return result
}
