// Package convert provides functions to convert decoded datasets to GORM models
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/podtools/podscan/internal/model"
	"github.com/podtools/podscan/pkg/core"
)

// RecordingFromDataset builds the recording row for a decoded file.
// The full header is serialized into the JSON column.
func RecordingFromDataset(ds *core.Dataset) (model.Recording, error) {
	headerJSON, err := json.Marshal(ds.Header)
	if err != nil {
		return model.Recording{}, fmt.Errorf("failed to serialize header: %w", err)
	}

	return model.Recording{
		Filename:        ds.Header.Filename,
		Format:          ds.Header.Format,
		PodID:           ds.Header.PodID,
		PodNumber:       ds.Header.PodNumber,
		FirstLoggedMin:  ds.Header.FirstLoggedMin,
		LastLoggedMin:   ds.Header.LastLoggedMin,
		WaterDepth:      ds.Header.WaterDepth,
		DeploymentDepth: ds.Header.DeploymentDepth,
		Header:          headerJSON,
	}, nil
}

// ClicksFromDataset converts all decoded clicks to rows belonging to
// the given recording.
func ClicksFromDataset(ds *core.Dataset, recordingID uint) []model.Click {
	rows := make([]model.Click, 0, len(ds.Clicks))
	for _, c := range ds.Clicks {
		rows = append(rows, model.Click{
			RecordingID:  recordingID,
			Minute:       c.Minute,
			Microsec:     c.Microsec,
			ClickNo:      c.ClickNo,
			TrainID:      c.TrainID,
			Species:      c.Species,
			QualityLevel: c.QualityLevel,
			Echo:         c.Echo,
			NCyc:         c.NCyc,
			PkAt:         c.PkAt,
			IPIRange:     c.IPIRange,
			IPIPreMax:    c.IPIPreMax,
			IPIAtMax:     c.IPIAtMax,
			KHz:          c.KHz,
			AmpAtMax:     c.AmpAtMax,
			AmpReversals: c.AmpReversals,
			Duration:     c.Duration,
			HasWav:       c.HasWav,
		})
	}
	return rows
}

// WaveformSamplesFromDataset flattens the waveform series into rows.
// Seq restarts at zero for each click and follows flattened order.
func WaveformSamplesFromDataset(ds *core.Dataset, recordingID uint) []model.WaveformSample {
	flat := ds.FlattenWaves()
	rows := make([]model.WaveformSample, 0, len(flat))

	seq := 0
	lastClick := -1
	for _, s := range flat {
		if s.ClickNo != lastClick {
			seq = 0
			lastClick = s.ClickNo
		}
		rows = append(rows, model.WaveformSample{
			RecordingID: recordingID,
			ClickNo:     s.ClickNo,
			Seq:         seq,
			IPI:         s.IPI,
			SPL:         s.SPL,
		})
		seq++
	}
	return rows
}

// EnvSamplesFromDataset converts the per-minute readings to rows.
func EnvSamplesFromDataset(ds *core.Dataset, recordingID uint) []model.EnvSample {
	rows := make([]model.EnvSample, 0, len(ds.Env))
	for _, e := range ds.Env {
		rows = append(rows, model.EnvSample{
			RecordingID: recordingID,
			Minute:      e.Minute,
			TempDegC:    e.TempDegC,
			Bat1:        e.Bat1,
			Bat2:        e.Bat2,
		})
	}
	return rows
}
