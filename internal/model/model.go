package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Recording{},
	&Click{},
	&WaveformSample{},
	&EnvSample{},
}

// Recording is one decoded detector file. The full decoded header is kept
// as JSON alongside the columns used for filtering.
type Recording struct {
	gorm.Model
	Filename        string         `json:"filename" gorm:"size:255;index:idx_recording_filename"`
	Format          string         `json:"format" gorm:"size:3;index:idx_recording_format"`
	PodID           string         `json:"podId" gorm:"size:16"`
	PodNumber       int            `json:"podNumber"`
	FirstLoggedMin  int32          `json:"firstLoggedMin"`
	LastLoggedMin   int32          `json:"lastLoggedMin"`
	WaterDepth      uint16         `json:"waterDepth"`
	DeploymentDepth uint16         `json:"deploymentDepth"`
	Header          datatypes.JSON `json:"header"`
}

func (*Recording) TableName() string {
	return "recordings"
}

// Click is a single click detection belonging to a recording.
type Click struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	RecordingID  uint      `json:"recordingId" gorm:"index:idx_click_recording_id"`
	Recording    Recording `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:RecordingID;"`
	Minute       int       `json:"minute" gorm:"index:idx_click_minute"`
	Microsec     int       `json:"microsec"`
	ClickNo      int       `json:"clickNo"`
	TrainID      int       `json:"trainId"`
	Species      string    `json:"species" gorm:"size:16"`
	QualityLevel int       `json:"qualityLevel"`
	Echo         bool      `json:"echo"`
	NCyc         int       `json:"nCyc"`
	PkAt         int       `json:"pkAt"`
	IPIRange     int       `json:"ipiRange"`
	IPIPreMax    int       `json:"ipiPreMax"`
	IPIAtMax     int       `json:"ipiAtMax"`
	KHz          int       `json:"kHz"`
	AmpAtMax     int       `json:"ampAtMax"`
	AmpReversals int       `json:"ampReversals"`
	Duration     float64   `json:"duration"`
	HasWav       bool      `json:"hasWav"`
}

func (*Click) TableName() string {
	return "clicks"
}

// WaveformSample is one IPI/SPL pair of a click's waveform trace.
// Seq preserves the sample order within the click.
type WaveformSample struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	RecordingID uint      `json:"recordingId" gorm:"index:idx_wavesample_recording_id"`
	Recording   Recording `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:RecordingID;"`
	ClickNo     int       `json:"clickNo" gorm:"index:idx_wavesample_click_no"`
	Seq         int       `json:"seq"`
	IPI         int       `json:"ipi"`
	SPL         int       `json:"spl"`
}

func (*WaveformSample) TableName() string {
	return "waveform_samples"
}

// EnvSample holds the per-minute temperature and battery readings.
type EnvSample struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	RecordingID uint      `json:"recordingId" gorm:"index:idx_envsample_recording_id"`
	Recording   Recording `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:RecordingID;"`
	Minute      int       `json:"minute" gorm:"index:idx_envsample_minute"`
	TempDegC    int       `json:"tempDegC"`
	Bat1        int       `json:"bat1"`
	Bat2        int       `json:"bat2"`
}

func (*EnvSample) TableName() string {
	return "env_samples"
}
