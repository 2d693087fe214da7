package project

import (
	"strconv"
	"time"

	"framemill/internal/settings"
)

// SchemaVersion is written into every saved project file. Load consults the
// stored version before trusting the rest of the document.
const SchemaVersion = "1.0.0"

const defaultProjectName = "Untitled Project"

// Config is the persisted project document. Timestamps are string-encoded
// epoch seconds, matching the historical file format.
type Config struct {
	Version          string                 `json:"version"`
	ProjectName      string                 `json:"project_name"`
	CurrentOperation *settings.Operation    `json:"current_operation"`
	InputFiles       []string               `json:"input_files"`
	OutputFile       string                 `json:"output_file"`
	VideoSettings    settings.VideoSettings `json:"video_settings"`
	AudioSettings    settings.AudioSettings `json:"audio_settings"`
	CreatedAt        string                 `json:"created_at"`
	ModifiedAt       string                 `json:"modified_at"`
}

func epochNow() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

// New returns a default project: no operation chosen, no files, both settings
// bags fully populated with their defaults.
func New() *Config {
	now := epochNow()
	return &Config{
		Version:       SchemaVersion,
		ProjectName:   defaultProjectName,
		InputFiles:    []string{},
		VideoSettings: settings.DefaultVideoSettings(),
		AudioSettings: settings.DefaultAudioSettings(),
		CreatedAt:     now,
		ModifiedAt:    now,
	}
}

// Snapshot captures the current editing state as a saveable project. An empty
// name falls back to the default project name. Settings are copied by value.
func Snapshot(op *settings.Operation, inputFiles []string, outputFile string, video settings.VideoSettings, audio settings.AudioSettings, name string) *Config {
	if name == "" {
		name = defaultProjectName
	}
	now := epochNow()
	files := make([]string, len(inputFiles))
	copy(files, inputFiles)
	var opCopy *settings.Operation
	if op != nil {
		v := *op
		opCopy = &v
	}
	return &Config{
		Version:          SchemaVersion,
		ProjectName:      name,
		CurrentOperation: opCopy,
		InputFiles:       files,
		OutputFile:       outputFile,
		VideoSettings:    video,
		AudioSettings:    audio,
		CreatedAt:        now,
		ModifiedAt:       now,
	}
}

// Touch updates the modification timestamp.
func (c *Config) Touch() {
	c.ModifiedAt = epochNow()
}
