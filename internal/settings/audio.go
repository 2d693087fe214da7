package settings

// AudioSettings is the flat bag of every audio encoding option. Same value
// semantics as VideoSettings.
type AudioSettings struct {
	Codec      string  `json:"codec"`
	Bitrate    string  `json:"bitrate"`
	SampleRate string  `json:"sample_rate"`
	Channels   string  `json:"channels"`
	Volume     float64 `json:"volume"`
	Quality    string  `json:"quality"`
	CustomArgs string  `json:"custom_args"`

	// Format conversion
	Format    string `json:"format"`
	CopyAudio bool   `json:"copy_audio"`

	// Compression
	VBRQuality int `json:"vbr_quality"`

	// Resampling
	ResampleMethod string `json:"resample_method"`

	// Volume
	Normalize  bool    `json:"normalize"`
	TargetLUFS float64 `json:"target_lufs"`

	// Trim
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	FadeIn    bool   `json:"fade_in"`
	FadeOut   bool   `json:"fade_out"`

	// Merge
	MergeMode       string  `json:"merge_mode"`
	AddSilence      bool    `json:"add_silence"`
	SilenceDuration float64 `json:"silence_duration"`

	// Video/audio merge
	SyncAudio  bool    `json:"sync_audio"`
	AudioDelay float64 `json:"audio_delay"`

	// Extraction
	ExtractAllTracks bool `json:"extract_all_tracks"`
}

// DefaultAudioSettings returns a fully populated audio settings bag.
func DefaultAudioSettings() AudioSettings {
	return AudioSettings{
		Codec:      "auto",
		Bitrate:    "auto",
		SampleRate: "44100",
		Channels:   "auto",
		Volume:     1.0,
		Quality:    "auto",

		Format: "mp3",

		VBRQuality: 2,

		ResampleMethod: "swr",

		TargetLUFS: -16.0,

		StartTime: "00:00:00",

		MergeMode:       "concat",
		SilenceDuration: 1.0,
	}
}
