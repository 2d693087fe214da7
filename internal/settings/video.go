package settings

// VideoSettings is the flat bag of every video encoding option. Values are
// copied, never shared: attach a settings bag to a preset or a task by value.
// "auto" and zero sentinels mean "inherit from source" or "let the encoder
// decide"; a Resolution of [0 0] keeps the original dimensions.
type VideoSettings struct {
	Codec                   string  `json:"codec"`
	Bitrate                 string  `json:"bitrate"`
	Quality                 int     `json:"quality"`
	FPS                     string  `json:"fps"`
	Resolution              [2]uint `json:"resolution"`
	UseHardwareAcceleration bool    `json:"use_hardware_acceleration"`
	Preset                  string  `json:"preset"`
	Profile                 string  `json:"profile"`
	Level                   string  `json:"level"`
	PixelFormat             string  `json:"pixel_format"`
	Tune                    string  `json:"tune"`
	CustomArgs              string  `json:"custom_args"`

	// Format conversion
	ContainerFormat string `json:"container_format"`
	CopyVideo       bool   `json:"copy_video"`

	// Compression
	CRF          int `json:"crf"`
	TargetSizeMB int `json:"target_size_mb"`

	// Resolution adjustment
	Width               *uint `json:"width"`
	Height              *uint `json:"height"`
	MaintainAspectRatio bool  `json:"maintain_aspect_ratio"`

	// Crop margins
	CropTop    *uint `json:"crop_top"`
	CropBottom *uint `json:"crop_bottom"`
	CropLeft   *uint `json:"crop_left"`
	CropRight  *uint `json:"crop_right"`

	// Rotation
	Rotation            int     `json:"rotation"`
	UseCustomRotation   bool    `json:"use_custom_rotation"`
	CustomRotationAngle float64 `json:"custom_rotation_angle"`
	FlipHorizontal      bool    `json:"flip_horizontal"`
	FlipVertical        bool    `json:"flip_vertical"`

	// Filters
	Denoise     bool    `json:"denoise"`
	Deinterlace bool    `json:"deinterlace"`
	Stabilize   bool    `json:"stabilize"`
	Brightness  float64 `json:"brightness"`
	Contrast    float64 `json:"contrast"`
	Saturation  float64 `json:"saturation"`

	// Batch processing
	BatchNamingPattern string `json:"batch_naming_pattern"`
	BatchOperationType string `json:"batch_operation_type"`

	// Subtitles
	SubtitleFile     string `json:"subtitle_file"`
	SubtitleMode     string `json:"subtitle_mode"`
	SubtitleStyle    string `json:"subtitle_style"`
	SubtitlePosition string `json:"subtitle_position"`

	// Watermark
	WatermarkFile     string  `json:"watermark_file"`
	WatermarkPosition string  `json:"watermark_position"`
	WatermarkOpacity  float64 `json:"watermark_opacity"`
	WatermarkScale    float64 `json:"watermark_scale"`
	WatermarkX        int     `json:"watermark_x"`
	WatermarkY        int     `json:"watermark_y"`

	// Frame extraction
	FrameExtractMode string `json:"frame_extract_mode"`
	FrameInterval    int    `json:"frame_interval"`
	FrameStartTime   string `json:"frame_start_time"`
	FrameEndTime     string `json:"frame_end_time"`
	FrameFormat      string `json:"frame_format"`
	FrameQuality     int    `json:"frame_quality"`
	FrameRate        int    `json:"frame_rate"`

	// Subtitle styling
	SubtitleFontFamily      string `json:"subtitle_font_family"`
	SubtitleFontSize        int    `json:"subtitle_font_size"`
	SubtitleFontColor       string `json:"subtitle_font_color"`
	SubtitleOutlineColor    string `json:"subtitle_outline_color"`
	SubtitleBackgroundColor string `json:"subtitle_background_color"`
	SubtitleAlignment       string `json:"subtitle_alignment"`

	// GIF conversion
	GifFPS      float64 `json:"gif_fps"`
	GifScale    float64 `json:"gif_scale"`
	GifLoop     bool    `json:"gif_loop"`
	GifOptimize bool    `json:"gif_optimize"`

	// Smart encoder preferences
	QualityPreset string `json:"quality_preset"`
	SpeedPriority bool   `json:"speed_priority"`
	GifDither     string `json:"gif_dither"`
	GifColors     int    `json:"gif_colors"`
}

// DefaultVideoSettings returns a fully populated settings bag that is safe to
// hand to an encoder unmodified. Defaults are independent of one another;
// MaintainAspectRatio defaults true and is consulted by collaborators, not
// enforced here.
func DefaultVideoSettings() VideoSettings {
	return VideoSettings{
		Codec:       "auto",
		Bitrate:     "auto",
		Quality:     23,
		FPS:         "auto",
		Resolution:  [2]uint{0, 0},
		Preset:      "auto",
		Profile:     "auto",
		Level:       "auto",
		PixelFormat: "auto",
		Tune:        "auto",

		ContainerFormat: "mp4",

		CRF: 23,

		MaintainAspectRatio: true,

		Brightness: 0.0,
		Contrast:   1.0,
		Saturation: 1.0,

		BatchNamingPattern: "{name}_converted",
		BatchOperationType: "convert",

		SubtitleMode:     "soft",
		SubtitlePosition: "bottom-center",

		WatermarkPosition: "top-right",
		WatermarkOpacity:  0.7,
		WatermarkScale:    1.0,
		WatermarkX:        10,
		WatermarkY:        10,

		FrameExtractMode: "interval",
		FrameInterval:    30,
		FrameStartTime:   "00:00:00",
		FrameFormat:      "png",
		FrameQuality:     2,
		FrameRate:        1,

		SubtitleFontFamily:      "Arial",
		SubtitleFontSize:        16,
		SubtitleFontColor:       "white",
		SubtitleOutlineColor:    "black",
		SubtitleBackgroundColor: "transparent",
		SubtitleAlignment:       "center",

		GifFPS:      10.0,
		GifScale:    1.0,
		GifLoop:     true,
		GifOptimize: true,
		GifDither:   "floyd_steinberg",
		GifColors:   256,

		QualityPreset: "Balanced",
	}
}
