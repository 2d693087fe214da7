package preset

import (
	"fmt"
	"strconv"

	"framemill/internal/compat"
)

// Validate checks a preset against the compatibility oracle and returns the
// collected warnings. Every check runs even after earlier failures, and an
// invalid preset is still usable: the caller decides what to do with the
// warnings.
func Validate(oracle compat.Oracle, p EncodingPreset) []string {
	var warnings []string

	format := "mp4"
	if len(p.RecommendedFormats) > 0 {
		format = p.RecommendedFormats[0]
	}

	if err := oracle.ValidateCodecFormat(p.VideoSettings.Codec, format, false); err != nil {
		warnings = append(warnings, fmt.Sprintf("Video codec issue: %v", err))
	}
	if err := oracle.ValidateCodecFormat(p.AudioSettings.Codec, format, true); err != nil {
		warnings = append(warnings, fmt.Sprintf("Audio codec issue: %v", err))
	}

	if rate, err := strconv.Atoi(p.AudioSettings.SampleRate); err == nil {
		if _, err := oracle.ValidateSampleRate(p.AudioSettings.Codec, rate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Sample rate issue: %v", err))
		}
	}

	if _, err := oracle.ValidateBitrate(p.AudioSettings.Codec, p.AudioSettings.Bitrate); err != nil {
		warnings = append(warnings, fmt.Sprintf("Bitrate issue: %v", err))
	}

	return warnings
}
