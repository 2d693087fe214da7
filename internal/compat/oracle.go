package compat

// Oracle is the compatibility knowledge base consumed by the preset catalog
// and by callers preparing a job for submission. Implementations must be pure
// queries with no side effects.
type Oracle interface {
	// ValidateCodecFormat reports whether codec can be muxed into the given
	// container format. isAudio distinguishes audio streams from video for
	// implementations that keep separate tables.
	ValidateCodecFormat(codec, format string, isAudio bool) error

	// ValidateSampleRate returns the sample rate to use for codec. Rates the
	// codec does not support are coerced to the closest supported value
	// rather than rejected.
	ValidateSampleRate(codec string, sampleRate int) (int, error)

	// ValidateBitrate returns the bitrate to use for codec. Unsupported
	// values fall back to the codec default; lossless codecs always report
	// "lossless".
	ValidateBitrate(codec, bitrate string) (string, error)

	// RecommendEncoder picks a video encoder for the output format given the
	// quality preset, a speed-over-quality preference, and the hardware
	// encoders available on this machine. The second return value is a short
	// human-readable justification.
	RecommendEncoder(format, qualityPreset string, speedPriority bool, availableHW []string) (codec, reason string)
}
