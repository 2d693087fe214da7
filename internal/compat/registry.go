package compat

import (
	"fmt"
	"slices"
	"strings"
)

// Registry is the static, table-driven Oracle implementation.
type Registry struct{}

// NewRegistry returns the built-in compatibility registry.
func NewRegistry() *Registry {
	return &Registry{}
}

var _ Oracle = (*Registry)(nil)

// codecFormats maps each known codec to the container formats it can be
// muxed into. Codecs absent from the map are unknown, not forbidden.
var codecFormats = map[string][]string{
	// Software video encoders
	"libx264":    {"mp4", "mkv", "avi", "mov", "ts", "m2ts", "3gp", "flv", "m4v"},
	"libx265":    {"mp4", "mkv", "mov", "ts", "m2ts", "m4v"},
	"libvpx":     {"webm", "mkv", "avi"},
	"libvpx-vp9": {"webm", "mkv"},
	"libaom-av1": {"mp4", "webm", "mkv"},
	"wmv2":       {"wmv", "avi"},
	"flv1":       {"flv", "avi"},
	"prores_ks":  {"mov", "mkv"},

	// NVIDIA
	"h264_nvenc": {"mp4", "mkv", "avi", "mov", "ts", "flv", "m4v"},
	"hevc_nvenc": {"mp4", "mkv", "mov", "ts", "m4v"},
	"av1_nvenc":  {"mp4", "webm", "mkv"},
	"vp9_nvenc":  {"webm", "mkv"},

	// AMD
	"h264_amf": {"mp4", "mkv", "avi", "mov", "ts", "flv", "m4v"},
	"hevc_amf": {"mp4", "mkv", "mov", "ts", "m4v"},
	"av1_amf":  {"mp4", "webm", "mkv"},

	// Intel QuickSync
	"h264_qsv": {"mp4", "mkv", "avi", "mov", "ts", "flv", "m4v"},
	"hevc_qsv": {"mp4", "mkv", "mov", "ts", "m4v"},
	"av1_qsv":  {"mp4", "webm", "mkv"},
	"vp9_qsv":  {"webm", "mkv"},

	// VA-API
	"h264_vaapi": {"mp4", "mkv", "avi", "mov", "ts"},
	"hevc_vaapi": {"mp4", "mkv", "mov", "ts"},
	"av1_vaapi":  {"mp4", "webm", "mkv"},
	"vp8_vaapi":  {"webm", "mkv"},
	"vp9_vaapi":  {"webm", "mkv"},

	// VideoToolbox
	"h264_videotoolbox":   {"mp4", "mkv", "mov", "m4v"},
	"hevc_videotoolbox":   {"mp4", "mkv", "mov", "m4v"},
	"prores_videotoolbox": {"mov", "mkv"},

	// Audio codecs
	"libmp3lame": {"mp3", "avi", "mkv", "mp4", "mov", "flv"},
	"aac":        {"aac", "m4a", "mp4", "mkv", "mov", "avi", "ts", "flv", "3gp", "m4v"},
	"libfdk_aac": {"aac", "m4a", "mp4", "mkv", "mov", "m4v"},
	"libopus":    {"opus", "ogg", "webm", "mkv"},
	"libvorbis":  {"ogg", "webm", "mkv"},
	"flac":       {"flac", "mkv", "ogg"},
	"alac":       {"m4a", "mp4", "mov", "m4v"},
	"pcm_s16le":  {"wav", "mov", "avi"},
	"pcm_s24le":  {"wav", "mov", "avi"},
	"pcm_f32le":  {"wav", "mov", "avi"},
	"wmav2":      {"wma", "wmv", "avi"},
	"ac3":        {"ac3", "avi", "mkv", "mp4", "mov", "ts"},
	"eac3":       {"eac3", "mp4", "mkv", "ts"},
	"amr_nb":     {"3gp", "mp4"},
	"amr_wb":     {"3gp", "mp4"},
}

// audioCodecInfo captures what an audio encoder can accept. An empty bitrate
// ladder marks a lossless codec.
type audioCodecInfo struct {
	sampleRates       []int
	bitrates          []string
	defaultBitrate    string
	defaultSampleRate int
}

var audioCodecs = map[string]audioCodecInfo{
	"libmp3lame": {
		sampleRates:       []int{8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000},
		bitrates:          []string{"32k", "64k", "96k", "128k", "160k", "192k", "224k", "256k", "320k"},
		defaultBitrate:    "128k",
		defaultSampleRate: 44100,
	},
	"aac": {
		sampleRates:       []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 64000, 88200, 96000},
		bitrates:          []string{"32k", "64k", "96k", "128k", "160k", "192k", "224k", "256k", "320k"},
		defaultBitrate:    "128k",
		defaultSampleRate: 44100,
	},
	"flac": {
		sampleRates:       []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 64000, 88200, 96000, 176400, 192000},
		defaultBitrate:    "lossless",
		defaultSampleRate: 44100,
	},
	"libopus": {
		sampleRates:       []int{8000, 12000, 16000, 24000, 48000},
		bitrates:          []string{"6k", "8k", "16k", "24k", "32k", "48k", "64k", "96k", "128k", "160k", "192k", "256k", "320k", "450k", "510k"},
		defaultBitrate:    "128k",
		defaultSampleRate: 48000,
	},
	"libvorbis": {
		sampleRates:       []int{8000, 11025, 16000, 22050, 32000, 44100, 48000},
		bitrates:          []string{"32k", "64k", "96k", "128k", "160k", "192k", "224k", "256k", "320k"},
		defaultBitrate:    "128k",
		defaultSampleRate: 44100,
	},
	"pcm_s16le": {
		sampleRates:       []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 88200, 96000, 176400, 192000},
		defaultBitrate:    "lossless",
		defaultSampleRate: 44100,
	},
	"pcm_s24le": {
		sampleRates:       []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 88200, 96000, 176400, 192000},
		defaultBitrate:    "lossless",
		defaultSampleRate: 44100,
	},
	"ac3": {
		sampleRates:       []int{32000, 44100, 48000},
		bitrates:          []string{"32k", "40k", "48k", "56k", "64k", "80k", "96k", "112k", "128k", "160k", "192k", "224k", "256k", "320k", "384k", "448k", "512k", "576k", "640k"},
		defaultBitrate:    "192k",
		defaultSampleRate: 48000,
	},
	"eac3": {
		sampleRates:       []int{32000, 44100, 48000},
		bitrates:          []string{"32k", "64k", "96k", "128k", "192k", "256k", "320k", "384k", "512k", "640k", "768k", "1024k"},
		defaultBitrate:    "256k",
		defaultSampleRate: 48000,
	},
	"alac": {
		sampleRates:       []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 88200, 96000},
		defaultBitrate:    "lossless",
		defaultSampleRate: 44100,
	},
	"wmav2": {
		sampleRates:       []int{8000, 11025, 16000, 22050, 32000, 44100, 48000},
		bitrates:          []string{"32k", "48k", "64k", "96k", "128k", "160k", "192k"},
		defaultBitrate:    "128k",
		defaultSampleRate: 44100,
	},
}

// ValidateCodecFormat reports an error when the codec cannot be muxed into
// the container. The codec values "copy" and "mkv" pass unconditionally:
// stream copy never re-encodes, and "mkv" is a legacy value older settings
// files still carry.
func (r *Registry) ValidateCodecFormat(codec, format string, isAudio bool) error {
	if codec == "copy" || codec == "mkv" {
		return nil
	}
	formats, ok := codecFormats[codec]
	if !ok {
		return fmt.Errorf("codec %s does not support format %s", codec, format)
	}
	if !slices.Contains(formats, format) {
		return fmt.Errorf("codec %s does not support format %s", codec, format)
	}
	return nil
}

// ValidateSampleRate coerces the rate to the closest value the codec
// supports. Unknown codecs keep the caller's value.
func (r *Registry) ValidateSampleRate(codec string, sampleRate int) (int, error) {
	info, ok := audioCodecs[codec]
	if !ok {
		return sampleRate, nil
	}
	if slices.Contains(info.sampleRates, sampleRate) {
		return sampleRate, nil
	}
	closest := info.defaultSampleRate
	best := -1
	for _, rate := range info.sampleRates {
		diff := rate - sampleRate
		if diff < 0 {
			diff = -diff
		}
		if best < 0 || diff < best {
			best = diff
			closest = rate
		}
	}
	return closest, nil
}

// ValidateBitrate coerces unsupported bitrates to the codec default. "auto"
// and "lossless" always pass through; lossless codecs report "lossless"
// regardless of input.
func (r *Registry) ValidateBitrate(codec, bitrate string) (string, error) {
	if bitrate == "auto" || bitrate == "lossless" {
		return bitrate, nil
	}
	info, ok := audioCodecs[codec]
	if !ok {
		return bitrate, nil
	}
	if len(info.bitrates) == 0 {
		return "lossless", nil
	}
	if slices.Contains(info.bitrates, bitrate) {
		return bitrate, nil
	}
	return info.defaultBitrate, nil
}

// RecommendEncoder picks a video encoder for the output format. The decision
// prefers hardware encoders when speed matters and software encoders when
// quality matters.
func (r *Registry) RecommendEncoder(format, qualityPreset string, speedPriority bool, availableHW []string) (string, string) {
	fast := speedPriority || strings.Contains(qualityPreset, "Fast")
	highQuality := strings.Contains(qualityPreset, "High Quality")

	hw := func(name string) bool { return slices.Contains(availableHW, name) }

	switch strings.ToLower(format) {
	case "webm":
		if fast && hw("vp9_qsv") {
			return "vp9_qsv", "Hardware VP9 (Intel QuickSync), speed priority"
		}
		if highQuality {
			return "libvpx-vp9", "Software VP9, best quality for WebM"
		}
		return "libvpx-vp9", "VP9 encoder (WebM standard)"
	case "mp4", "m4v":
		if fast {
			switch {
			case hw("h264_nvenc"):
				return "h264_nvenc", "NVIDIA hardware H.264, fastest"
			case hw("h264_qsv"):
				return "h264_qsv", "Intel hardware H.264, speed priority"
			case hw("h264_amf"):
				return "h264_amf", "AMD hardware H.264, speed priority"
			}
			return "libx264", "Software H.264, best compatibility"
		}
		if highQuality {
			if hw("hevc_nvenc") {
				return "hevc_nvenc", "NVIDIA hardware H.265, high quality"
			}
			return "libx265", "Software H.265, best compression at high quality"
		}
		return "libx264", "Software H.264, balanced default for MP4"
	case "mkv":
		if fast && hw("h264_nvenc") {
			return "h264_nvenc", "NVIDIA hardware H.264, fastest"
		}
		if highQuality {
			return "libx265", "Software H.265, archival quality for MKV"
		}
		return "libx264", "Software H.264, balanced default for MKV"
	case "mov":
		if highQuality {
			return "prores_ks", "ProRes, editing-grade quality for MOV"
		}
		return "libx264", "Software H.264, broad MOV compatibility"
	default:
		return "libx264", "Software H.264, safe fallback"
	}
}

// KnownCodec reports whether the registry has a compatibility entry for codec.
func KnownCodec(codec string) bool {
	_, ok := codecFormats[codec]
	return ok
}

// FormatsForCodec returns the containers a codec can target, or nil for
// unknown codecs.
func FormatsForCodec(codec string) []string {
	formats, ok := codecFormats[codec]
	if !ok {
		return nil
	}
	return slices.Clone(formats)
}
