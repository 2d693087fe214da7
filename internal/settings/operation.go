package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Operation enumerates every processing job the tool can configure. The set
// is closed; adding an operation means extending this enum, its category
// mapping, and the wire-name table together.
type Operation int

const (
	VideoConvert Operation = iota
	VideoCompress
	VideoResize
	VideoCrop
	VideoRotate
	VideoFilter

	AudioConvert
	AudioCompress
	AudioResample
	AudioVolume
	AudioTrim
	AudioMerge

	VideoAudioMerge
	VideoAudioSplit
	ExtractAudio
	ExtractVideo

	BatchConvert

	AddSubtitle
	AddWatermark
	FrameExtract
	VideoToGif
	GifResize
)

// Category groups operations for display and for default output extension
// selection. Each operation belongs to exactly one category.
type Category int

const (
	CategoryVideo Category = iota
	CategoryAudio
	CategoryVideoAudio
	CategoryBatch
	CategoryAdvanced
)

// operationNames holds the wire names used in persisted project files. The
// names match the original on-disk format and must not change for files
// already written by older releases.
var operationNames = [...]string{
	VideoConvert:    "VideoConvert",
	VideoCompress:   "VideoCompress",
	VideoResize:     "VideoResize",
	VideoCrop:       "VideoCrop",
	VideoRotate:     "VideoRotate",
	VideoFilter:     "VideoFilter",
	AudioConvert:    "AudioConvert",
	AudioCompress:   "AudioCompress",
	AudioResample:   "AudioResample",
	AudioVolume:     "AudioVolume",
	AudioTrim:       "AudioTrim",
	AudioMerge:      "AudioMerge",
	VideoAudioMerge: "VideoAudioMerge",
	VideoAudioSplit: "VideoAudioSplit",
	ExtractAudio:    "ExtractAudio",
	ExtractVideo:    "ExtractVideo",
	BatchConvert:    "BatchConvert",
	AddSubtitle:     "AddSubtitle",
	AddWatermark:    "AddWatermark",
	FrameExtract:    "FrameExtract",
	VideoToGif:      "VideoToGif",
	GifResize:       "GifResize",
}

var operationByName = func() map[string]Operation {
	m := make(map[string]Operation, len(operationNames))
	for op, name := range operationNames {
		m[name] = Operation(op)
	}
	return m
}()

// AllOperations returns every operation in canonical display order.
func AllOperations() []Operation {
	ops := make([]Operation, len(operationNames))
	for i := range ops {
		ops[i] = Operation(i)
	}
	return ops
}

// ParseOperation converts a wire name back into an Operation.
func ParseOperation(name string) (Operation, bool) {
	op, ok := operationByName[strings.TrimSpace(name)]
	return op, ok
}

func (o Operation) valid() bool {
	return o >= 0 && int(o) < len(operationNames)
}

// String returns the stable wire name of the operation.
func (o Operation) String() string {
	if !o.valid() {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return operationNames[o]
}

var titleCaser = cases.Title(language.Und)

// DisplayName renders a human-readable name, e.g. "Video Convert". The wire
// name is split on case boundaries, folded to lowercase words, and re-cased
// by the title caser.
func (o Operation) DisplayName() string {
	if !o.valid() {
		return o.String()
	}
	var words []string
	name := operationNames[o]
	start := 0
	for i := 1; i < len(name); i++ {
		if name[i] >= 'A' && name[i] <= 'Z' {
			words = append(words, strings.ToLower(name[start:i]))
			start = i
		}
	}
	words = append(words, strings.ToLower(name[start:]))
	return titleCaser.String(strings.Join(words, " "))
}

// Category returns the group the operation belongs to.
func (o Operation) Category() Category {
	switch o {
	case VideoConvert, VideoCompress, VideoResize, VideoCrop, VideoRotate, VideoFilter:
		return CategoryVideo
	case AudioConvert, AudioCompress, AudioResample, AudioVolume, AudioTrim, AudioMerge:
		return CategoryAudio
	case VideoAudioMerge, VideoAudioSplit, ExtractAudio, ExtractVideo:
		return CategoryVideoAudio
	case BatchConvert:
		return CategoryBatch
	case AddSubtitle, AddWatermark, FrameExtract, VideoToGif, GifResize:
		return CategoryAdvanced
	default:
		return CategoryVideo
	}
}

// DefaultExtension returns the output file extension suggested before any
// settings are edited.
func (o Operation) DefaultExtension() string {
	switch o {
	case AudioConvert, AudioCompress, AudioResample, AudioVolume, AudioTrim, AudioMerge, ExtractAudio:
		return "mp3"
	case VideoToGif, GifResize:
		return "gif"
	case FrameExtract:
		return "png"
	default:
		return "mp4"
	}
}

// String returns the category display name.
func (c Category) String() string {
	switch c {
	case CategoryVideo:
		return "Video Processing"
	case CategoryAudio:
		return "Audio Processing"
	case CategoryVideoAudio:
		return "Video/Audio Operations"
	case CategoryBatch:
		return "Batch Processing"
	case CategoryAdvanced:
		return "Advanced Features"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MarshalJSON encodes the operation as its wire name.
func (o Operation) MarshalJSON() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("marshal operation: unknown value %d", int(o))
	}
	return json.Marshal(operationNames[o])
}

// UnmarshalJSON decodes a wire name, rejecting names this release does not
// know so configuration loading can fall back to its salvage path.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("unmarshal operation: %w", err)
	}
	op, ok := operationByName[name]
	if !ok {
		return fmt.Errorf("unmarshal operation: unknown name %q", name)
	}
	*o = op
	return nil
}
