package preset

import (
	"encoding/json"
	"fmt"

	"framemill/internal/settings"
)

// Category buckets presets for browsing. The set is closed; Custom is
// reserved for user-created presets.
type Category int

const (
	WebOptimized Category = iota
	HighQuality
	FastEncoding
	MobileOptimized
	Archive
	Streaming
	Custom
)

var categoryNames = [...]string{
	WebOptimized:    "WebOptimized",
	HighQuality:     "HighQuality",
	FastEncoding:    "FastEncoding",
	MobileOptimized: "MobileOptimized",
	Archive:         "Archive",
	Streaming:       "Streaming",
	Custom:          "Custom",
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = Category(c)
	}
	return m
}()

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	cats := make([]Category, len(categoryNames))
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

func (c Category) valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// String returns the stable wire name of the category.
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// DisplayName returns the category label shown to users.
func (c Category) DisplayName() string {
	switch c {
	case WebOptimized:
		return "Web Optimized"
	case HighQuality:
		return "High Quality"
	case FastEncoding:
		return "Fast Encoding"
	case MobileOptimized:
		return "Mobile Optimized"
	case Archive:
		return "Archive"
	case Streaming:
		return "Streaming"
	case Custom:
		return "Custom"
	default:
		return c.String()
	}
}

// MarshalJSON encodes the category as its wire name.
func (c Category) MarshalJSON() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("marshal preset category: unknown value %d", int(c))
	}
	return json.Marshal(categoryNames[c])
}

// UnmarshalJSON decodes a wire name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("unmarshal preset category: %w", err)
	}
	cat, ok := categoryByName[name]
	if !ok {
		return fmt.Errorf("unmarshal preset category: unknown name %q", name)
	}
	*c = cat
	return nil
}

// EncodingPreset is a named, complete bundle of video and audio settings.
// Settings are held by value; applying a preset copies them.
type EncodingPreset struct {
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	Category           Category               `json:"category"`
	VideoSettings      settings.VideoSettings `json:"video_settings"`
	AudioSettings      settings.AudioSettings `json:"audio_settings"`
	RecommendedFormats []string               `json:"recommended_formats"`
}

// NewCustom builds a user-defined preset around the supplied settings. The
// recommended format defaults to mp4, the common ground for custom bundles.
func NewCustom(name, description string, video settings.VideoSettings, audio settings.AudioSettings) EncodingPreset {
	return EncodingPreset{
		Name:               name,
		Description:        description,
		Category:           Custom,
		VideoSettings:      video,
		AudioSettings:      audio,
		RecommendedFormats: []string{"mp4"},
	}
}

// Apply overwrites both destination settings bags with the preset's values.
// This is a total replacement, not a merge.
func Apply(p EncodingPreset, video *settings.VideoSettings, audio *settings.AudioSettings) {
	*video = p.VideoSettings
	*audio = p.AudioSettings
}

// ByCategory filters the built-in catalog by category.
func ByCategory(c Category) []EncodingPreset {
	var out []EncodingPreset
	for _, p := range Builtins() {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// RecommendForFormat returns the built-in presets that recommend the given
// container format. Matching is exact against the stored lowercase
// extensions.
func RecommendForFormat(format string) []EncodingPreset {
	var out []EncodingPreset
	for _, p := range Builtins() {
		for _, f := range p.RecommendedFormats {
			if f == format {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
