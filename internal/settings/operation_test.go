package settings

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOperationWireNamesRoundTrip(t *testing.T) {
	for _, op := range AllOperations() {
		data, err := json.Marshal(op)
		if err != nil {
			t.Fatalf("marshal %v: %v", op, err)
		}
		var back Operation
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != op {
			t.Fatalf("round trip %v -> %s -> %v", op, data, back)
		}
	}
}

func TestOperationUnmarshalRejectsUnknownName(t *testing.T) {
	var op Operation
	if err := json.Unmarshal([]byte(`"HolographicConvert"`), &op); err == nil {
		t.Fatal("unknown operation name should be rejected")
	}
	if err := json.Unmarshal([]byte(`42`), &op); err == nil {
		t.Fatal("non-string operation should be rejected")
	}
}

func TestParseOperation(t *testing.T) {
	op, ok := ParseOperation("VideoToGif")
	if !ok || op != VideoToGif {
		t.Fatalf("ParseOperation(VideoToGif) = %v, %v", op, ok)
	}
	if _, ok := ParseOperation("NotAnOperation"); ok {
		t.Fatal("ParseOperation should reject unknown names")
	}
}

func TestOperationDisplayName(t *testing.T) {
	cases := map[Operation]string{
		VideoConvert:    "Video Convert",
		AudioResample:   "Audio Resample",
		VideoAudioMerge: "Video Audio Merge",
		VideoToGif:      "Video To Gif",
	}
	for op, want := range cases {
		if got := op.DisplayName(); got != want {
			t.Errorf("%v.DisplayName() = %q, want %q", op, got, want)
		}
	}
}

func TestOperationDisplayNameRecasesLoweredWords(t *testing.T) {
	// DisplayName lowercases the wire-name segments before handing them to
	// the title caser; every word must come back capitalized.
	for _, op := range AllOperations() {
		got := op.DisplayName()
		for _, word := range strings.Fields(got) {
			if word[0] < 'A' || word[0] > 'Z' {
				t.Fatalf("%v.DisplayName() = %q: word %q not title-cased", op, got, word)
			}
		}
		if strings.ToLower(got) == got {
			t.Fatalf("%v.DisplayName() = %q: casing was lost", op, got)
		}
	}
}

func TestOperationCategories(t *testing.T) {
	cases := map[Operation]Category{
		VideoRotate:  CategoryVideo,
		AudioTrim:    CategoryAudio,
		ExtractAudio: CategoryVideoAudio,
		BatchConvert: CategoryBatch,
		AddWatermark: CategoryAdvanced,
	}
	for op, want := range cases {
		if got := op.Category(); got != want {
			t.Errorf("%v.Category() = %v, want %v", op, got, want)
		}
	}
}

func TestOperationDefaultExtensions(t *testing.T) {
	cases := map[Operation]string{
		VideoConvert: "mp4",
		AudioMerge:   "mp3",
		ExtractAudio: "mp3",
		ExtractVideo: "mp4",
		VideoToGif:   "gif",
		GifResize:    "gif",
		FrameExtract: "png",
	}
	for op, want := range cases {
		if got := op.DefaultExtension(); got != want {
			t.Errorf("%v.DefaultExtension() = %q, want %q", op, got, want)
		}
	}
}
