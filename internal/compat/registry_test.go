package compat

import "testing"

func TestValidateCodecFormat(t *testing.T) {
	r := NewRegistry()

	if err := r.ValidateCodecFormat("libx264", "mp4", false); err != nil {
		t.Fatalf("libx264/mp4 should pass: %v", err)
	}
	if err := r.ValidateCodecFormat("libvpx-vp9", "mp4", false); err == nil {
		t.Fatal("vp9 cannot be muxed into mp4")
	}
	if err := r.ValidateCodecFormat("flac", "mp4", true); err == nil {
		t.Fatal("flac cannot be muxed into mp4")
	}
	if err := r.ValidateCodecFormat("flac", "mkv", true); err != nil {
		t.Fatalf("flac/mkv should pass: %v", err)
	}
	if err := r.ValidateCodecFormat("made_up_codec", "mp4", false); err == nil {
		t.Fatal("unknown codec should be rejected")
	}
	if err := r.ValidateCodecFormat("copy", "anything", false); err != nil {
		t.Fatalf("stream copy should always pass: %v", err)
	}
	if err := r.ValidateCodecFormat("mkv", "anything", false); err != nil {
		t.Fatalf("mkv codec value should always pass: %v", err)
	}
}

func TestValidateSampleRateCoercion(t *testing.T) {
	r := NewRegistry()

	if got, err := r.ValidateSampleRate("aac", 44100); err != nil || got != 44100 {
		t.Fatalf("supported rate changed: %d, %v", got, err)
	}
	// 44000 is not in the aac ladder; the closest supported rate wins.
	if got, err := r.ValidateSampleRate("aac", 44000); err != nil || got != 44100 {
		t.Fatalf("coerced rate = %d, %v, want 44100", got, err)
	}
	if got, err := r.ValidateSampleRate("libopus", 44100); err != nil || got != 48000 {
		t.Fatalf("opus coercion = %d, %v, want 48000", got, err)
	}
	if got, err := r.ValidateSampleRate("unknown_codec", 12345); err != nil || got != 12345 {
		t.Fatalf("unknown codec should keep caller's rate: %d, %v", got, err)
	}
}

func TestValidateBitrateCoercion(t *testing.T) {
	r := NewRegistry()

	if got, err := r.ValidateBitrate("aac", "192k"); err != nil || got != "192k" {
		t.Fatalf("supported bitrate changed: %q, %v", got, err)
	}
	if got, err := r.ValidateBitrate("aac", "999k"); err != nil || got != "128k" {
		t.Fatalf("unsupported bitrate should coerce to default: %q, %v", got, err)
	}
	if got, err := r.ValidateBitrate("flac", "320k"); err != nil || got != "lossless" {
		t.Fatalf("lossless codec should report lossless: %q, %v", got, err)
	}
	for _, passthrough := range []string{"auto", "lossless"} {
		if got, err := r.ValidateBitrate("aac", passthrough); err != nil || got != passthrough {
			t.Fatalf("%q should pass through: %q, %v", passthrough, got, err)
		}
	}
	if got, err := r.ValidateBitrate("unknown_codec", "77k"); err != nil || got != "77k" {
		t.Fatalf("unknown codec should keep caller's bitrate: %q, %v", got, err)
	}
}

func TestRecommendEncoder(t *testing.T) {
	r := NewRegistry()

	codec, _ := r.RecommendEncoder("mp4", "Balanced", false, nil)
	if codec != "libx264" {
		t.Fatalf("balanced mp4 = %q, want libx264", codec)
	}

	codec, _ = r.RecommendEncoder("mp4", "Balanced", true, []string{"h264_nvenc"})
	if codec != "h264_nvenc" {
		t.Fatalf("fast mp4 with nvenc = %q", codec)
	}

	codec, _ = r.RecommendEncoder("mp4", "Balanced", true, nil)
	if codec != "libx264" {
		t.Fatalf("fast mp4 without hardware = %q, want software fallback", codec)
	}

	codec, _ = r.RecommendEncoder("mp4", "High Quality", false, nil)
	if codec != "libx265" {
		t.Fatalf("high quality mp4 = %q, want libx265", codec)
	}

	codec, _ = r.RecommendEncoder("webm", "Balanced", false, nil)
	if codec != "libvpx-vp9" {
		t.Fatalf("webm = %q, want libvpx-vp9", codec)
	}

	codec, _ = r.RecommendEncoder("mov", "High Quality", false, nil)
	if codec != "prores_ks" {
		t.Fatalf("high quality mov = %q, want prores_ks", codec)
	}

	codec, reason := r.RecommendEncoder("xyz", "Balanced", false, nil)
	if codec != "libx264" || reason == "" {
		t.Fatalf("unknown format fallback = %q (%q)", codec, reason)
	}
}

func TestFormatsForCodec(t *testing.T) {
	formats := FormatsForCodec("prores_ks")
	if len(formats) == 0 {
		t.Fatal("prores_ks should list formats")
	}
	formats[0] = "mutated"
	if again := FormatsForCodec("prores_ks"); again[0] == "mutated" {
		t.Fatal("returned slice aliases the registry table")
	}

	if FormatsForCodec("nope") != nil {
		t.Fatal("unknown codec should return nil")
	}
	if !KnownCodec("libx265") || KnownCodec("nope") {
		t.Fatal("KnownCodec table lookup broken")
	}
}
