package preset

import "framemill/internal/settings"

// Builtins returns the code-defined preset catalog in canonical display
// order. A fresh slice with fresh settings values is returned on every call
// so callers can mutate freely.
func Builtins() []EncodingPreset {
	return []EncodingPreset{
		youtube1080p(),
		webH265FourK(),
		masterQuality(),
		proresProxy(),
		fastH264(),
		nvencFast(),
		mobileH264(),
		archiveH265(),
		twitchStream(),
	}
}

func video(mutate func(*settings.VideoSettings)) settings.VideoSettings {
	v := settings.DefaultVideoSettings()
	mutate(&v)
	return v
}

func audio(mutate func(*settings.AudioSettings)) settings.AudioSettings {
	a := settings.DefaultAudioSettings()
	mutate(&a)
	return a
}

func youtube1080p() EncodingPreset {
	return EncodingPreset{
		Name:        "YouTube 1080p",
		Description: "Optimized settings for YouTube 1080p uploads",
		Category:    WebOptimized,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "libx264"
			v.Preset = "slow"
			v.Profile = "high"
			v.Tune = "film"
			v.Quality = 21
			v.Resolution = [2]uint{1920, 1080}
			v.CustomArgs = "-movflags +faststart -maxrate 8M -bufsize 12M"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "aac"
			a.Bitrate = "192k"
			a.SampleRate = "48000"
			a.Channels = "2"
		}),
		RecommendedFormats: []string{"mp4"},
	}
}

func webH265FourK() EncodingPreset {
	return EncodingPreset{
		Name:        "Web H.265 4K",
		Description: "Efficient 4K web video using H.265 encoding",
		Category:    WebOptimized,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "libx265"
			v.Preset = "medium"
			v.Profile = "main"
			v.Quality = 24
			v.Resolution = [2]uint{3840, 2160}
			v.CustomArgs = "-movflags +faststart -tag:v hvc1"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "aac"
			a.Bitrate = "256k"
			a.SampleRate = "48000"
			a.Channels = "2"
		}),
		RecommendedFormats: []string{"mp4"},
	}
}

func masterQuality() EncodingPreset {
	return EncodingPreset{
		Name:        "Master Quality",
		Description: "Highest quality settings for master storage",
		Category:    HighQuality,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "libx264"
			v.Preset = "veryslow"
			v.Profile = "high"
			v.Tune = "film"
			v.Quality = 16
			v.CustomArgs = "-movflags +faststart"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "flac"
			a.Bitrate = "lossless"
			a.SampleRate = "48000"
			a.Quality = "8"
		}),
		RecommendedFormats: []string{"mkv", "mov"},
	}
}

func proresProxy() EncodingPreset {
	return EncodingPreset{
		Name:        "ProRes Proxy",
		Description: "Professional proxy files suitable for editing",
		Category:    HighQuality,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "prores_ks"
			v.Profile = "proxy"
			v.Quality = 0
			v.CustomArgs = "-profile:v 0"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "pcm_s16le"
			a.Bitrate = "lossless"
			a.SampleRate = "48000"
		}),
		RecommendedFormats: []string{"mov"},
	}
}

func fastH264() EncodingPreset {
	return EncodingPreset{
		Name:        "Fast H.264",
		Description: "Fast H.264 encoding for batch file conversion",
		Category:    FastEncoding,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "libx264"
			v.Preset = "ultrafast"
			v.Profile = "main"
			v.Tune = "fastdecode"
			v.Quality = 28
			v.UseHardwareAcceleration = true
			v.CustomArgs = "-movflags +faststart"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "aac"
			a.Bitrate = "128k"
		}),
		RecommendedFormats: []string{"mp4"},
	}
}

func nvencFast() EncodingPreset {
	return EncodingPreset{
		Name:        "NVENC Fast",
		Description: "NVIDIA hardware accelerated fast encoding",
		Category:    FastEncoding,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "h264_nvenc"
			v.Preset = "fast"
			v.Profile = "high"
			v.Quality = 25
			v.UseHardwareAcceleration = true
			v.CustomArgs = "-rc vbr_hq -surfaces 32"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "aac"
			a.Bitrate = "128k"
			a.SampleRate = "48000"
		}),
		RecommendedFormats: []string{"mp4"},
	}
}

func mobileH264() EncodingPreset {
	return EncodingPreset{
		Name:        "Mobile H.264",
		Description: "Mobile device compatible H.264 encoding",
		Category:    MobileOptimized,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "libx264"
			v.Preset = "medium"
			v.Profile = "baseline"
			v.Tune = "fastdecode"
			v.Quality = 26
			v.FPS = "30"
			v.Resolution = [2]uint{1280, 720}
			v.CustomArgs = "-movflags +faststart -level 3.1"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "aac"
			a.Bitrate = "96k"
			a.Channels = "2"
		}),
		RecommendedFormats: []string{"mp4"},
	}
}

func archiveH265() EncodingPreset {
	return EncodingPreset{
		Name:        "Archive H.265",
		Description: "High compression archive settings using H.265",
		Category:    Archive,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "libx265"
			v.Preset = "veryslow"
			v.Profile = "main"
			v.Quality = 28
			v.CustomArgs = "-x265-params log-level=error"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "aac"
			a.Bitrate = "96k"
		}),
		RecommendedFormats: []string{"mp4", "mkv"},
	}
}

func twitchStream() EncodingPreset {
	return EncodingPreset{
		Name:        "Twitch Stream",
		Description: "Recommended settings for Twitch streaming",
		Category:    Streaming,
		VideoSettings: video(func(v *settings.VideoSettings) {
			v.Codec = "libx264"
			v.Preset = "veryfast"
			v.Profile = "main"
			v.Tune = "zerolatency"
			v.Quality = 0
			v.Bitrate = "6000k"
			v.FPS = "60"
			v.Resolution = [2]uint{1920, 1080}
			v.CustomArgs = "-keyint_min 60 -g 120"
		}),
		AudioSettings: audio(func(a *settings.AudioSettings) {
			a.Codec = "aac"
			a.Bitrate = "160k"
			a.Channels = "2"
		}),
		RecommendedFormats: []string{"mp4", "flv"},
	}
}
