package project

import (
	"encoding/json"
	"math"

	"framemill/internal/settings"
)

// salvage rebuilds a project from defaults plus whatever top-level fields
// exist and type-check in the untyped document. Unknown keys are ignored for
// forward compatibility; known keys with values of the wrong type are skipped
// so one bad field never poisons the load.
func salvage(tree map[string]any) *Config {
	cfg := New()

	if v, ok := tree["version"].(string); ok {
		cfg.Version = v
	}
	if v, ok := tree["project_name"].(string); ok {
		cfg.ProjectName = v
	}
	if v, ok := tree["output_file"].(string); ok {
		cfg.OutputFile = v
	}
	if list, ok := tree["input_files"].([]any); ok {
		files := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				files = append(files, s)
			}
		}
		cfg.InputFiles = files
	}

	if raw, ok := tree["video_settings"]; ok {
		cfg.VideoSettings = salvageVideo(raw)
	}
	if raw, ok := tree["audio_settings"]; ok {
		cfg.AudioSettings = salvageAudio(raw)
	}

	return cfg
}

// salvageVideo first retries a strict decode of the sub-object alone; a file
// whose only damage is elsewhere keeps its full video settings. Otherwise the
// recognized fields below are overlaid one at a time onto the defaults.
func salvageVideo(raw any) settings.VideoSettings {
	v := settings.DefaultVideoSettings()
	if blob, err := json.Marshal(raw); err == nil {
		strict := settings.DefaultVideoSettings()
		if err := json.Unmarshal(blob, &strict); err == nil {
			return strict
		}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return v
	}
	for key, val := range obj {
		switch key {
		case "codec":
			setString(&v.Codec, val)
		case "bitrate":
			setString(&v.Bitrate, val)
		case "quality":
			setInt(&v.Quality, val)
		case "fps":
			setString(&v.FPS, val)
		case "use_hardware_acceleration":
			setBool(&v.UseHardwareAcceleration, val)
		case "preset":
			setString(&v.Preset, val)
		case "profile":
			setString(&v.Profile, val)
		case "tune":
			setString(&v.Tune, val)
		case "container_format":
			setString(&v.ContainerFormat, val)
		case "crf":
			setInt(&v.CRF, val)
		case "target_size_mb":
			setInt(&v.TargetSizeMB, val)
		case "rotation":
			setInt(&v.Rotation, val)
		case "use_custom_rotation":
			setBool(&v.UseCustomRotation, val)
		case "custom_rotation_angle":
			setFloat(&v.CustomRotationAngle, val)
		case "batch_operation_type":
			setString(&v.BatchOperationType, val)
		}
	}
	return v
}

func salvageAudio(raw any) settings.AudioSettings {
	a := settings.DefaultAudioSettings()
	if blob, err := json.Marshal(raw); err == nil {
		strict := settings.DefaultAudioSettings()
		if err := json.Unmarshal(blob, &strict); err == nil {
			return strict
		}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return a
	}
	for key, val := range obj {
		switch key {
		case "codec":
			setString(&a.Codec, val)
		case "bitrate":
			setString(&a.Bitrate, val)
		case "sample_rate":
			setString(&a.SampleRate, val)
		case "channels":
			setString(&a.Channels, val)
		case "volume":
			setFloat(&a.Volume, val)
		case "quality":
			setString(&a.Quality, val)
		case "format":
			setString(&a.Format, val)
		case "vbr_quality":
			setInt(&a.VBRQuality, val)
		}
	}
	return a
}

func setString(dst *string, val any) {
	if s, ok := val.(string); ok {
		*dst = s
	}
}

func setBool(dst *bool, val any) {
	if b, ok := val.(bool); ok {
		*dst = b
	}
}

func setFloat(dst *float64, val any) {
	if f, ok := val.(float64); ok {
		*dst = f
	}
}

// setInt accepts only integral JSON numbers; 12.5 for an int field counts as
// the wrong type and is skipped.
func setInt(dst *int, val any) {
	f, ok := val.(float64)
	if !ok || f != math.Trunc(f) {
		return
	}
	*dst = int(f)
}
