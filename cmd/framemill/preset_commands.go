package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"framemill/internal/compat"
	"framemill/internal/preset"
)

func newPresetCommand(ctx *commandContext) *cobra.Command {
	presetCmd := &cobra.Command{
		Use:   "preset",
		Short: "Browse and validate encoding presets",
	}

	presetCmd.AddCommand(newPresetListCommand())
	presetCmd.AddCommand(newPresetShowCommand())
	presetCmd.AddCommand(newPresetValidateCommand())
	presetCmd.AddCommand(newPresetRecommendCommand(ctx))

	return presetCmd
}

func newPresetListCommand() *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in encoding presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := preset.Builtins()
			if trimmed := strings.TrimSpace(categoryFlag); trimmed != "" {
				category, err := parseCategory(trimmed)
				if err != nil {
					return err
				}
				presets = preset.ByCategory(category)
			}

			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, []string{
					p.Name,
					p.Category.DisplayName(),
					p.VideoSettings.Codec,
					p.AudioSettings.Codec,
					strings.Join(p.RecommendedFormats, ", "),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Name", "Category", "Video Codec", "Audio Codec", "Formats"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Only show presets in this category")
	return cmd
}

func newPresetShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the full settings of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := findBuiltin(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.Category.DisplayName())
			fmt.Fprintf(out, "%s\n\n", p.Description)
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, [][]string{
				{"Video codec", p.VideoSettings.Codec},
				{"Video preset", p.VideoSettings.Preset},
				{"Profile", p.VideoSettings.Profile},
				{"Tune", p.VideoSettings.Tune},
				{"Quality (CRF)", fmt.Sprintf("%d", p.VideoSettings.Quality)},
				{"Resolution", fmt.Sprintf("%dx%d", p.VideoSettings.Resolution[0], p.VideoSettings.Resolution[1])},
				{"Container", p.VideoSettings.ContainerFormat},
				{"Custom args", p.VideoSettings.CustomArgs},
				{"Audio codec", p.AudioSettings.Codec},
				{"Audio bitrate", p.AudioSettings.Bitrate},
				{"Sample rate", p.AudioSettings.SampleRate},
				{"Channels", p.AudioSettings.Channels},
				{"Formats", strings.Join(p.RecommendedFormats, ", ")},
			}))
			return nil
		},
	}
}

func newPresetValidateCommand() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "validate [name]",
		Short: "Check a preset against codec compatibility rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p   preset.EncodingPreset
				err error
			)
			switch {
			case strings.TrimSpace(filePath) != "":
				p, err = preset.LoadCustom(strings.TrimSpace(filePath))
				if err != nil {
					return err
				}
			case len(args) == 1:
				p, err = findBuiltin(args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("provide a preset name or --file")
			}

			warnings := preset.Validate(compat.NewRegistry(), p)
			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintf(out, "Preset %q passed all compatibility checks\n", p.Name)
				return nil
			}
			fmt.Fprintf(out, "Preset %q has %d warning(s):\n", p.Name, len(warnings))
			for _, w := range warnings {
				fmt.Fprintf(out, "  - %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Validate a custom preset file instead of a built-in")
	return cmd
}

func newPresetRecommendCommand(ctx *commandContext) *cobra.Command {
	var qualityPreset string
	var speedPriority bool

	cmd := &cobra.Command{
		Use:   "recommend <format>",
		Short: "Recommend presets and an encoder for a container format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			format := strings.ToLower(strings.TrimSpace(args[0]))
			oracle := compat.NewRegistry()
			codec, reason := oracle.RecommendEncoder(format, qualityPreset, speedPriority, cfg.Encoder.HardwareEncoders)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recommended encoder for %s: %s\n", format, codec)
			fmt.Fprintf(out, "  %s\n\n", reason)

			matches := preset.RecommendForFormat(format)
			if len(matches) == 0 {
				fmt.Fprintf(out, "No built-in presets recommend the %s container\n", format)
				return nil
			}
			rows := make([][]string, 0, len(matches))
			for _, p := range matches {
				rows = append(rows, []string{p.Name, p.Category.DisplayName(), p.Description})
			}
			fmt.Fprintln(out, renderTable([]string{"Preset", "Category", "Description"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&qualityPreset, "quality", "Balanced", "Quality preference (Fastest, Balanced, Best Quality)")
	cmd.Flags().BoolVar(&speedPriority, "fast", false, "Prefer encoding speed over compression")
	return cmd
}

func findBuiltin(name string) (preset.EncodingPreset, error) {
	for _, p := range preset.Builtins() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return preset.EncodingPreset{}, fmt.Errorf("unknown preset %q (run 'framemill preset list')", name)
}

func parseCategory(name string) (preset.Category, error) {
	for _, c := range preset.AllCategories() {
		if strings.EqualFold(c.String(), name) || strings.EqualFold(c.DisplayName(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown preset category %q", name)
}
