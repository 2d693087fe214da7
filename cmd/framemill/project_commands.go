package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"framemill/internal/config"
	"framemill/internal/project"
	"framemill/internal/settings"
)

func newProjectCommand() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Create and inspect project files",
	}

	projectCmd.AddCommand(newProjectNewCommand())
	projectCmd.AddCommand(newProjectShowCommand())

	return projectCmd
}

func newProjectNewCommand() *cobra.Command {
	var projectName string
	var operationName string

	cmd := &cobra.Command{
		Use:   "new <path>",
		Short: "Write a new project file with default settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve project path: %w", err)
			}

			cfg := project.New()
			if trimmed := strings.TrimSpace(projectName); trimmed != "" {
				cfg.ProjectName = trimmed
			}
			if trimmed := strings.TrimSpace(operationName); trimmed != "" {
				op, ok := settings.ParseOperation(trimmed)
				if !ok {
					return fmt.Errorf("unknown operation %q", trimmed)
				}
				cfg.CurrentOperation = &op
			}

			if err := project.Save(cfg, target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %q at %s\n", cfg.ProjectName, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name")
	cmd.Flags().StringVarP(&operationName, "operation", "o", "", "Initial operation (e.g. VideoConvert)")
	return cmd
}

func newProjectShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Display a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve project path: %w", err)
			}

			cfg, salvaged, err := project.Load(target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if salvaged {
				fmt.Fprintln(out, "Warning: project file was partially invalid; recognizable fields were recovered and the rest reset to defaults")
			}

			operation := "(none)"
			if cfg.CurrentOperation != nil {
				operation = cfg.CurrentOperation.DisplayName()
			}
			rows := [][]string{
				{"Name", cfg.ProjectName},
				{"Version", cfg.Version},
				{"Operation", operation},
				{"Input files", strconv.Itoa(len(cfg.InputFiles))},
				{"Output file", valueOrDash(cfg.OutputFile)},
				{"Video codec", cfg.VideoSettings.Codec},
				{"Container", cfg.VideoSettings.ContainerFormat},
				{"Audio codec", cfg.AudioSettings.Codec},
				{"Created", formatEpoch(cfg.CreatedAt)},
				{"Modified", formatEpoch(cfg.ModifiedAt)},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))

			for i, file := range cfg.InputFiles {
				fmt.Fprintf(out, "  input %d: %s\n", i+1, file)
			}
			return nil
		},
	}
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func formatEpoch(value string) string {
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return value
	}
	return time.Unix(seconds, 0).Format("2006-01-02 15:04:05")
}
