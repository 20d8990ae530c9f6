package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wound-analyzer/internal/domain/entity"
	applog "wound-analyzer/internal/infrastructure/logger"
	"wound-analyzer/internal/infrastructure/storage"
)

type analyzeOutput struct {
	Timestamp    string             `json:"timestamp"`
	Measurements entity.Measurement `json:"measurements"`
	BoundingBox  entity.BoundingBox `json:"bounding_box"`
	AreaPx       float64            `json:"area_px"`
	Files        map[string]string  `json:"files"`
}

func newAnalyzeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <image>",
		Short: "Measure the wound on a local image file",
		Long: `Runs the same pipeline as POST /analyze-wound on a file from disk,
stores the four images under the save directory and prints measurements as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer applog.Sync(rt.logger)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			result, err := rt.app.WoundService.AnalyzeImage(cmd.Context(), data)
			if err != nil {
				return err
			}

			files := make(map[string]string, len(storage.Subdirs))
			for _, dir := range storage.Subdirs {
				files[dir] = rt.store.Path(dir, result.Timestamp)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(analyzeOutput{
				Timestamp:    result.Timestamp,
				Measurements: result.Measurements,
				BoundingBox:  result.Region.Box,
				AreaPx:       result.Region.Area,
				Files:        files,
			})
		},
	}
}
