package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AFNANSH552/nutrition-ai-agent/config"
	"github.com/AFNANSH552/nutrition-ai-agent/routes"
	"github.com/AFNANSH552/nutrition-ai-agent/services"
	"github.com/AFNANSH552/nutrition-ai-agent/store"
)

func main() {
	root := &cobra.Command{
		Use:   "nutrition-agent",
		Short: "Personalized nutritional notification service",
	}
	root.AddCommand(serveCmd(), evaluateCmd(), mockdataCmd(), demoCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads config, logger and the dataset.
func bootstrap() (config.Config, *zap.Logger, *store.Dataset, error) {
	cfg := config.Load()
	log, err := config.NewLogger(cfg.Environment)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	data, err := store.Load(cfg.DataDir)
	if err != nil {
		return cfg, log, nil, fmt.Errorf("load data from %s: %w (run `nutrition-agent mockdata` first?)", cfg.DataDir, err)
	}
	log.Sugar().Infow("data loaded",
		"users", len(data.Users), "foods", len(data.Foods),
		"links", len(data.Links), "activity_events", len(data.Activity))
	return cfg, log, data, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, data, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			if cfg.Environment == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			svc := services.NewNotificationService(data, store.NewRecencyStore(), log.Sugar())

			if cfg.SweepEnabled {
				sweep := services.NewSweepService(svc, data, cfg.SweepInterval, log.Sugar())
				if err := sweep.Start(); err != nil {
					return err
				}
				defer sweep.Stop()
			}

			r := routes.SetupRouter(data, svc, cfg.CORSAllowOrigins, log)
			log.Sugar().Infow("listening", "port", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}
}

func evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Run the offline evaluation and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, data, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			// Fresh orchestrator: the evaluation starts from clean recency state.
			svc := services.NewNotificationService(data, store.NewRecencyStore(), log.Sugar())
			results := services.NewEvaluator(svc, data).Run(time.Now().UTC())
			printEvaluation(results)
			return nil
		},
	}
}

func mockdataCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "mockdata",
		Short: "Generate the synthetic data files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			gen := services.NewMockDataGenerator(seed)
			if err := gen.WriteAll(cfg.DataDir, time.Now().UTC()); err != nil {
				return fmt.Errorf("write mock data: %w", err)
			}
			fmt.Printf("Mock data written to %s/\n", cfg.DataDir)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	return cmd
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Generate sample notifications for one user and print the evaluation report",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, data, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			if len(data.UserIDs) == 0 {
				return fmt.Errorf("no users loaded")
			}
			sample := data.UserIDs[0]
			svc := services.NewNotificationService(data, store.NewRecencyStore(), log.Sugar())

			fmt.Printf("DEMO: sample notifications for %s\n", sample)
			base := time.Now().UTC()
			for _, hour := range []int{8, 12, 17, 19} {
				at := time.Date(base.Year(), base.Month(), base.Day(), hour, 30, 0, 0, time.UTC)
				for _, bundle := range svc.Generate(sample, at) {
					fmt.Printf("\n  Trigger: %s (%s)\n", bundle.Trigger, at.Format("15:04"))
					for _, item := range bundle.Items {
						fmt.Printf("    %s\n", item.Message)
						fmt.Printf("    score=%.3f condition=%q\n", item.Score, item.Reasons.Condition)
					}
				}
			}

			fresh := services.NewNotificationService(data, store.NewRecencyStore(), log.Sugar())
			printEvaluation(services.NewEvaluator(fresh, data).Run(base))
			return nil
		},
	}
}

func printEvaluation(r services.EvaluationResults) {
	fmt.Println("\n==================================================")
	fmt.Println("NUTRITIONAL AI AGENT - EVALUATION REPORT")
	fmt.Println("==================================================")
	fmt.Printf("  Eligibility Rate:        %.2f%%\n", r.EligibilityRate*100)
	fmt.Printf("  Safety Violations:       %d\n", r.SafetyViolations)
	fmt.Printf("  Total Notifications:     %d\n", r.TotalNotifications)
	fmt.Printf("  Average Score:           %.3f\n", r.AvgScore)
	fmt.Printf("  Unique Foods:            %d\n", r.DiversityUniqueFoods)
	fmt.Printf("  Diversity Ratio:         %.2f%%\n", r.DiversityRatio*100)
	fmt.Printf("  Avg Message Length:      %.1f chars\n", r.AvgMessageLength)
	fmt.Printf("  Messages <= 160 chars:   %.2f%%\n", r.MessagesUnder160Chars*100)
	if r.SafetyViolations == 0 {
		fmt.Println("  All safety constraints satisfied")
	}
}
