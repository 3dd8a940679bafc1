package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"medical-agents/internal/di"
	"medical-agents/internal/infrastructure/env"

	"github.com/fatih/color"
)

const defaultReportPath = "reports/medical_report.txt"

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "\nerror: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envService := env.NewEnvService()

	reportPath := envService.GetWithDefault("REPORT_PATH", defaultReportPath)
	if len(os.Args) > 1 {
		reportPath = os.Args[1]
	}
	resultsDir := envService.GetWithDefault("RESULTS_DIR", "results")
	timeout := time.Duration(envService.GetInt("DIAGNOSIS_TIMEOUT_SECONDS", 300)) * time.Second

	container, err := di.NewContainer(di.ConfigFromEnv(envService))
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer container.Close()

	container.Logger.Debug("Environment loaded", "appEnv", envService.AppEnv(), "files", envService.Loaded())

	report, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read medical report: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	container.Logger.Info("Diagnosis requested", "report", reportPath)

	diagnosis, err := container.Diagnosis.Diagnose(ctx, string(report))
	if err != nil {
		return err
	}

	container.Presenter.ShowDiagnosis(diagnosis)

	if !diagnosis.Team.OK() {
		return errors.New("the multidisciplinary team produced no diagnosis")
	}

	out, err := writeDiagnosis(resultsDir, diagnosis.FinalDiagnosis())
	if err != nil {
		return err
	}

	container.Logger.Info("Final diagnosis written", "path", out, "run_id", diagnosis.RunID)
	return nil
}

func writeDiagnosis(dir, text string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	path := filepath.Join(dir, "final_diagnosis.txt")
	if err := os.WriteFile(path, []byte("### Final Diagnosis:\n\n"+text), 0644); err != nil {
		return "", fmt.Errorf("write final diagnosis: %w", err)
	}
	return path, nil
}
