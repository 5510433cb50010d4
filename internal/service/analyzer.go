package service

import (
	"github.com/mutepass/mutepass-go/internal/analyzer"
	"github.com/mutepass/mutepass-go/internal/model"
)

// AnalyzerService scores passwords for the API and CLI.
type AnalyzerService struct{}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Analyze returns the strength report for req.Password. It never fails.
func (s *AnalyzerService) Analyze(req model.AnalyzeRequest) model.AnalyzeResponse {
	report := analyzer.Analyze(req.Password)
	return model.AnalyzeResponse{
		Score:       report.Score,
		Label:       string(report.Label),
		Suggestions: report.Suggestions,
	}
}
