package service

import (
	"testing"

	"github.com/mutepass/mutepass-go/internal/analyzer"
	"github.com/mutepass/mutepass-go/internal/model"
)

func TestAnalyze_Strong(t *testing.T) {
	svc := NewAnalyzerService()
	resp := svc.Analyze(model.AnalyzeRequest{Password: "Abc12345!"})

	if resp.Score != 5 {
		t.Errorf("expected score 5, got %d", resp.Score)
	}
	if resp.Label != "Strong" {
		t.Errorf("expected label Strong, got %q", resp.Label)
	}
	if resp.Suggestions == nil || len(resp.Suggestions) != 0 {
		t.Errorf("expected empty suggestions, got %v", resp.Suggestions)
	}
}

func TestAnalyze_Moderate(t *testing.T) {
	svc := NewAnalyzerService()
	resp := svc.Analyze(model.AnalyzeRequest{Password: "ALLUPPER123"})

	if resp.Score != 3 {
		t.Errorf("expected score 3, got %d", resp.Score)
	}
	if resp.Label != "Moderate" {
		t.Errorf("expected label Moderate, got %q", resp.Label)
	}
	want := []string{analyzer.SuggestLowercase, analyzer.SuggestSpecial}
	if len(resp.Suggestions) != len(want) {
		t.Fatalf("expected %d suggestions, got %v", len(want), resp.Suggestions)
	}
	for i := range want {
		if resp.Suggestions[i] != want[i] {
			t.Errorf("suggestion %d = %q, want %q", i, resp.Suggestions[i], want[i])
		}
	}
}

func TestAnalyze_Empty(t *testing.T) {
	svc := NewAnalyzerService()
	resp := svc.Analyze(model.AnalyzeRequest{})

	if resp.Score != 0 || resp.Label != "Very Weak" {
		t.Errorf("expected 0/Very Weak, got %d/%q", resp.Score, resp.Label)
	}
	if len(resp.Suggestions) != 5 {
		t.Errorf("expected 5 suggestions, got %d", len(resp.Suggestions))
	}
}
