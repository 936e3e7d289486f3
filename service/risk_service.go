package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"btl-agent/domain"
)

// RiskExtractionService pulls lease and charge risk flags out of a
// listing description. With an API key it asks the model for a
// structured extraction; without one, or when the call fails, it falls
// back to a heuristic parse of the text.
type RiskExtractionService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// NewRiskExtractionService creates the service. An empty apiKey
// disables the model call and leaves only the heuristic parser.
func NewRiskExtractionService(apiKey, model string) *RiskExtractionService {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &RiskExtractionService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		model:   model,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ExtractRisks analyses a listing and returns its risk report. It
// fails only when there is no text to analyse.
func (s *RiskExtractionService) ExtractRisks(property domain.Property) (*domain.RiskReport, error) {
	text := strings.TrimSpace(property.Description)
	if text == "" {
		return nil, errors.New("no listing description to analyse")
	}

	if s.enabled {
		report, err := s.extractWithModel(property)
		if err == nil {
			return report, nil
		}
		log.Printf("Warning: model extraction failed, using heuristic parser: %v", err)
	}

	return s.extractHeuristically(property), nil
}

func (s *RiskExtractionService) extractWithModel(property domain.Property) (*domain.RiskReport, error) {
	prompt := fmt.Sprintf(`Extract lease and charge details from this UK property listing.

LISTING (tenure hint: %q):
%s

Reply with a single JSON object, no prose, using exactly these keys:
{"lease_years": <int, 0 if unknown>,
 "ground_rent": <annual ground rent in pounds, 0 if unknown>,
 "review_period_years": <ground rent review period in years, 0 if unknown>,
 "service_charge": <annual service charge in pounds, 0 if unknown>,
 "tenure": "<freehold|leasehold|unknown>",
 "has_doubling_clause": <true if the ground rent doubles on review>}`,
		property.Tenure, property.Description)

	content, err := s.callLLM(prompt)
	if err != nil {
		return nil, err
	}

	var report domain.RiskReport
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &report); err != nil {
		return nil, fmt.Errorf("model returned unparseable extraction: %w", err)
	}

	finishReport(&report)
	return &report, nil
}

func (s *RiskExtractionService) callLLM(prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: s.model,
		Messages: []openAIMessage{
			{
				Role:    "system",
				Content: "You are a UK conveyancing assistant. You extract lease terms, ground rent and service charge figures from property listings and reply only with the requested JSON.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	return parsed.Choices[0].Message.Content, nil
}

var (
	leaseYearsRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:year|yr)s?\s+(?:lease|remaining)|lease\s*(?:of|:)?\s*(\d+)\s*years`)
	groundRentRe    = regexp.MustCompile(`(?i)ground\s+rent[^£\d]*£?\s*([\d,]+(?:\.\d+)?)`)
	serviceChargeRe = regexp.MustCompile(`(?i)service\s+charge[^£\d]*£?\s*([\d,]+(?:\.\d+)?)`)
	reviewPeriodRe  = regexp.MustCompile(`(?i)(?:review(?:ed)?|doubl(?:es|ing))\s+every\s+(\d+)\s*years`)
)

func (s *RiskExtractionService) extractHeuristically(property domain.Property) *domain.RiskReport {
	text := property.Description
	lower := strings.ToLower(text)

	report := &domain.RiskReport{
		Tenure: strings.ToLower(property.Tenure),
	}
	if report.Tenure == "" {
		switch {
		case strings.Contains(lower, "leasehold"):
			report.Tenure = "leasehold"
		case strings.Contains(lower, "freehold"):
			report.Tenure = "freehold"
		}
	}

	if m := leaseYearsRe.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		report.LeaseYears, _ = strconv.Atoi(raw)
	}
	report.GroundRent = parsePounds(groundRentRe, text)
	report.ServiceCharge = parsePounds(serviceChargeRe, text)
	if m := reviewPeriodRe.FindStringSubmatch(text); m != nil {
		report.ReviewPeriod, _ = strconv.Atoi(m[1])
	}
	report.HasDoublingClause = strings.Contains(lower, "doubl")

	finishReport(report)
	return report
}

// finishReport derives the warning flags shared by both extraction
// paths from the raw figures.
func finishReport(report *domain.RiskReport) {
	report.ShortLeaseWarning = report.LeaseYears > 0 &&
		report.LeaseYears < ShortLeaseThresholdYears

	var flags []string
	if report.ShortLeaseWarning {
		flags = append(flags, fmt.Sprintf("short lease (%d years) may block mortgage lending and resale", report.LeaseYears))
	}
	if report.HasDoublingClause {
		flags = append(flags, "ground rent doubling clause")
	}
	if report.GroundRent > 250 {
		flags = append(flags, fmt.Sprintf("ground rent of £%.0f may make the lease an AST under the Housing Act", report.GroundRent))
	}
	if report.ServiceCharge > 3000 {
		flags = append(flags, fmt.Sprintf("high service charge of £%.0f a year", report.ServiceCharge))
	}
	if len(flags) == 0 {
		report.RedFlagSummary = "No red flags found in the listing text."
		return
	}
	report.RedFlagSummary = "Red flags: " + strings.Join(flags, "; ") + "."
}

func parsePounds(re *regexp.Regexp, text string) float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return value
}

func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
