package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nepsetools/NepsePulse/internal/scraper"
)

const (
	defaultHost  = "http://localhost:11434"
	defaultModel = "gemma3:4b"

	// Low temperature keeps the scoring close to deterministic.
	scoreTemperature = 0.2
)

// Result is one article's sentiment. The percentage pair comes from the
// model's markdown table; the label/score pair from prefix lines. Either
// form alone is accepted, and garbage degrades to Neutral 50/50.
type Result struct {
	Sentiment   string  `json:"sentiment"`
	Score       int     `json:"score"`
	PositivePct float64 `json:"positivePct"`
	NegativePct float64 `json:"negativePct"`
}

// ScoredArticle pairs an article's identity with its sentiment for reports
// and API responses.
type ScoredArticle struct {
	Title     string  `json:"title"`
	Link      string  `json:"link"`
	Source    string  `json:"source"`
	Sentiment string  `json:"sentiment"`
	Score     int     `json:"score"`
	Positive  float64 `json:"positivePct"`
	Negative  float64 `json:"negativePct"`
}

// Analyzer scores article text against a locally hosted Ollama model. The
// model is a black box `text -> sentiment` collaborator: any transport or
// format failure yields a neutral result, never an error that could fail a
// run.
type Analyzer struct {
	host   string
	model  string
	client *http.Client
}

func New(host, model string) *Analyzer {
	if host == "" {
		host = defaultHost
	}
	if model == "" {
		model = defaultModel
	}
	return &Analyzer{
		host:  strings.TrimRight(host, "/"),
		model: model,
		// Local models can be slow to first token.
		client: &http.Client{Timeout: 300 * time.Second},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func neutral() Result {
	return Result{Sentiment: "Neutral", Score: 0, PositivePct: 50, NegativePct: 50}
}

// AnalyzeText scores one piece of text.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) Result {
	payload, err := json.Marshal(generateRequest{
		Model:   a.model,
		Prompt:  buildPrompt(text),
		Stream:  false,
		Options: generateOptions{Temperature: scoreTemperature},
	})
	if err != nil {
		return neutral()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.host+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return neutral()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("sentiment: generate: %v", err)
		return neutral()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("sentiment: generate: HTTP %d: %s", resp.StatusCode, string(body))
		return neutral()
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("sentiment: decode response: %v", err)
		return neutral()
	}
	return parseResponse(out.Response)
}

// AnalyzeNews scores every article in a symbol document. Titles are always
// sent; the full body is appended when extraction actually produced one
// (sentinel strings are data for consumers, not analyzer input).
func (a *Analyzer) AnalyzeNews(ctx context.Context, doc scraper.SymbolNews) []ScoredArticle {
	out := make([]ScoredArticle, 0, len(doc.News))
	for _, item := range doc.News {
		text := item.Title
		if item.FullContent != "" && !scraper.IsContentSentinel(item.FullContent) {
			text = item.Title + "\n\n" + item.FullContent
		}
		res := a.AnalyzeText(ctx, text)
		out = append(out, ScoredArticle{
			Title:     item.Title,
			Link:      item.Link,
			Source:    item.Source,
			Sentiment: res.Sentiment,
			Score:     res.Score,
			Positive:  res.PositivePct,
			Negative:  res.NegativePct,
		})
	}
	return out
}

// parseResponse scans the model output line by line, best effort. Two
// formats are understood: "Sentiment:" / "Sentiment Score:" prefixed lines,
// and markdown table rows like "| Positive | 70% | ... |". Nothing
// recognizable leaves the neutral default in place.
func parseResponse(text string) Result {
	res := neutral()
	pctSeen := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Sentiment Score:"):
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Sentiment Score:"))); err == nil {
				res.Score = n
			}
		case strings.HasPrefix(line, "Sentiment:"):
			if label := strings.TrimSpace(strings.TrimPrefix(line, "Sentiment:")); label != "" {
				res.Sentiment = label
			}
		case strings.HasPrefix(line, "|"):
			if label, pct, ok := parseTableRow(line); ok {
				pctSeen = true
				switch label {
				case "positive":
					res.PositivePct = pct
				case "negative":
					res.NegativePct = pct
				}
			}
		}
	}

	// A percentage table implies the label when no explicit one was given.
	if pctSeen {
		switch {
		case res.PositivePct > res.NegativePct:
			res.Sentiment = "Positive"
		case res.NegativePct > res.PositivePct:
			res.Sentiment = "Negative"
		default:
			res.Sentiment = "Neutral"
		}
	}
	return res
}

// parseTableRow reads "| Positive | 70% | remarks |" style rows. Header and
// divider rows fail the percentage parse and are ignored.
func parseTableRow(line string) (label string, pct float64, ok bool) {
	cells := strings.Split(strings.Trim(line, "|"), "|")
	if len(cells) < 2 {
		return "", 0, false
	}
	label = strings.ToLower(strings.TrimSpace(cells[0]))
	if label != "positive" && label != "negative" {
		return "", 0, false
	}
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cells[1]), "%"))
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil || pct < 0 || pct > 100 {
		return "", 0, false
	}
	return label, pct, true
}

func buildPrompt(text string) string {
	return fmt.Sprintf(`### Persona ###
You are an expert financial analyst specializing in the Nepal Stock Exchange (NEPSE). You are objective, data-driven, and understand the nuances of financial reporting, including company performance, market trends, and regulatory announcements from bodies like SEBON.

### Primary Task ###
Analyze the sentiment of the following financial news text concerning a NEPSE-listed company or the market in general. Determine whether the sentiment is Positive, Negative, or Neutral from an investor's perspective.

### Guidelines ###
1. Identify the core financial facts: earnings, revenue, profit, loss, dividends, expansion, debt, regulatory actions, market performance.
2. Weigh conflicting information; the final sentiment reflects the dominant theme for an investor.
3. A neutral text is purely factual: an AGM date, a minor executive change, a plain market data report.

### Required Output Format ###
Return ONLY a Markdown table with these columns, one row for Positive and one for Negative:

| Sentiment | Percentage | Remarks (2-3 lines explaining why) |

### Text to Analyze ###
%s
`, text)
}
