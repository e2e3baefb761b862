package intent

import (
	"AssistantGolang/pkg/gemini"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

const fallbackEchoLimit = 100

// IClassifier turns a raw command into an intent Record.
//
// Failure contract: quota exhaustion propagates as gemini.ErrQuotaExceeded;
// every other transport error yields (nil, nil) so the caller can degrade with
// a generic phrase; malformed model output never fails — it is repaired or
// replaced by a synthesized fallback Record.
type IClassifier interface {
	Classify(ctx context.Context, command, assistantName, userName string) (*Record, error)
}

type classifier struct {
	llm      gemini.IGemini
	taxonomy *Taxonomy
	log      *logrus.Logger
}

func NewClassifier(llm gemini.IGemini, taxonomy *Taxonomy, log *logrus.Logger) IClassifier {
	return &classifier{
		llm:      llm,
		taxonomy: taxonomy,
		log:      log,
	}
}

func (c *classifier) Classify(ctx context.Context, command, assistantName, userName string) (*Record, error) {
	prompt := c.taxonomy.BuildPrompt(command, assistantName, userName)

	text, err := c.llm.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, gemini.ErrQuotaExceeded) {
			return nil, err
		}
		c.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Intent classification call failed")
		return nil, nil
	}

	record := ParseRecord(text, command)
	if record.Type != TypeGeneral && !c.taxonomy.HasType(record.Type) {
		c.log.WithFields(logrus.Fields{
			"type": record.Type,
		}).Debug("Classifier returned a type outside the taxonomy")
	}

	return record, nil
}

// ParseRecord applies the repair policy to raw model output: strip Markdown
// code fences, try a strict JSON parse, then the first {...} substring, then
// synthesize a fallback Record. The result always carries type, userInput and
// response.
func ParseRecord(text, command string) *Record {
	cleanText := strings.TrimSpace(text)
	cleanText = strings.TrimPrefix(cleanText, "```json")
	cleanText = strings.TrimPrefix(cleanText, "```")
	cleanText = strings.TrimSuffix(cleanText, "```")
	cleanText = strings.TrimSpace(cleanText)

	var record Record
	if err := json.Unmarshal([]byte(cleanText), &record); err == nil {
		if record.Type != "" && record.UserInput != "" && record.Response != "" {
			return normalizeRecord(&record, command)
		}
	}

	if extracted := extractJSONObject(text); extracted != "" {
		var repaired Record
		if err := json.Unmarshal([]byte(extracted), &repaired); err == nil {
			if repaired.Type == "" {
				repaired.Type = TypeGeneral
			}
			if repaired.UserInput == "" {
				repaired.UserInput = command
			}
			if repaired.Response == "" {
				repaired.Response = "I understand your request."
			}
			return normalizeRecord(&repaired, command)
		}
	}

	return FallbackRecord(command)
}

// FallbackRecord is the synthesized Record used when nothing parseable came
// back from the model.
func FallbackRecord(command string) *Record {
	echo := command
	if len(echo) > fallbackEchoLimit {
		echo = echo[:fallbackEchoLimit]
	}

	return &Record{
		Type:       TypeGeneral,
		UserInput:  command,
		Response:   "I heard you say: " + echo,
		Parameters: map[string]interface{}{},
	}
}

func normalizeRecord(record *Record, command string) *Record {
	if record.UserInput == "" {
		record.UserInput = command
	}
	if record.Parameters == nil {
		record.Parameters = map[string]interface{}{}
	}
	return record
}

func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
