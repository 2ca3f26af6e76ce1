package parser

import (
	"bytes"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/models"
)

var numericRunRe = regexp.MustCompile(`\d+`)

// BuildResponses builds the status-code-indexed response map for one
// operation. Status codes come from the comma-separated status column,
// defaulting to 200 when none parse. Success codes with response text get an
// inferred content schema plus the example when it is valid structured data;
// other codes get the canonical reason phrase. The returned map is never
// empty.
func BuildResponses(responseText, statusCodesText, exampleText string) map[string]models.Response {
	codes := parseStatusCodes(statusCodesText)
	responses := make(map[string]models.Response, len(codes))
	for _, code := range codes {
		resp := models.Response{Description: describeStatus(code)}
		if strings.HasPrefix(code, "2") && strings.TrimSpace(responseText) != "" {
			mt := models.MediaType{Schema: InferFromText(responseText)}
			if ex := normalizeExample(exampleText); ex != nil {
				mt.Example = ex
			}
			resp.Content = map[string]models.MediaType{"application/json": mt}
		}
		responses[code] = resp
	}
	return responses
}

// parseStatusCodes extracts the first numeric run of each comma-separated
// token, keeping valid HTTP status codes in order without duplicates.
// An empty or unusable column defaults to ["200"].
func parseStatusCodes(text string) []string {
	var codes []string
	seen := map[string]bool{}
	for _, token := range strings.Split(text, ",") {
		run := numericRunRe.FindString(token)
		if run == "" {
			continue
		}
		n, err := strconv.Atoi(run)
		if err != nil || n < 100 || n > 599 {
			continue
		}
		code := strconv.Itoa(n)
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return []string{"200"}
	}
	return codes
}

// describeStatus returns the canonical reason phrase for a status code.
func describeStatus(code string) string {
	if n, err := strconv.Atoi(code); err == nil {
		if text := http.StatusText(n); text != "" {
			return text
		}
	}
	return "Response " + code
}

// normalizeExample compacts example text into raw JSON, or nil when the text
// is empty or not valid structured data.
func normalizeExample(text string) json.RawMessage {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if _, err := ParseStructured(trimmed); err != nil {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(trimmed)); err != nil {
		return nil
	}
	return json.RawMessage(buf.Bytes())
}
