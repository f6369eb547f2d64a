package export

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

//go:embed report.html.tmpl
var reportTemplate string

// reportData is the structure passed to the report template.
type reportData struct {
	Role           string
	Domain         string
	InterviewType  string
	Timestamp      string
	AveragePercent int
	Steps          []reportStep
	Narrative      string
	Resources      []reportResource
}

type reportStep struct {
	Number      int
	Question    string
	Answer      string
	IdealAnswer string
	Feedback    string
	Percent     int
}

type reportResource struct {
	Title string
	URL   string
	// Linkable is false for titles whose url is absent or not http(s);
	// those render as plain text instead of an anchor.
	Linkable bool
}

// RenderHTML renders a session record into the self-contained report page.
func RenderHTML(record *types.SessionRecord) (string, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse report template", Cause: err}
	}

	data := reportData{
		Role:           record.Role,
		Domain:         record.Domain,
		InterviewType:  capitalize(string(record.InterviewType)),
		Timestamp:      record.Metadata.Timestamp,
		AveragePercent: int(record.AverageScore*100 + 0.5),
		Narrative:      record.Narrative,
	}

	for i, qa := range record.QAPairs {
		data.Steps = append(data.Steps, reportStep{
			Number:      i + 1,
			Question:    qa.Question,
			Answer:      qa.Answer,
			IdealAnswer: qa.IdealAnswer,
			Feedback:    qa.Feedback,
			Percent:     int(qa.Score*100 + 0.5),
		})
	}

	for _, r := range record.Resources {
		data.Resources = append(data.Resources, reportResource{
			Title:    r.Title,
			URL:      r.URL,
			Linkable: isHTTPURL(r.URL),
		})
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return out.String(), nil
}

func isHTTPURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
