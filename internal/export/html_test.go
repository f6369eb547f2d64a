package export

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

func reportRecord() *types.SessionRecord {
	return &types.SessionRecord{
		Role:          "Data Scientist",
		Domain:        "Machine Learning",
		InterviewType: types.InterviewTechnical,
		Narrative:     "Good coverage of fundamentals.",
		AverageScore:  0.7,
		QAPairs: []types.QAResult{
			{
				Question:    "What is overfitting?",
				Answer:      "Memorizing noise.",
				IdealAnswer: "Fitting training data too closely.",
				Feedback:    "Score: 7/10",
				Score:       0.7,
			},
		},
		Resources: []types.Resource{
			{Title: "Regularization primer", URL: "https://example.com/reg"},
			{Title: "Ask your mentor about cross-validation", URL: ""},
			{Title: "Odd scheme", URL: "ftp://example.com/file"},
		},
		Metadata: types.Metadata{Timestamp: "20240315_103045"},
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(reportRecord())
	require.NoError(t, err)

	assert.Contains(t, html, "Data Scientist")
	assert.Contains(t, html, "Machine Learning")
	assert.Contains(t, html, "Technical interview")
	assert.Contains(t, html, "session 20240315_103045")
	assert.Contains(t, html, "Overall score: 70%")
	assert.Contains(t, html, "Q1. What is overfitting?")
	assert.Contains(t, html, "Memorizing noise.")
	assert.Contains(t, html, "Fitting training data too closely.")
	assert.Contains(t, html, "Good coverage of fundamentals.")
}

func TestRenderHTML_ResourceLinks(t *testing.T) {
	html, err := RenderHTML(reportRecord())
	require.NoError(t, err)

	// http(s) urls become anchors
	assert.Contains(t, html, `<a href="https://example.com/reg">Regularization primer</a>`)
	// no url: plain text, no anchor
	assert.Contains(t, html, "Ask your mentor about cross-validation")
	assert.NotContains(t, html, `<a href="">`)
	// non-http scheme: plain text with the url shown
	assert.NotContains(t, html, `href="ftp://`)
	assert.Contains(t, html, "Odd scheme")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	record := reportRecord()
	record.QAPairs[0].Answer = `<script>alert("x")</script>`

	html, err := RenderHTML(record)
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_NoDomainNoResources(t *testing.T) {
	record := reportRecord()
	record.Domain = ""
	record.Resources = nil
	record.Narrative = ""

	html, err := RenderHTML(record)
	require.NoError(t, err)

	assert.NotContains(t, html, "Suggested Resources")
	assert.NotContains(t, html, "&mdash;")
}

func TestErrorTypes(t *testing.T) {
	cause := errors.New("boom")

	tmplErr := &TemplateError{Message: "parse", Cause: cause}
	assert.Contains(t, tmplErr.Error(), "template error: parse")
	assert.ErrorIs(t, tmplErr, cause)

	pdfErr := &PDFError{Message: "print"}
	assert.Equal(t, "pdf export error: print", pdfErr.Error())
	assert.Nil(t, errors.Unwrap(pdfErr))
}
