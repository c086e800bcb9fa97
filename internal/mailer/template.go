package mailer

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

var emailTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Meeting Summary</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
      line-height: 1.6;
      color: #333;
      max-width: 800px;
      margin: 0 auto;
      padding: 20px;
      background-color: #f9f9f9;
    }
    .container {
      background-color: white;
      padding: 30px;
      border-radius: 8px;
      box-shadow: 0 2px 10px rgba(0, 0, 0, 0.1);
    }
    .header {
      border-bottom: 2px solid #e5e7eb;
      padding-bottom: 20px;
      margin-bottom: 30px;
    }
    .header h1 {
      color: #1f2937;
      margin: 0;
      font-size: 24px;
    }
    .summary-content {
      background-color: #f8fafc;
      padding: 20px;
      border-radius: 6px;
      border-left: 4px solid #3b82f6;
      margin: 20px 0;
    }
    .footer {
      margin-top: 30px;
      padding-top: 20px;
      border-top: 1px solid #e5e7eb;
      font-size: 14px;
      color: #6b7280;
      text-align: center;
    }
    .timestamp {
      color: #6b7280;
      font-size: 14px;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>{{.Title}}</h1>
      <p class="timestamp">Generated on {{.Timestamp}}</p>
    </div>

    <div class="summary-content">
      {{.Summary}}
    </div>

    <div class="footer">
      <p>This summary was generated using AI-powered Meeting Notes Summarizer.</p>
      <p>Please review the content for accuracy before making any decisions based on this summary.</p>
    </div>
  </div>
</body>
</html>
`))

type emailData struct {
	Title     string
	Timestamp string
	Summary   template.HTML
}

// RenderHTML renders the summary email body. The summary is escaped and its
// line breaks converted to <br> so plain-text summaries keep their shape.
func RenderHTML(summary, meetingTitle string, now time.Time) (string, error) {
	title := strings.TrimSpace(meetingTitle)
	if title == "" {
		title = "Meeting Summary"
	}

	escaped := template.HTMLEscapeString(summary)
	withBreaks := strings.ReplaceAll(escaped, "\n", "<br>")

	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, emailData{
		Title:     title,
		Timestamp: now.Format("Monday, January 2, 2006 3:04 PM"),
		Summary:   template.HTML(withBreaks),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
