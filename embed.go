package quizplatform

import "embed"

// EmailFS holds the mail templates, one directory per mail.
//
//go:embed templates/emails
var EmailFS embed.FS
