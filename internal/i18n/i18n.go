package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle: embedded English defaults
// plus any active.*.toml files found under localesPath.
func NewTranslations(defaultLang, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Turn your daily GitHub activity into a LinkedIn post"

	[app_description]
	other = "Fetches your commits from the last 24 hours, summarizes them, generates a post with an AI backend, optionally renders an image, and publishes everything to LinkedIn."

	[run_command_usage]
	other = "Run the daily workflow: fetch, summarize, generate, publish"

	[run_flag_dry_run]
	other = "Generate the post but print it instead of publishing"

	[run_flag_no_image]
	other = "Skip image generation and publish text-only"

	[run_flag_verbose]
	other = "Deprecated, progress is logged by default; use --quiet to silence it"

	[run_flag_quiet]
	other = "Only log warnings and errors"

	[run_flag_debug]
	other = "Log debug details including source locations"

	[run_no_commits]
	other = "No commits found in the last 24 hours. Nothing to post."

	[run_dry_run_header]
	other = "Generated post (dry run, not published):"

	[run_published]
	other = "Post published (id: {{.ID}}, media: {{.Media}})"

	[identity_command_usage]
	other = "Resolve and print your LinkedIn person URN"

	[identity_resolved]
	other = "Your person URN is: {{.URN}}\nAdd PERSON_URN={{.URN}} to your environment to skip the lookup next time."

	[auth_command_usage]
	other = "Exchange a LinkedIn OAuth authorization code for an access token"

	[auth_flag_code]
	other = "Authorization code from the redirect URL"

	[auth_visit_url]
	other = "Open this URL, authorize the app, then re-run with --code=<code from the redirect URL>:"

	[auth_token_obtained]
	other = "Access token obtained. Add this to your environment:\nLINKEDIN_ACCESS_TOKEN={{.Token}}"

	[history_command_usage]
	other = "Print the stored generation examples"

	[history_empty]
	other = "No stored examples yet."

	[history_entry]
	other = "{{.Index}}. {{.Timestamp}} ({{.Words}} words)"
`
