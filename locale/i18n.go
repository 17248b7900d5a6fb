package locale

import (
	"embed"
	"fmt"

	"github.com/cloudfoundry-attic/jibber_jabber"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Strmap map[string]interface{}

//go:embed *.yaml
var localesFS embed.FS
var lang *i18n.Localizer

func load_language(bundle *i18n.Bundle, tag language.Tag) error {
	_, err := bundle.LoadMessageFileFS(localesFS, fmt.Sprintf("%s.yaml", tag.String()))
	return err
}

func newLocalizer(tag language.Tag) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	if err := load_language(bundle, language.English); err != nil {
		return nil, err
	}
	if tag != language.English {
		if err := load_language(bundle, tag); err != nil {
			return nil, err
		}
	}
	return i18n.NewLocalizer(bundle, tag.String()), nil
}

func init() {
	var defaultTag language.Tag = language.English

	languageName, err := jibber_jabber.DetectLanguage()
	if err == nil {
		defaultTag, err = language.Parse(languageName)
		if err != nil {
			logrus.Warn("failed to parse language name")
			defaultTag = language.English
		}
	}

	lang, err = newLocalizer(defaultTag)
	if err != nil {
		logrus.Warnf("Couldnt load Language %s", languageName)
		lang, err = newLocalizer(language.English)
		if err != nil {
			panic("failed to load english language")
		}
	}
}

// Use switches the language, "" keeps the detected one.
func Use(name string) error {
	if name == "" {
		return nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return err
	}
	l, err := newLocalizer(tag)
	if err != nil {
		return fmt.Errorf("language %s: %w", name, err)
	}
	lang = l
	logrus.Infof("Using Language %s", tag.String())
	return nil
}

func Loc(id string, tmpl Strmap) string {
	s, err := lang.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: tmpl,
	})
	if err != nil {
		return fmt.Sprintf("failed to translate! %s", id)
	}
	return s
}
