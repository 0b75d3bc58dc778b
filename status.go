package locsync

import (
	"os"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/loopcontext/locsync/internal/format"
)

// CheckCoverage reports how well the target at path covers keys. The language is
// taken from the file name (en.json, active.fr.toml), the way go-i18n names
// message files; every present, translated key must also render through a
// go-i18n localizer for that language.
func CheckCoverage(keys KeySet, path string, placeholder string) (FileStatus, error) {
	st := FileStatus{Path: path}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	codec, err := format.ForPath(path)
	if err != nil {
		return st, newError(KindParse, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return st, newError(KindWrite, path, err)
	}
	mapping, err := codec.Decode(data)
	if err != nil {
		return st, newError(KindParse, path, err)
	}
	st.Entries = mapping.Len()

	bundle := newBundle()
	mf, err := bundle.ParseMessageFileBytes(data, path)
	if err != nil {
		return st, newError(KindParse, path, err)
	}
	st.Language = mf.Tag.String()
	localizer := i18n.NewLocalizer(bundle, st.Language)

	for _, key := range keys.Sorted() {
		value, ok := mapping.Get(key)
		switch {
		case !ok:
			st.Missing = append(st.Missing, key)
		case value == placeholder || strings.TrimSpace(value) == "":
			st.Untranslated = append(st.Untranslated, key)
		default:
			if _, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key}); err != nil {
				st.Invalid = append(st.Invalid, key)
			}
		}
	}
	for _, key := range format.Keys(mapping) {
		if !keys.Has(key) {
			st.Stale = append(st.Stale, key)
		}
	}
	sort.Strings(st.Stale)
	return st, nil
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	return bundle
}
