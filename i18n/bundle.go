// Package i18n holds the message catalogs used for error messages and help output.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/napalu/chaincli/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle is a set of per-language translations. English is the reference language: every other language must
// provide exactly the English key set.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the package bundle loaded from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded from the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations. English translations must be added before any other
// language.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()

	if err := b.load(fsys, dir); err != nil {
		return nil, err
	}

	if _, exists := b.translations[language.English]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, language.English)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...any) string {
	b.mu.RLock()
	lang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(lang, key, args...)
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...any) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}
	if p, exists := b.printers[language.English]; exists {
		return p.Sprintf(key, args...)
	}

	return key
}

// AddLanguage adds a new language to the bundle or merges translations into an existing one. A new non-English
// language must carry exactly the English key set.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if lang != language.English && existing == nil {
		if errs := b.validate(merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}

	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}
	_, exists = translations[key]
	return exists
}

// DefaultLanguage returns the language used by T and by error messages
func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

// SetDefaultLanguage sets the default language. The closest supported language is selected; unsupported languages
// fall back to English.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()

	supported := make([]language.Tag, 0, len(b.translations))
	supported = append(supported, language.English)
	for l := range b.translations {
		if l != language.English {
			supported = append(supported, l)
		}
	}
	_, idx, conf := language.NewMatcher(supported).Match(lang)
	if conf == language.No {
		b.defaultLang = language.English
		return
	}
	b.defaultLang = supported[idx]
}

func (b *Bundle) lookup(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg, true
	}
	msg, ok := b.translations[language.English][key]
	return msg, ok
}

func (b *Bundle) load(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	// English first so other languages can be validated against it
	files := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		kv := types.KeyValue[language.Tag, string]{Key: lang, Value: path.Join(dir, entry.Name())}
		if lang == language.English {
			files = append([]types.KeyValue[language.Tag, string]{kv}, files...)
		} else {
			files = append(files, kv)
		}
	}

	for _, f := range files {
		data, err := fs.ReadFile(fsys, f.Value)
		if err != nil {
			return err
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, f.Value, err)
		}
		if err := b.AddLanguage(f.Key, translations); err != nil {
			return err
		}
	}

	return nil
}

// validate must be called with the lock held
func (b *Bundle) validate(translations map[string]string) []error {
	reference, exists := b.translations[language.English]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, language.English)}
	}

	var errs []error
	for key := range reference {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingKey, key))
		}
	}
	for key := range translations {
		if _, exists := reference[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrExtraKey, key))
		}
	}

	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return errs
}
